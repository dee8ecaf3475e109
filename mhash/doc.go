// Package mhash contains the hash primitives used by the Merkle tree:
// the [Hash] value type, the [Hasher] strategy interface,
// and a name-keyed [Registry] of hash engines.
//
// Concrete engines live in sub-packages,
// for example [github.com/gordian-engine/merkle/mhash/mhsha256].
package mhash
