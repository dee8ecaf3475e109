// Package mhsha3 contains the Keccak family of hash engines:
// the standardized SHA3-256 and the pre-standard Keccak-256
// that Ethereum-style systems commit to.
package mhsha3

import (
	"golang.org/x/crypto/sha3"
)

const (
	Name       = "sha3-256"
	KeccakName = "keccak-256"
)

const HashSize = 32

// Hasher is a [mhash.Hasher] backed by SHA3-256.
//
// [mhash.Hasher]: https://pkg.go.dev/github.com/gordian-engine/merkle/mhash#Hasher
type Hasher struct{}

func (Hasher) Hash(in, dst []byte) []byte {
	sum := sha3.Sum256(in)
	return append(dst, sum[:]...)
}

func (Hasher) Size() int {
	return HashSize
}

// KeccakHasher is a [mhash.Hasher] backed by legacy Keccak-256,
// which differs from SHA3-256 only in its padding byte.
//
// [mhash.Hasher]: https://pkg.go.dev/github.com/gordian-engine/merkle/mhash#Hasher
type KeccakHasher struct{}

func (KeccakHasher) Hash(in, dst []byte) []byte {
	// The legacy Keccak state is not reusable across goroutines,
	// so every call gets its own.
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write(in)
	return h.Sum(dst)
}

func (KeccakHasher) Size() int {
	return HashSize
}
