// Package merkle builds binary Merkle trees over a set of leaves,
// produces compact inclusion proofs for individual leaves,
// and verifies those proofs against a claimed root.
//
// A [Tree] is created with fixed [Options]
// (hash engine, double hashing, and leaf sorting),
// and leaves are admitted with [*Tree.AddLeaves].
// Every admission rebuilds the whole tree.
// Levels are built by hashing adjacent pairs;
// a trailing odd node is promoted to the next level unhashed.
//
// Proofs travel as the compact string form of [mproof.Proof],
// which [ProofFrom] parses and [Verify] checks without the tree.
// A tree round-trips through [*Tree.JSON] and [TreeFromJSON].
package merkle
