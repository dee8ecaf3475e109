package merkle

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/gordian-engine/merkle/mhash"
	"github.com/gordian-engine/merkle/mproof"
)

// VerifyMode selects how [*Tree.ValidateProof] checks a proof.
type VerifyMode uint8

const (
	// ReplayProof folds the proof's trail from the leaf up to a root
	// and compares that root with the expected one.
	ReplayProof VerifyMode = iota

	// RebuildProof asks the tree for its own proof of the leaf
	// and requires the canonical strings to be identical.
	RebuildProof
)

func (m VerifyMode) String() string {
	switch m {
	case ReplayProof:
		return "replay"
	case RebuildProof:
		return "rebuild"
	default:
		return "unknown"
	}
}

// ValidateProof reports whether p proves that leaf belongs to this tree,
// whose root must currently be rootHex.
//
// If the tree is not built or its root differs from rootHex,
// ValidateProof returns false without inspecting p.
// The proof's Size is never compared with the tree's size;
// callers wanting that check must make it themselves.
func (t *Tree) ValidateProof(p mproof.Proof, leaf mhash.Hash, rootHex string, mode VerifyMode) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.validate(p, leaf, rootHex, mode)
}

// ValidateProofs validates each proof against the leaf at the same index
// and returns the set of indices that validated.
// The slices must have equal length.
func (t *Tree) ValidateProofs(ps []mproof.Proof, leaves mhash.Hashes, rootHex string, mode VerifyMode) *bitset.BitSet {
	if len(ps) != len(leaves) {
		panic(fmt.Errorf(
			"BUG: got %d proofs for %d leaves", len(ps), len(leaves),
		))
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	ok := bitset.MustNew(uint(len(ps)))
	for i, p := range ps {
		if t.validate(p, leaves[i], rootHex, mode) {
			ok.Set(uint(i))
		}
	}
	return ok
}

// validate must be called with t.mu held.
func (t *Tree) validate(p mproof.Proof, leaf mhash.Hash, rootHex string, mode VerifyMode) bool {
	if !t.ready() || t.levels.Root().String() != rootHex {
		return false
	}

	if mode == RebuildProof {
		rebuilt, ok := t.proof(leaf)
		return ok && rebuilt.String() == p.String()
	}

	return mproof.Verify(p, leaf, rootHex, t.hash)
}

// Verify checks a proof string against a leaf and a hexadecimal root
// without access to the tree.
// The engine named in the proof is resolved from [Engines];
// doubleHash must match the option of the tree that issued the proof.
//
// A malformed proof string is reported as an [mproof.InvalidProofError].
func Verify(proof string, leaf mhash.Hash, rootHex string, doubleHash bool) (bool, error) {
	p, err := ProofFrom(proof)
	if err != nil {
		return false, err
	}

	fn, err := Engines().Resolve(p.Engine, doubleHash)
	if err != nil {
		return false, err
	}

	return mproof.Verify(p, leaf, rootHex, fn), nil
}

// ProofFrom parses a proof string using the engines from [Engines].
func ProofFrom(s string) (mproof.Proof, error) {
	return mproof.Parse(s, Engines())
}
