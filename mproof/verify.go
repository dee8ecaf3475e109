package mproof

import (
	"github.com/gordian-engine/merkle/mhash"
	"github.com/gordian-engine/merkle/mpath"
)

// Replay recomputes the root implied by p for the given leaf,
// folding the trail from the leaf upwards.
//
// At each step, a [mpath.Right] direction means the accumulated node
// is the right child, so the sibling is hashed first;
// otherwise the accumulated node is hashed first.
//
// All-zero trail entries are promotion placeholders and leave
// the accumulated node unchanged.
// They are only accepted in the shape [Proof.Trail] describes:
// a run at the leaf end of the trail, matched by Left padding in the path,
// below a Right step at the root.
// A zero entry anywhere else is hashed like any other sibling.
//
// The boolean result is false if p's trail and path lengths differ
// or if its placeholders are misplaced.
func Replay(p Proof, leaf mhash.Hash, fn mhash.Func) (mhash.Hash, bool) {
	if len(p.Trail) != len(p.Path) {
		return nil, false
	}

	nReal := len(p.Trail)
	for nReal > 0 && p.Trail[nReal-1].IsZero() {
		nReal--
	}
	if nReal < len(p.Trail) {
		// The root's left subtree is always perfect,
		// so padding needs a real Right step at the top.
		if nReal == 0 || p.Path[0] != mpath.Right {
			return nil, false
		}
		for _, d := range p.Path[nReal:] {
			if d != mpath.Left {
				return nil, false
			}
		}
	}

	trail := p.Trail[:nReal]
	path := p.Path[:nReal].Reverse()

	acc := leaf
	var buf []byte
	for i := range trail {
		sib := trail[len(trail)-1-i]

		buf = buf[:0]
		if path[i] == mpath.Right {
			buf = append(buf, sib...)
			buf = append(buf, acc...)
		} else {
			buf = append(buf, acc...)
			buf = append(buf, sib...)
		}
		acc = fn(buf)
	}

	return acc, true
}

// Verify reports whether p proves that leaf is included
// in the tree whose hexadecimal root hash is rootHex.
// The fn argument must be the tree's hash function,
// including its double hashing setting.
func Verify(p Proof, leaf mhash.Hash, rootHex string, fn mhash.Func) bool {
	got, ok := Replay(p, leaf, fn)
	if !ok {
		return false
	}
	return got.String() == rootHex
}
