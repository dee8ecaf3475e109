package mlevels

import (
	"fmt"

	"github.com/gordian-engine/merkle/mhash"
	"github.com/gordian-engine/merkle/mpath"
	"golang.org/x/sync/errgroup"
)

// parallelMinPairs is the smallest number of pairs in a level
// for which Build spreads hashing across workers.
// Below it, goroutine startup costs more than the hashing.
const parallelMinPairs = 256

// Levels is a built Merkle tree.
// Levels[0] holds only the root, and Levels[len(Levels)-1] holds the leaves.
type Levels []mhash.Hashes

// BuildConfig is the configuration used for [Build].
type BuildConfig struct {
	Hash mhash.Func

	// Workers bounds the number of goroutines hashing a single level.
	// Zero or one hashes every level on the calling goroutine.
	Workers int
}

// Build hashes leaves into a complete set of levels.
// The leaves slice is retained as the bottom level and must not be modified
// while the returned Levels are in use.
func Build(leaves mhash.Hashes, cfg BuildConfig) Levels {
	if len(leaves) == 0 {
		panic(fmt.Errorf("BUG: cannot build levels from zero leaves"))
	}

	// Count the levels first so the stack is filled from the back
	// and never needs to be shifted to prepend a level.
	n := 1
	for w := len(leaves); w > 1; w = (w + 1) / 2 {
		n++
	}

	lv := make(Levels, n)
	lv[n-1] = leaves
	for i := n - 1; i > 0; i-- {
		lv[i-1] = nextLevel(lv[i], cfg)
	}

	return lv
}

// nextLevel merges the level below pairwise, left to right.
func nextLevel(below mhash.Hashes, cfg BuildConfig) mhash.Hashes {
	nPairs := len(below) / 2
	out := make(mhash.Hashes, (len(below)+1)/2)

	if cfg.Workers > 1 && nPairs >= parallelMinPairs {
		hashPairsParallel(below, out, nPairs, cfg)
	} else {
		hashPairs(below, out, 0, nPairs, cfg.Hash)
	}

	if len(below)&1 == 1 {
		// Odd number promoted to the next level as is.
		out[len(out)-1] = below[len(below)-1]
	}

	return out
}

// hashPairs writes the hashes of pairs [start, end) of below into out.
func hashPairs(below, out mhash.Hashes, start, end int, fn mhash.Func) {
	if end <= start {
		return
	}

	// One scratch buffer per call, sized for the concatenated pair.
	// Hash functions do not retain their input.
	buf := make([]byte, 0, len(below[2*start])*2)
	for i := start; i < end; i++ {
		buf = append(buf[:0], below[2*i]...)
		buf = append(buf, below[2*i+1]...)
		out[i] = fn(buf)
	}
}

func hashPairsParallel(below, out mhash.Hashes, nPairs int, cfg BuildConfig) {
	chunk := (nPairs + cfg.Workers - 1) / cfg.Workers

	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for start := 0; start < nPairs; start += chunk {
		end := min(start+chunk, nPairs)
		g.Go(func() error {
			hashPairs(below, out, start, end, cfg.Hash)
			return nil
		})
	}

	// Every task returns nil; Wait is only the join point.
	_ = g.Wait()
}

// Root returns the root hash.
func (l Levels) Root() mhash.Hash {
	return l[0][0]
}

// Depth returns the number of levels excluding the root level.
func (l Levels) Depth() int {
	return len(l) - 1
}

// Leaves returns the bottom level.
func (l Levels) Leaves() mhash.Hashes {
	return l[len(l)-1]
}

// Trail returns the sibling hashes that prove the leaf at index,
// ordered from the root's child level down to the leaf's own sibling,
// which is the order that path is written in.
//
// The path must be the [mpath.Build] output for the leaf.
// At levels where the leaf's ancestor was promoted without a sibling,
// path carries Left padding after its real directions,
// and the matching trail entries are all-zero placeholders
// so that the trail is always as long as the path.
func (l Levels) Trail(index int, path mpath.Path) (mhash.Hashes, error) {
	depth := l.Depth()
	if len(path) != depth {
		return nil, mpath.UnableToBuildPathError{Path: string(path)}
	}
	if index < 0 || index >= len(l.Leaves()) {
		panic(fmt.Errorf(
			"BUG: leaf index %d out of range [0, %d)",
			index, len(l.Leaves()),
		))
	}

	// Walk up from the leaf, collecting real siblings bottom-up.
	siblings := make(mhash.Hashes, 0, depth)
	dirs := make([]byte, 0, depth)
	pos := index
	for lvl := depth; lvl > 0; lvl-- {
		row := l[lvl]
		if sib := pos ^ 1; sib < len(row) {
			siblings = append(siblings, row[sib])
			if pos&1 == 1 {
				dirs = append(dirs, mpath.Right)
			} else {
				dirs = append(dirs, mpath.Left)
			}
		}
		pos >>= 1
	}

	trail := make(mhash.Hashes, depth)
	nReal := len(siblings)
	for i := range nReal {
		// Top-down order is the reverse of the walk.
		j := nReal - 1 - i
		if path[i] != dirs[j] {
			return nil, mpath.UnableToBuildPathError{Path: string(path)}
		}
		trail[i] = siblings[j]
	}

	if nReal < depth {
		zero := make(mhash.Hash, len(l.Root()))
		for i := nReal; i < depth; i++ {
			if path[i] != mpath.Left {
				return nil, mpath.UnableToBuildPathError{Path: string(path)}
			}
			trail[i] = zero
		}
	}

	return trail, nil
}
