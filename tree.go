package merkle

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/bits-and-blooms/bitset"
	"github.com/gordian-engine/merkle/internal/mlevels"
	"github.com/gordian-engine/merkle/mhash"
	"github.com/gordian-engine/merkle/mpath"
	"github.com/gordian-engine/merkle/mproof"
)

// Tree is a binary Merkle tree over an ordered set of leaf hashes.
//
// Create a Tree with [NewTree] and admit leaves with [*Tree.AddLeaves].
// Each admission replaces all levels with a full rebuild.
//
// Admissions are serialized by the Tree;
// queries may run concurrently with each other.
type Tree struct {
	log *slog.Logger

	opts    Options
	engines *mhash.Registry
	hasher  mhash.Hasher
	hash    mhash.Func
	workers int

	mu sync.RWMutex

	leaves mhash.Hashes

	// Position of the first occurrence of each leaf, keyed by its raw bytes.
	index map[string]int

	levels mlevels.Levels

	// gen increments on every admission that changes the leaves.
	// The tree is ready only when builtGen has caught up with gen.
	gen, builtGen uint64
}

// ProofResult is one entry of the batch returned by [*Tree.AddLeaves].
// Found is false when no proof exists for the corresponding input item.
type ProofResult struct {
	Proof mproof.Proof
	Found bool
}

// NewTree returns an empty Tree.
// It returns an [mhash.InvalidEngineError]
// if cfg.Options.Engine is not registered.
func NewTree(log *slog.Logger, cfg TreeConfig) (*Tree, error) {
	engines := cfg.Engines
	if engines == nil {
		engines = Engines()
	}

	h, err := engines.Hasher(cfg.Options.Engine)
	if err != nil {
		return nil, err
	}

	return &Tree{
		log: log,

		opts:    cfg.Options,
		engines: engines,
		hasher:  h,
		hash:    mhash.NewFunc(h, cfg.Options.DoubleHash),
		workers: cfg.BuildWorkers,

		index: map[string]int{},
	}, nil
}

// AddLeaves admits a batch of items and rebuilds the tree.
//
// If doHash is set, every item is hashed with the tree's engine.
// Otherwise every item must already be a digest of the engine's size;
// items that are not are silently dropped.
//
// The returned slice is aligned with data:
// each entry holds the proof for that item's leaf,
// or Found == false if the item was dropped
// or the tree has a single leaf (whose proof would be empty).
//
// An empty batch is a no-op.
// If the tree is still empty after the batch, AddLeaves returns [ErrEmptyTree].
// If sorting fails, AddLeaves returns an [ImpossibleToSortError]
// and the tree is unchanged.
func (t *Tree) AddLeaves(doHash bool, data ...[]byte) ([]ProofResult, error) {
	if len(data) == 0 {
		return []ProofResult{}, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	admitted := bitset.MustNew(uint(len(data)))
	batch := make(mhash.Hashes, 0, len(data))
	for i, d := range data {
		if doHash {
			batch = append(batch, t.hash(d))
			admitted.Set(uint(i))
			continue
		}

		if !mhash.IsCorrect(d, t.hasher) {
			t.log.Debug(
				"Dropping malformed leaf",
				"batch_index", i,
				"len", len(d),
				"want_len", t.hasher.Size(),
			)
			continue
		}
		batch = append(batch, mhash.Hash(d).Clone())
		admitted.Set(uint(i))
	}

	// Work on a fresh slice so a failed sort leaves t.leaves untouched.
	next := make(mhash.Hashes, 0, len(t.leaves)+len(batch))
	next = append(next, t.leaves...)
	next = append(next, batch...)

	if t.opts.Sort {
		if err := mhash.Sort(next); err != nil {
			return nil, ImpossibleToSortError{Err: err}
		}
	}

	t.gen++
	t.leaves = next
	t.reindex()

	if len(t.leaves) == 0 {
		return nil, ErrEmptyTree
	}

	t.levels = mlevels.Build(t.leaves, mlevels.BuildConfig{
		Hash:    t.hash,
		Workers: t.workers,
	})
	t.builtGen = t.gen

	t.log.Debug(
		"Built tree",
		"size", len(t.leaves),
		"admitted", admitted.Count(),
		"dropped", uint(len(data))-admitted.Count(),
		"depth", t.levels.Depth(),
		"root", t.levels.Root().String(),
	)

	res := make([]ProofResult, len(data))
	j := 0
	for i := range data {
		if !admitted.Test(uint(i)) {
			continue
		}
		p, ok := t.proof(batch[j])
		res[i] = ProofResult{Proof: p, Found: ok}
		j++
	}

	return res, nil
}

func (t *Tree) reindex() {
	clear(t.index)
	for i, l := range t.leaves {
		k := string(l)
		if _, ok := t.index[k]; !ok {
			t.index[k] = i
		}
	}
}

// ready must be called with t.mu held.
func (t *Tree) ready() bool {
	return t.levels != nil && t.builtGen == t.gen
}

// GetProof returns the inclusion proof for the given leaf hash.
// The boolean result is false if the tree is not built,
// if the leaf is not in the tree,
// or if the tree has a single leaf.
func (t *Tree) GetProof(leaf mhash.Hash) (mproof.Proof, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.proof(leaf)
}

// proof must be called with t.mu held.
func (t *Tree) proof(leaf mhash.Hash) (mproof.Proof, bool) {
	if !t.ready() {
		return mproof.Proof{}, false
	}

	idx, ok := t.index[string(leaf)]
	if !ok {
		return mproof.Proof{}, false
	}

	size := len(t.leaves)
	path, err := mpath.Build(idx, size, t.levels.Depth())
	if err != nil {
		t.log.Warn("Failed to build path", "index", idx, "size", size, "err", err)
		return mproof.Proof{}, false
	}

	trail, err := t.levels.Trail(idx, path)
	if err != nil {
		t.log.Warn("Failed to collect trail", "index", idx, "path", string(path), "err", err)
		return mproof.Proof{}, false
	}
	if len(trail) == 0 {
		return mproof.Proof{}, false
	}

	return mproof.Proof{
		Trail:  trail,
		Path:   path,
		Engine: t.opts.Engine,
		Size:   size,
	}, true
}

// Depth returns the number of levels below the root.
func (t *Tree) Depth() (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if !t.ready() {
		return 0, ErrTreeNotBuilt
	}
	return t.levels.Depth(), nil
}

// Root returns the root hash.
func (t *Tree) Root() (mhash.Hash, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if !t.ready() {
		return nil, ErrTreeNotBuilt
	}
	return t.levels.Root().Clone(), nil
}

// RootHex returns the hexadecimal representation of the root hash.
func (t *Tree) RootHex() (string, error) {
	r, err := t.Root()
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

// Levels returns a copy of every level, root level first.
// The hashes themselves are shared with the tree and must not be modified.
func (t *Tree) Levels() ([]mhash.Hashes, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if !t.ready() {
		return nil, ErrTreeNotBuilt
	}

	out := make([]mhash.Hashes, len(t.levels))
	for i, l := range t.levels {
		out[i] = slices.Clone(l)
	}
	return out, nil
}

// Size returns the number of leaves.
func (t *Tree) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.leaves)
}

// Leaves returns a copy of the leaf sequence in tree order.
func (t *Tree) Leaves() mhash.Hashes {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return slices.Clone(t.leaves)
}

// Generation returns the number of admissions that changed the leaves.
func (t *Tree) Generation() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.gen
}

// Engine returns the name of the tree's hash engine.
func (t *Tree) Engine() string {
	return t.opts.Engine
}

// IsSorted reports whether the tree sorts its leaves.
func (t *Tree) IsSorted() bool {
	return t.opts.Sort
}

// UseDoubleHash reports whether the tree double hashes.
func (t *Tree) UseDoubleHash() bool {
	return t.opts.DoubleHash
}

// Options returns the tree's fixed options.
func (t *Tree) Options() Options {
	return t.opts
}

// Hash returns the tree's hash function, including double hashing.
func (t *Tree) Hash(in []byte) mhash.Hash {
	return t.hash(in)
}
