package merkle

import (
	"github.com/gordian-engine/merkle/mhash"
	"github.com/gordian-engine/merkle/mhash/mhsha256"
)

// Options are the persisted settings of a [Tree].
// They cannot change after the tree is created.
type Options struct {
	// DoubleHash hashes every digest a second time.
	DoubleHash bool `json:"doubleHash"`

	// Engine names the hash engine in the tree's registry.
	Engine string `json:"engine"`

	// Sort orders all leaves by their raw bytes after every admission,
	// so a leaf's position depends on its value, not on insertion order.
	Sort bool `json:"sort"`
}

// DefaultOptions returns SHA-256 without double hashing or sorting.
func DefaultOptions() Options {
	return Options{
		Engine: mhsha256.Name,
	}
}

// TreeConfig is the configuration for [NewTree].
// Only the Options are persisted with the tree.
type TreeConfig struct {
	Options Options

	// Engines resolves Options.Engine.
	// If nil, the registry from [Engines] is used.
	Engines *mhash.Registry

	// BuildWorkers bounds the goroutines hashing each wide level.
	// Zero or one builds on the calling goroutine.
	BuildWorkers int
}
