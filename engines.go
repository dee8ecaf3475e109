package merkle

import (
	"github.com/gordian-engine/merkle/mhash"
	"github.com/gordian-engine/merkle/mhash/mhblake2b"
	"github.com/gordian-engine/merkle/mhash/mhblake3"
	"github.com/gordian-engine/merkle/mhash/mhsha256"
	"github.com/gordian-engine/merkle/mhash/mhsha3"
)

var defaultEngines = newDefaultEngines()

func newDefaultEngines() *mhash.Registry {
	r := mhash.NewRegistry()
	r.Register(mhsha256.Name, mhsha256.Hasher{})
	r.Register(mhblake3.Name, mhblake3.Hasher{})
	r.Register(mhsha3.Name, mhsha3.Hasher{})
	r.Register(mhsha3.KeccakName, mhsha3.KeccakHasher{})
	r.Register(mhblake2b.Name, mhblake2b.Hasher{})
	return r
}

// Engines returns the registry of built-in hash engines.
// Callers may register additional engines on it
// before creating trees that use them.
func Engines() *mhash.Registry {
	return defaultEngines
}
