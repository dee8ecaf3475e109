package mhblake3

import (
	"github.com/zeebo/blake3"
)

// Name is the engine name that [Hasher] is registered under.
const Name = "blake3"

const HashSize = 32

// Hasher is a [mhash.Hasher] producing 256-bit BLAKE3 digests.
//
// [mhash.Hasher]: https://pkg.go.dev/github.com/gordian-engine/merkle/mhash#Hasher
type Hasher struct{}

func (Hasher) Hash(in, dst []byte) []byte {
	sum := blake3.Sum256(in)
	return append(dst, sum[:]...)
}

func (Hasher) Size() int {
	return HashSize
}
