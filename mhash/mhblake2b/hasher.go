package mhblake2b

import (
	"golang.org/x/crypto/blake2b"
)

// Name is the engine name that [Hasher] is registered under.
const Name = "blake2b-256"

const HashSize = blake2b.Size256

// Hasher is a [mhash.Hasher] backed by unkeyed BLAKE2b-256.
//
// [mhash.Hasher]: https://pkg.go.dev/github.com/gordian-engine/merkle/mhash#Hasher
type Hasher struct{}

func (Hasher) Hash(in, dst []byte) []byte {
	sum := blake2b.Sum256(in)
	return append(dst, sum[:]...)
}

func (Hasher) Size() int {
	return HashSize
}
