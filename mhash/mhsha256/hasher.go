package mhsha256

import (
	"github.com/minio/sha256-simd"
)

// Name is the engine name that [Hasher] is registered under.
const Name = "sha-256"

const HashSize = sha256.Size

// Hasher is a [mhash.Hasher] backed by SHA-256 hashes.
//
// [mhash.Hasher]: https://pkg.go.dev/github.com/gordian-engine/merkle/mhash#Hasher
type Hasher struct{}

func (Hasher) Hash(in, dst []byte) []byte {
	sum := sha256.Sum256(in)
	return append(dst, sum[:]...)
}

func (Hasher) Size() int {
	return HashSize
}
