package mtest

import (
	"crypto/sha256"
	"math/rand/v2"
	"testing"
)

// RandomDataForTest returns n byte slices of size sz
// containing pseudorandom data, derived from a seed based on the test name.
func RandomDataForTest(t testing.TB, n, sz int) [][]byte {
	// The digest is exactly the ChaCha8 seed size,
	// regardless of the test name's length.
	seed := sha256.Sum256([]byte(t.Name()))
	chacha := rand.NewChaCha8(seed)

	buf := make([]byte, n*sz)
	if _, err := chacha.Read(buf); err != nil {
		panic(err)
	}

	out := make([][]byte, n)
	for i := range out {
		out[i] = buf[i*sz : (i+1)*sz : (i+1)*sz]
	}
	return out
}
