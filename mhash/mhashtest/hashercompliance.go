package mhashtest

import (
	"sync"
	"testing"

	"github.com/gordian-engine/merkle/mhash"
	"github.com/stretchr/testify/require"
)

type HasherFactory func() mhash.Hasher

// TestHasherCompliance runs the behavioral checks
// that every [mhash.Hasher] implementation must pass.
func TestHasherCompliance(t *testing.T, f HasherFactory) {
	t.Run("hash is deterministic", func(t *testing.T) {
		t.Parallel()

		h := f()

		dst01 := h.Hash([]byte("deterministic_data"), nil)
		dst02 := h.Hash([]byte("deterministic_data"), nil)

		require.Equal(t, dst01, dst02)
	})

	t.Run("hash respects input", func(t *testing.T) {
		t.Parallel()

		h := f()

		dst01 := h.Hash([]byte("hello"), nil)
		dst02 := h.Hash([]byte("hellp"), nil)

		require.NotEqual(t, dst01, dst02)
	})

	t.Run("hash output matches size", func(t *testing.T) {
		t.Parallel()

		h := f()
		require.Positive(t, h.Size())

		for _, in := range []string{"", "a", "a longer input that spans more than one block of most hash functions, repeated: a longer input that spans more than one block"} {
			require.Len(t, h.Hash([]byte(in), nil), h.Size())
		}
	})

	t.Run("hash appends to dst", func(t *testing.T) {
		t.Parallel()

		h := f()

		prefix := []byte("prefix")
		dst := make([]byte, len(prefix), len(prefix)+h.Size())
		copy(dst, prefix)

		out := h.Hash([]byte("data"), dst)
		require.Len(t, out, len(prefix)+h.Size())
		require.Equal(t, prefix, out[:len(prefix)])
		require.Equal(t, h.Hash([]byte("data"), nil), out[len(prefix):])

		// Appending into a zero-length slice with capacity
		// must write into that capacity.
		buf := make([]byte, 0, h.Size())
		out = h.Hash([]byte("data"), buf)
		require.Same(t, &buf[:1][0], &out[0])
	})

	t.Run("double hash is digest of digest", func(t *testing.T) {
		t.Parallel()

		h := f()

		single := mhash.NewFunc(h, false)
		double := mhash.NewFunc(h, true)

		in := []byte("double")
		require.Equal(t, single(single(in)), double(in))
		require.NotEqual(t, single(in), double(in))
	})

	t.Run("concurrent use", func(t *testing.T) {
		t.Parallel()

		h := f()
		want := h.Hash([]byte("concurrent"), nil)

		var wg sync.WaitGroup
		results := make([][]byte, 16)
		for i := range results {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i] = h.Hash([]byte("concurrent"), nil)
			}()
		}
		wg.Wait()

		for _, got := range results {
			require.Equal(t, want, got)
		}
	})
}
