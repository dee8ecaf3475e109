package mhash_test

import (
	"testing"

	"github.com/gordian-engine/merkle/mhash"
	"github.com/gordian-engine/merkle/mhash/mhblake3"
	"github.com/gordian-engine/merkle/mhash/mhsha256"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	r := mhash.NewRegistry()
	r.Register(mhsha256.Name, mhsha256.Hasher{})
	r.Register(mhblake3.Name, mhblake3.Hasher{})

	require.Equal(t, []string{"blake3", "sha-256"}, r.Names())

	fn, err := r.Resolve(mhsha256.Name, false)
	require.NoError(t, err)
	require.Equal(t,
		"9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08",
		fn([]byte("test")).String(),
	)

	sz, err := r.Size(mhblake3.Name)
	require.NoError(t, err)
	require.Equal(t, 32, sz)

	require.True(t, r.IsCorrect(make([]byte, 32), mhsha256.Name))
	require.False(t, r.IsCorrect(make([]byte, 31), mhsha256.Name))
	require.False(t, r.IsCorrect(make([]byte, 32), "md5"))
}

func TestRegistry_unknownEngine(t *testing.T) {
	t.Parallel()

	r := mhash.NewRegistry()

	_, err := r.Resolve("sha-1", false)
	require.Equal(t, mhash.InvalidEngineError{Name: "sha-1"}, err)
	require.EqualError(t, err, "invalid engine: sha-1")

	_, err = r.Size("sha-1")
	require.ErrorAs(t, err, new(mhash.InvalidEngineError))
}

func TestRegistry_duplicatePanics(t *testing.T) {
	t.Parallel()

	r := mhash.NewRegistry()
	r.Register(mhsha256.Name, mhsha256.Hasher{})

	require.Panics(t, func() {
		r.Register(mhsha256.Name, mhblake3.Hasher{})
	})
}
