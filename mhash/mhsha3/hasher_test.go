package mhsha3_test

import (
	"testing"

	"github.com/gordian-engine/merkle/mhash"
	"github.com/gordian-engine/merkle/mhash/mhashtest"
	"github.com/gordian-engine/merkle/mhash/mhsha3"
	"github.com/stretchr/testify/require"
)

func TestCompliance(t *testing.T) {
	t.Parallel()

	t.Run("sha3-256", func(t *testing.T) {
		t.Parallel()

		mhashtest.TestHasherCompliance(t, func() mhash.Hasher {
			return mhsha3.Hasher{}
		})
	})

	t.Run("keccak-256", func(t *testing.T) {
		t.Parallel()

		mhashtest.TestHasherCompliance(t, func() mhash.Hasher {
			return mhsha3.KeccakHasher{}
		})
	})
}

func TestHasher_emptyInput(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		"a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a",
		mhash.Hash(mhsha3.Hasher{}.Hash(nil, nil)).String(),
	)

	require.Equal(t,
		"c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		mhash.Hash(mhsha3.KeccakHasher{}.Hash(nil, nil)).String(),
	)
}
