package mhblake3_test

import (
	"testing"

	"github.com/gordian-engine/merkle/mhash"
	"github.com/gordian-engine/merkle/mhash/mhashtest"
	"github.com/gordian-engine/merkle/mhash/mhblake3"
	"github.com/stretchr/testify/require"
)

func TestCompliance(t *testing.T) {
	t.Parallel()

	mhashtest.TestHasherCompliance(t, func() mhash.Hasher {
		return mhblake3.Hasher{}
	})
}

func TestHasher_emptyInput(t *testing.T) {
	t.Parallel()

	// Reference digest of the empty string from the BLAKE3 test vectors.
	require.Equal(t,
		"af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262",
		mhash.Hash(mhblake3.Hasher{}.Hash(nil, nil)).String(),
	)
}
