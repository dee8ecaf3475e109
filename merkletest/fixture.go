// Package merkletest contains fixtures for tests involving [merkle.Tree].
package merkletest

import (
	"strconv"
	"testing"

	"github.com/gordian-engine/merkle"
	"github.com/gordian-engine/merkle/internal/mtest"
	"github.com/stretchr/testify/require"
)

// Data returns n items named "data1" through "dataN".
func Data(n int) [][]byte {
	out := make([][]byte, n)
	for i := range out {
		out[i] = []byte("data" + strconv.Itoa(i+1))
	}
	return out
}

// Fixture is a tree built for a test, along with the results of its first admission.
type Fixture struct {
	Tree    *merkle.Tree
	Results []merkle.ProofResult
}

// NewFixture creates a tree with the given options
// and admits data in a single batch, failing the test on any error.
// The tree logs through the test.
func NewFixture(t testing.TB, opts merkle.Options, doHash bool, data ...[]byte) Fixture {
	t.Helper()

	tree, err := merkle.NewTree(mtest.NewLogger(t), merkle.TreeConfig{Options: opts})
	require.NoError(t, err)

	res, err := tree.AddLeaves(doHash, data...)
	require.NoError(t, err)
	require.Len(t, res, len(data))

	return Fixture{Tree: tree, Results: res}
}
