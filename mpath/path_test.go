package mpath_test

import (
	"testing"

	"github.com/gordian-engine/merkle/mpath"
	"github.com/stretchr/testify/require"
)

func TestBuild_knownPaths(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		index, size, depth int
		want               mpath.Path
	}{
		{index: 1, size: 4, depth: 2, want: "10"},
		{index: 8, size: 9, depth: 4, want: "0111"},
		{index: 0, size: 4, depth: 2, want: "11"},
		{index: 3, size: 4, depth: 2, want: "00"},

		// Five leaves, the shape used throughout the tree tests.
		{index: 0, size: 5, depth: 3, want: "111"},
		{index: 1, size: 5, depth: 3, want: "110"},
		{index: 2, size: 5, depth: 3, want: "101"},
		{index: 3, size: 5, depth: 3, want: "100"},
		{index: 4, size: 5, depth: 3, want: "011"},

		// Single leaf subtree on the right pads with Left.
		{index: 2, size: 3, depth: 2, want: "01"},

		{index: 0, size: 1, depth: 0, want: ""},
	} {
		got, err := mpath.Build(tc.index, tc.size, tc.depth)
		require.NoError(t, err)
		require.Equalf(t, tc.want, got, "Build(%d, %d, %d)", tc.index, tc.size, tc.depth)
	}
}

func TestBuild_invalidInput(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name               string
		index, size, depth int
	}{
		{name: "zero size", index: 0, size: 0, depth: 1},
		{name: "negative index", index: -1, size: 4, depth: 2},
		{name: "index past size", index: 4, size: 4, depth: 2},
		{name: "negative depth", index: 0, size: 4, depth: -1},
	} {
		_, err := mpath.Build(tc.index, tc.size, tc.depth)
		require.Errorf(t, err, tc.name)
		require.ErrorAsf(t, err, new(mpath.UnableToBuildPathError), tc.name)
	}
}

func TestBuild_lengthAlwaysDepth(t *testing.T) {
	t.Parallel()

	for size := 1; size <= 70; size++ {
		depth := mpath.Depth(size)
		for index := range size {
			p, err := mpath.Build(index, size, depth)
			require.NoError(t, err)
			require.Len(t, p, depth)
			require.NoError(t, p.Validate())
		}
	}
}

func TestPath_Index_roundTrip(t *testing.T) {
	t.Parallel()

	for size := 1; size <= 70; size++ {
		depth := mpath.Depth(size)
		seen := make(map[mpath.Path]bool, size)
		for index := range size {
			p, err := mpath.Build(index, size, depth)
			require.NoError(t, err)

			require.Falsef(t, seen[p], "duplicate path %q for size %d", p, size)
			seen[p] = true

			got, err := p.Index(size)
			require.NoError(t, err)
			require.Equal(t, index, got)
		}
	}
}

func TestPath_Index_rejects(t *testing.T) {
	t.Parallel()

	_, err := mpath.Path("10").Index(5)
	require.ErrorAs(t, err, new(mpath.InvalidPathError), "too short")

	_, err = mpath.Path("1x0").Index(5)
	require.ErrorAs(t, err, new(mpath.InvalidPathError), "bad symbol")

	// In a 5-leaf tree, the right subtree of the root is one leaf,
	// so any Right after the first step goes nowhere.
	_, err = mpath.Path("010").Index(5)
	require.ErrorAs(t, err, new(mpath.InvalidPathError))

	_, err = mpath.Path("").Index(0)
	require.Error(t, err)
}

func TestPath_Reverse(t *testing.T) {
	t.Parallel()

	require.Equal(t, mpath.Path("011"), mpath.Path("110").Reverse())
	require.Equal(t, mpath.Path(""), mpath.Path("").Reverse())
	require.Equal(t, mpath.Path("1"), mpath.Path("1").Reverse())
}

func TestPath_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, mpath.Path("").Validate())
	require.NoError(t, mpath.Path("0101").Validate())
	require.Error(t, mpath.Path("012").Validate())
	require.Error(t, mpath.Path("LR").Validate())
}

func TestDepth(t *testing.T) {
	t.Parallel()

	for size, want := range map[int]int{
		1: 0, 2: 1, 3: 2, 4: 2, 5: 3, 8: 3, 9: 4, 16: 4, 17: 5,
	} {
		require.Equalf(t, want, mpath.Depth(size), "Depth(%d)", size)
	}
}
