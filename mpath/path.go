// Package mpath converts between a leaf index and the
// root-to-leaf sequence of branch directions in a Merkle tree.
package mpath

import (
	"math/bits"
	"strings"
)

// Path is the sequence of branch directions from the root to a leaf,
// one [Left] or [Right] per tree level excluding the leaf level.
//
// Left is '1' and Right is '0'.
type Path string

const (
	Left  = '1'
	Right = '0'
)

// UnableToBuildPathError reports that a path could not be derived
// for the requested leaf position and tree shape.
// Path holds whatever was emitted before the failure.
type UnableToBuildPathError struct {
	Path string
}

func (e UnableToBuildPathError) Error() string {
	return "unable to build path, found: " + e.Path
}

// InvalidPathError is returned from [Path.Validate] and [Path.Index]
// for paths that cannot describe any leaf.
type InvalidPathError struct {
	Path   string
	Reason string
}

func (e InvalidPathError) Error() string {
	return "invalid path " + e.Path + ": " + e.Reason
}

// Build returns the path to the leaf at index,
// in a tree of size leaves and the given depth.
//
// At each level the current subtree of size s splits at
// half, the largest power of two strictly below s
// (half of the power-of-two bucket covering s).
// Indices below half go Left into a subtree of size half;
// others go Right into the remaining s-half leaves.
// Once the subtree holds a single leaf,
// the remaining levels are padded with Left.
//
//	      (root)
//	       /  \
//	     ()    h2
//	    /  \
//	  h1   (leaf)
//
// The leaf above has index 1 in a 4-leaf tree, so its path is "10".
func Build(index, size, depth int) (Path, error) {
	if size <= 0 || depth < 0 || index < 0 || index >= size {
		return "", UnableToBuildPathError{}
	}

	var sb strings.Builder
	sb.Grow(depth)

	for range depth {
		if size == 1 {
			sb.WriteByte(Left)
			continue
		}

		half := halfBucket(size)
		if index < half {
			sb.WriteByte(Left)
			size = half
		} else {
			sb.WriteByte(Right)
			index -= half
			size -= half
		}
	}

	return Path(sb.String()), nil
}

// Index is the inverse of [Build]:
// it returns the leaf index that p addresses in a tree of size leaves.
// The length of p must be the depth of such a tree.
func (p Path) Index(size int) (int, error) {
	if size <= 0 {
		return 0, InvalidPathError{Path: string(p), Reason: "tree size must be positive"}
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if want := Depth(size); len(p) != want {
		return 0, InvalidPathError{Path: string(p), Reason: "length does not match tree depth"}
	}

	index := 0
	for i := range len(p) {
		if size == 1 {
			if p[i] != Left {
				return 0, InvalidPathError{Path: string(p), Reason: "branches past a single leaf"}
			}
			continue
		}

		half := halfBucket(size)
		if p[i] == Left {
			size = half
		} else {
			index += half
			size -= half
		}
	}

	return index, nil
}

// Validate reports whether p only contains [Left] and [Right].
func (p Path) Validate() error {
	for i := range len(p) {
		if p[i] != Left && p[i] != Right {
			return InvalidPathError{Path: string(p), Reason: "unknown direction symbol"}
		}
	}
	return nil
}

// Reverse returns p ordered from the leaf to the root.
func (p Path) Reverse() Path {
	b := []byte(p)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return Path(b)
}

// Depth returns ceil(log2(size)), the depth of a tree with size leaves.
func Depth(size int) int {
	if size <= 1 {
		return 0
	}
	return bits.Len(uint(size - 1))
}

// halfBucket returns half of the smallest power of two that is >= size.
// Size must be at least 2.
func halfBucket(size int) int {
	return 1 << (bits.Len(uint(size-1)) - 1)
}
