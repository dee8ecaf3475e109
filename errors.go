package merkle

import "errors"

// ErrEmptyTree is returned when a build is attempted with no leaves.
// It is an expected boundary condition rather than corruption,
// and retrying without new leaves fails the same way.
var ErrEmptyTree = errors.New("empty tree")

// ErrTreeNotBuilt is returned from queries that need built levels
// while the tree has pending or failed admissions.
var ErrTreeNotBuilt = errors.New("tree not built")

// ImpossibleToSortError is returned from [*Tree.AddLeaves]
// when the leaves cannot be ordered.
// The built-in engines always produce digests of their declared size,
// so this only happens with a registered engine that does not.
// The tree is left exactly as it was before the call.
type ImpossibleToSortError struct {
	Err error
}

func (e ImpossibleToSortError) Error() string {
	return "impossible to sort leaves: " + e.Err.Error()
}

func (e ImpossibleToSortError) Unwrap() error {
	return e.Err
}

// InvalidJSONError is returned from [TreeFromJSON]
// for any input that does not reconstruct a tree.
// It holds the input for diagnostics, but not the underlying cause.
type InvalidJSONError struct {
	Input string
}

func (e InvalidJSONError) Error() string {
	return "invalid JSON: " + e.Input
}
