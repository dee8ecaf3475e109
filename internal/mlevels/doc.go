// Package mlevels contains the internal level-by-level construction
// of a binary Merkle tree.
//
// The tree is stored as a stack of levels, the root's singleton level first
// and the leaf level last.
// Each level is derived from the one below it by hashing adjacent pairs,
// left to right.
// When a level has an odd element count, the trailing element
// is promoted to the level above unchanged, without being hashed.
// So the last leaves of a tree whose size is not a power of two
// reach the root through fewer hashes than the other leaves,
// even though every leaf sits on the bottom level.
package mlevels
