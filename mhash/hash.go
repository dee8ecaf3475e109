package mhash

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
)

// Hash is a fixed-length digest produced by a hash engine.
// The length depends on the engine.
type Hash []byte

// Hashes is an ordered sequence of [Hash] values.
type Hashes []Hash

// ErrIncomparable is returned from [Sort]
// when the hashes do not all share the same length.
var ErrIncomparable = errors.New("hashes have mismatched lengths")

// FromHex decodes a hexadecimal string into a Hash.
func FromHex(s string) (Hash, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode hash hex: %w", err)
	}
	return Hash(b), nil
}

// String returns the lower-case hexadecimal representation of h.
func (h Hash) String() string {
	return hex.EncodeToString(h)
}

// Equal reports whether h and o contain the same bytes.
func (h Hash) Equal(o Hash) bool {
	return bytes.Equal(h, o)
}

// IsZero reports whether every byte of h is zero.
// An empty hash is not considered zero.
func (h Hash) IsZero() bool {
	if len(h) == 0 {
		return false
	}
	for _, b := range h {
		if b != 0 {
			return false
		}
	}
	return true
}

// Clone returns a copy of h that does not share memory with h.
func (h Hash) Clone() Hash {
	return Hash(bytes.Clone(h))
}

// Hex returns the hexadecimal representation of every hash in hs.
func (hs Hashes) Hex() []string {
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = h.String()
	}
	return out
}

// Sort sorts hs in place by the lexicographic order of the raw bytes.
// The sort is stable, so duplicate hashes keep their relative order.
//
// If the hashes are not all the same length, Sort returns [ErrIncomparable]
// and leaves hs untouched.
func Sort(hs Hashes) error {
	if len(hs) == 0 {
		return nil
	}
	sz := len(hs[0])
	for i, h := range hs {
		if len(h) != sz {
			return fmt.Errorf(
				"%w: hash at index %d has length %d, expected %d",
				ErrIncomparable, i, len(h), sz,
			)
		}
	}

	slices.SortStableFunc(hs, func(a, b Hash) int {
		return bytes.Compare(a, b)
	})
	return nil
}
