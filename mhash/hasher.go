package mhash

// Hasher is a hash engine strategy.
//
// To be allocation-efficient, the Hasher implementation
// must append its digest to dst and return the extended slice,
// instead of creating a new byte slice.
// Hasher must not retain references to the dst or in slices.
//
// Furthermore, Hasher methods must be safe to call concurrently.
type Hasher interface {
	Hash(in, dst []byte) []byte

	// Size is the number of bytes appended by every call to Hash.
	Size() int
}

// Func maps input data to its digest.
// A Func returned by [NewFunc] is a pure function of its input.
type Func func(in []byte) Hash

// NewFunc returns a Func backed by h.
// If double is set, the returned Func computes the digest of the digest.
func NewFunc(h Hasher, double bool) Func {
	sz := h.Size()
	if !double {
		return func(in []byte) Hash {
			return h.Hash(in, make([]byte, 0, sz))
		}
	}

	return func(in []byte) Hash {
		// The second digest lands after the first, in the same allocation.
		buf := make([]byte, 0, 2*sz)
		first := h.Hash(in, buf)
		return h.Hash(first, first[sz:sz])
	}
}

// IsCorrect reports whether h has the shape of a digest produced by hr.
// Any byte pattern of the correct length is a valid digest.
func IsCorrect(h []byte, hr Hasher) bool {
	return len(h) == hr.Size()
}
