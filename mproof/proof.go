// Package mproof contains the portable form of a Merkle inclusion proof:
// its canonical string encoding, the strict parser for that encoding,
// and replay verification that needs only the proof, the leaf, and a root.
package mproof

import (
	"encoding/base64"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/gordian-engine/merkle/mhash"
	"github.com/gordian-engine/merkle/mpath"
)

// Proof is an inclusion proof for a single leaf.
type Proof struct {
	// Trail holds one sibling hash per tree level below the root,
	// ordered the same way as Path: from the root's child level
	// down to the leaf's own sibling.
	//
	// An all-zero entry marks a level where the leaf's ancestor
	// was promoted without a sibling.
	// Such placeholders only ever form a run at the end of Trail,
	// where Path holds Left padding,
	// and only when Path starts with a Right step.
	// [Replay] rejects placeholders in any other position.
	Trail mhash.Hashes

	Path mpath.Path

	// Engine is the name of the hash engine that built the tree.
	Engine string

	// Size is the number of leaves in the tree when the proof was issued.
	// It is informational; verification never depends on it.
	Size int
}

// InvalidProofError is returned from [Parse] for any input
// that is not a canonical proof string.
// It deliberately does not wrap the underlying cause.
type InvalidProofError struct {
	Input string
}

func (e InvalidProofError) Error() string {
	return "invalid proof: " + e.Input
}

// String returns the canonical encoding of p:
// the base64 encoding of the dot-separated concatenation of
// the hexadecimal trail hashes, the path, the engine, and the size.
//
//	      (root)
//	       /  \
//	     ()    hash2
//	    /  \
//	(leaf)  hash1
//
//	=> base64("<hash2><hash1>.11.sha-256.4")
func (p Proof) String() string {
	var sb strings.Builder
	for _, h := range p.Trail {
		sb.WriteString(h.String())
	}
	sb.WriteByte('.')
	sb.WriteString(string(p.Path))
	sb.WriteByte('.')
	sb.WriteString(p.Engine)
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(p.Size))

	return base64.StdEncoding.EncodeToString([]byte(sb.String()))
}

// Parse decodes a proof produced by [Proof.String].
// The engine named in the proof must be registered in engines,
// which determines the expected length of each trail hash.
//
// Every failure is reported as an [InvalidProofError] holding s.
func Parse(s string, engines *mhash.Registry) (Proof, error) {
	invalid := InvalidProofError{Input: s}

	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return Proof{}, invalid
	}

	parts := strings.Split(string(raw), ".")
	if len(parts) != 4 {
		return Proof{}, invalid
	}
	trailHex, path, engine, sizeStr := parts[0], mpath.Path(parts[1]), parts[2], parts[3]

	size, err := strconv.Atoi(sizeStr)
	if err != nil || size <= 0 {
		return Proof{}, invalid
	}

	hashSize, err := engines.Size(engine)
	if err != nil {
		return Proof{}, invalid
	}

	if err := path.Validate(); err != nil {
		return Proof{}, invalid
	}

	hexLen := 2 * hashSize
	if len(trailHex)%hexLen != 0 {
		return Proof{}, invalid
	}

	trail := make(mhash.Hashes, len(trailHex)/hexLen)
	for i := range trail {
		h, err := hex.DecodeString(trailHex[i*hexLen : (i+1)*hexLen])
		if err != nil {
			return Proof{}, invalid
		}
		trail[i] = h
	}

	return Proof{
		Trail:  trail,
		Path:   path,
		Engine: engine,
		Size:   size,
	}, nil
}
