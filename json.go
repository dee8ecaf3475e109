package merkle

import (
	"fmt"
	"log/slog"

	"github.com/goccy/go-json"
	"github.com/gordian-engine/merkle/mhash"
	"github.com/gordian-engine/merkle/mhash/mhsha256"
)

// jsonTree is the persisted form of a Tree.
// Field order is significant: it fixes the order of keys in the output.
type jsonTree struct {
	Options *Options `json:"options"`
	Leaves  []string `json:"leaves"`
}

// JSON returns the tree's options and hexadecimal leaves.
// A tree with no leaves serializes with an empty leaf list.
//
// JSON returns [ErrTreeNotBuilt] if the tree has leaves
// but its last admission did not build.
func (t *Tree) JSON() ([]byte, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if len(t.leaves) > 0 && !t.ready() {
		return nil, ErrTreeNotBuilt
	}

	opts := t.opts
	out := jsonTree{
		Options: &opts,
		Leaves:  t.leaves.Hex(),
	}

	b, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tree: %w", err)
	}
	return b, nil
}

// TreeFromJSON reconstructs a tree written by [*Tree.JSON],
// using the engines from [Engines].
//
// Missing options take their defaults, and an empty engine means SHA-256.
// Leaves are admitted as already hashed, exactly as [*Tree.AddLeaves]
// admits them: a leaf that is not valid hex is skipped,
// and a leaf that is not the engine's digest size is dropped.
// The input is rejected only if no leaf survives.
// In particular, the output of JSON for a tree without leaves
// does not load back.
//
// Every failure is reported as an [InvalidJSONError].
func TreeFromJSON(log *slog.Logger, data []byte) (*Tree, error) {
	invalid := InvalidJSONError{Input: string(data)}

	var in jsonTree
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, invalid
	}

	opts := DefaultOptions()
	if in.Options != nil {
		opts = *in.Options
	}
	if opts.Engine == "" {
		opts.Engine = mhsha256.Name
	}

	t, err := NewTree(log, TreeConfig{Options: opts})
	if err != nil {
		return nil, invalid
	}

	leaves := make([][]byte, 0, len(in.Leaves))
	for i, s := range in.Leaves {
		h, err := mhash.FromHex(s)
		if err != nil {
			log.Debug("Skipping leaf with invalid hex", "leaf_index", i, "err", err)
			continue
		}
		leaves = append(leaves, h)
	}

	// An empty batch would leave the tree unbuilt without an error.
	if len(leaves) == 0 {
		return nil, invalid
	}

	if _, err := t.AddLeaves(false, leaves...); err != nil {
		return nil, invalid
	}

	return t, nil
}
