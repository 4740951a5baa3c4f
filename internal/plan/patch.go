package plan

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/giantswarm/piceli/internal/compare"
	"github.com/giantswarm/piceli/internal/object"
)

// buildMergePatch computes the RFC 7396 merge-patch document that turns
// live into desired for the fields the comparator flagged Differing.
//
// Differing entries inside a sequence are coalesced up to their containing
// array field rather than patched per element: an RFC 7396 merge patch
// always replaces arrays wholesale (it has no notion of an array element
// patch), so trying to target "containers[0].image" directly would either
// be ignored or silently replace the whole containers array anyway.
// Coalescing makes that replacement explicit: the target tree gets the
// desired array in full at the field, then CreateMergePatch diffs live
// against that target the normal way.
func buildMergePatch(kind string, live, desired object.Node, entries []compare.DiffEntry) ([]byte, error) {
	fieldPaths := coalescedFieldPaths(entries)

	target := live
	for _, keys := range fieldPaths {
		value, hasDesired := desired.Path(keys...)
		target = writeField(target, keys, value, hasDesired)
	}

	liveJSON, err := json.Marshal(live.ToInterface())
	if err != nil {
		return nil, fmt.Errorf("marshal live object for %s merge patch: %w", kind, err)
	}
	targetJSON, err := json.Marshal(target.ToInterface())
	if err != nil {
		return nil, fmt.Errorf("marshal target object for %s merge patch: %w", kind, err)
	}

	patch, err := jsonpatch.CreateMergePatch(liveJSON, targetJSON)
	if err != nil {
		return nil, fmt.Errorf("create merge patch for %s: %w", kind, err)
	}
	return patch, nil
}

// coalescedFieldPaths collects the deduplicated set of map-key paths (no
// sequence indices) that need to move from live to desired: the Differing
// entry's own path if it never enters a sequence, or the path up to but
// excluding the first sequence index otherwise.
func coalescedFieldPaths(entries []compare.DiffEntry) [][]string {
	seen := make(map[string]bool)
	var out [][]string
	for _, e := range entries {
		if e.Classification != compare.Differing {
			continue
		}
		var keys []string
		for _, seg := range e.Path {
			if seg.IsIndex {
				break
			}
			keys = append(keys, seg.Key)
		}
		if len(keys) == 0 {
			continue
		}
		joined := fmt.Sprintf("%v", keys)
		if seen[joined] {
			continue
		}
		seen[joined] = true
		out = append(out, keys)
	}
	return out
}

// writeField returns a copy of root with the value at the dotted key path
// keys set to value, or removed entirely if hasValue is false (letting
// CreateMergePatch emit the RFC 7396 null-to-delete marker on its own).
func writeField(root object.Node, keys []string, value object.Node, hasValue bool) object.Node {
	if len(keys) == 0 {
		return value
	}

	key := keys[0]
	entries := make([]object.MapEntry, 0, len(root.Map)+1)
	found := false
	for _, e := range root.Map {
		if e.Key != key {
			entries = append(entries, e)
			continue
		}
		found = true
		if len(keys) == 1 {
			if hasValue {
				entries = append(entries, object.MapEntry{Key: key, Value: value})
			}
			continue
		}
		entries = append(entries, object.MapEntry{Key: key, Value: writeField(e.Value, keys[1:], value, hasValue)})
	}
	if !found {
		if len(keys) == 1 {
			if hasValue {
				entries = append(entries, object.MapEntry{Key: key, Value: value})
			}
		} else {
			entries = append(entries, object.MapEntry{Key: key, Value: writeField(object.NewMap(nil), keys[1:], value, hasValue)})
		}
	}
	return object.NewMap(entries)
}
