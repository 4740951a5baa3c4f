package loader

import (
	"fmt"

	"github.com/giantswarm/piceli/internal/object"
)

// Load merges the objects produced by every source, in order, and rejects
// the result if two objects share an Identity. Duplicate detection happens
// here, before the graph resolver or planner ever see the set, so a
// collision is reported against its input origins rather than surfacing
// later as an ambiguous graph or plan error.
func Load(sources ...Source) ([]object.CanonicalObject, error) {
	seen := make(map[object.Identity][]string)
	var merged []object.CanonicalObject

	for _, src := range sources {
		objs, err := src.Load()
		if err != nil {
			return nil, fmt.Errorf("loader: %w", err)
		}
		for _, obj := range objs {
			seen[obj.Identity()] = append(seen[obj.Identity()], obj.Origin())
			merged = append(merged, obj)
		}
	}

	for id, origins := range seen {
		if len(origins) > 1 {
			return nil, &object.DuplicateIdentityError{Identity: id, Origins: origins}
		}
	}

	return merged, nil
}
