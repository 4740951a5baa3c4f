package loader

import "github.com/giantswarm/piceli/internal/object"

// Source produces a set of CanonicalObjects. Load never assumes a Source is
// free of duplicates by itself; every object from every Source is checked
// against the merged set.
type Source interface {
	Load() ([]object.CanonicalObject, error)
}
