package loader

import "github.com/giantswarm/piceli/internal/object"

// StaticSource wraps a pre-built slice of CanonicalObjects, for callers
// constructing objects in Go (tests, embedded default manifests) rather
// than reading them from a filesystem.
type StaticSource struct {
	Objects []object.CanonicalObject
}

func NewStaticSource(objects ...object.CanonicalObject) *StaticSource {
	return &StaticSource{Objects: objects}
}

func (s *StaticSource) Load() ([]object.CanonicalObject, error) {
	return s.Objects, nil
}
