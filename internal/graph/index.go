package graph

import "github.com/giantswarm/piceli/internal/object"

// index provides the lookups edge extractors need: resolving a bare
// (kind, namespace, name) reference against the input set, and listing
// every object of a given kind for selector matching.
type index struct {
	byKey      map[refKey]object.Identity
	byKind     map[string][]object.CanonicalObject
	byIdentity map[object.Identity]object.CanonicalObject
}

type refKey struct {
	kind      string
	namespace string
	name      string
}

func buildIndex(objects []object.CanonicalObject) *index {
	idx := &index{
		byKey:      make(map[refKey]object.Identity, len(objects)),
		byKind:     make(map[string][]object.CanonicalObject),
		byIdentity: make(map[object.Identity]object.CanonicalObject, len(objects)),
	}
	for _, o := range objects {
		id := o.Identity()
		idx.byKey[refKey{kind: id.Kind, namespace: id.Namespace, name: id.Name}] = id
		idx.byKind[id.Kind] = append(idx.byKind[id.Kind], o)
		idx.byIdentity[id] = o
	}
	return idx
}

// resolve looks up a reference by its exact (kind, namespace, name); it
// does no namespace defaulting, so extractors fill in the referencing
// object's namespace themselves where the target is namespaced.
func (idx *index) resolve(kind, namespace, name string) (object.Identity, bool) {
	id, ok := idx.byKey[refKey{kind: kind, namespace: namespace, name: name}]
	return id, ok
}

// ofKind returns every object of the given kind present in the input set.
func (idx *index) ofKind(kind string) []object.CanonicalObject {
	return idx.byKind[kind]
}
