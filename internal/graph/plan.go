package graph

import "github.com/giantswarm/piceli/internal/object"

// Plan builds the layered, dependency-respecting deployment schedule from a
// flat object set. With validate=false (the default for `deploy run`),
// references outside the set are assumed pre-existing and silently
// dropped. With validate=true (`deploy plan -v` / `deploy detail -v`),
// unresolved references not named in external raise DanglingReferenceError.
//
// Plan returns *DuplicateError, *DanglingReferenceError or *CycleError on
// failure; all three are input errors per SPEC_FULL.md §7, surfaced before
// any cluster contact.
func Plan(objects []object.CanonicalObject, validate bool, external map[ExternalRef]bool, opts Options) (Layered, error) {
	g, err := build(objects, opts, validate, external)
	if err != nil {
		return Layered{}, err
	}
	return assignLevels(g)
}
