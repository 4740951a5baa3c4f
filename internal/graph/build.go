package graph

import "github.com/giantswarm/piceli/internal/object"

// Options tunes graph construction. The zero value matches
// DefaultOptions() except for InferServiceSelectors, so callers should
// always start from DefaultOptions().
type Options struct {
	// InferServiceSelectors toggles rule 7 (Service → matching workload).
	// The selector-match heuristic can match objects the caller did not
	// intend as the "owning" workload; SPEC_FULL.md resolves the open
	// question in spec.md §9 by defaulting this on and leaving it
	// switchable for callers who want exact control over Service ordering.
	InferServiceSelectors bool
}

// DefaultOptions returns the graph options piceli's CLI uses.
func DefaultOptions() Options {
	return Options{InferServiceSelectors: true}
}

// ExternalRef names a reference the caller has pre-declared as resolving
// outside the input set, e.g. a ServiceAccount provisioned by a separate
// bootstrap process. Under validate=true, a reference matching an
// ExternalRef does not raise DanglingReferenceError.
type ExternalRef struct {
	Kind      string
	Namespace string
	Name      string
}

// Graph is the resolved dependency graph: every object in the input set
// plus, for each, the set of identities it depends on (must be applied
// before it). Immutable once built.
type Graph struct {
	objects map[object.Identity]object.CanonicalObject
	deps    map[object.Identity]map[object.Identity]bool
}

// Objects returns the full object set keyed by identity.
func (g *Graph) Objects() map[object.Identity]object.CanonicalObject {
	return g.objects
}

// DependenciesOf returns the identities id depends on.
func (g *Graph) DependenciesOf(id object.Identity) []object.Identity {
	deps := g.deps[id]
	out := make([]object.Identity, 0, len(deps))
	for d := range deps {
		out = append(out, d)
	}
	return out
}

// build constructs a Graph from a flat object set, inferring edges per the
// rules in edges.go plus namespace containment (rule 1). When validate is
// true, any reference that resolves to neither the input set nor external
// raises DanglingReferenceError.
func build(objects []object.CanonicalObject, opts Options, validate bool, external map[ExternalRef]bool) (*Graph, error) {
	seen := make(map[object.Identity]bool, len(objects))
	for _, o := range objects {
		id := o.Identity()
		if seen[id] {
			return nil, &DuplicateError{Identity: id}
		}
		seen[id] = true
	}

	idx := buildIndex(objects)
	g := &Graph{
		objects: idx.byIdentity,
		deps:    make(map[object.Identity]map[object.Identity]bool, len(objects)),
	}

	for _, o := range objects {
		id := o.Identity()
		g.deps[id] = make(map[object.Identity]bool)

		// Rule 1: namespace containment.
		if id.Namespace != "" {
			if nsID, ok := idx.resolve("Namespace", "", id.Namespace); ok {
				g.deps[id][nsID] = true
			}
		}

		extractor, ok := extractorsByKind[id.Kind]
		if !ok {
			continue
		}
		if id.Kind == "Service" && !opts.InferServiceSelectors {
			continue
		}

		for _, ref := range extractor(o, idx) {
			resolved, ok := idx.resolve(ref.Kind, ref.Namespace, ref.Name)
			if ok {
				if resolved != id {
					g.deps[id][resolved] = true
				}
				continue
			}
			if validate && !external[ExternalRef(ref)] {
				return nil, &DanglingReferenceError{
					From: id,
					To:   object.Identity{Kind: ref.Kind, Namespace: ref.Namespace, Name: ref.Name},
				}
			}
			// Not in the set and not flagged external: dropped silently,
			// the referenced target is assumed pre-existing on the cluster.
		}
	}

	return g, nil
}
