package graph

import (
	"fmt"
	"strings"

	"github.com/giantswarm/piceli/internal/object"
)

// CycleError is returned by Plan when the input set contains a dependency
// cycle. Witness names one cycle found, not necessarily the only one.
type CycleError struct {
	Witness []object.Identity
}

func (e *CycleError) Error() string {
	names := make([]string, len(e.Witness))
	for i, id := range e.Witness {
		names[i] = id.String()
	}
	return fmt.Sprintf("dependency cycle detected: %s", strings.Join(names, " -> "))
}

// DuplicateError mirrors object.DuplicateIdentityError at the graph layer,
// returned when Plan is handed a set the loader did not already dedupe
// (e.g. a caller building a set with loader.StaticSource by hand).
type DuplicateError struct {
	Identity object.Identity
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate identity in input set: %s", e.Identity)
}

// DanglingReferenceError is returned by Plan when validate=true and a
// reference extractor names an identity that is neither present in the
// input set nor marked external by the caller.
type DanglingReferenceError struct {
	From object.Identity
	To   object.Identity
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("dangling reference: %s references %s, which is neither in the input set nor marked external", e.From, e.To)
}
