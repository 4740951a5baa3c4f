package object

import "fmt"

// DuplicateIdentityError is raised by the loader when two CanonicalObjects
// in the same input set share an identity. It is an input error, surfaced
// before the resolver or comparator ever run.
type DuplicateIdentityError struct {
	Identity Identity
	Origins  []string
}

func (e *DuplicateIdentityError) Error() string {
	return fmt.Sprintf("duplicate identity %s from origins %v", e.Identity, e.Origins)
}

// MalformedObjectError is raised when a decoded document cannot be
// normalized into a CanonicalObject: missing kind, missing name, or a spec
// tree that is not a Map at its root.
type MalformedObjectError struct {
	Origin string
	Reason string
}

func (e *MalformedObjectError) Error() string {
	return fmt.Sprintf("malformed object from %s: %s", e.Origin, e.Reason)
}
