package plan

import "github.com/giantswarm/piceli/internal/object"

// ActionKind is the planner's decision for one object.
type ActionKind int

const (
	NoAction ActionKind = iota
	Create
	Patch
	Replace
)

func (k ActionKind) String() string {
	switch k {
	case NoAction:
		return "NO_ACTION"
	case Create:
		return "CREATE"
	case Patch:
		return "PATCH"
	case Replace:
		return "REPLACE"
	default:
		return "UNKNOWN"
	}
}

// Action is the planner's output for one object: the target identity, the
// chosen ActionKind, and the minimal payload the transport needs.
type Action struct {
	Kind       ActionKind
	Identity   object.Identity
	Desired    object.Node // CREATE, REPLACE: the full desired object.
	MergePatch []byte      // PATCH: an RFC 7396 merge-patch document.
}
