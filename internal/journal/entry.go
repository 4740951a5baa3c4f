package journal

import (
	"github.com/giantswarm/piceli/internal/object"
	"github.com/giantswarm/piceli/internal/plan"
)

// Entry is one JournalEntry (spec.md §3): the live object's state
// immediately before a mutation, or HasPreImage=false for a CREATE (the
// object did not previously exist). Action records which ActionKind
// produced the mutation, for diagnostic output only — replay never
// branches on it, only on HasPreImage.
type Entry struct {
	Identity    object.Identity
	PreImage    object.Node
	HasPreImage bool
	Action      plan.ActionKind
}
