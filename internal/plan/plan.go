package plan

import (
	"fmt"

	"github.com/giantswarm/piceli/internal/compare"
	"github.com/giantswarm/piceli/internal/object"
)

// Decide chooses the Action for one object. liveExists reports whether the
// object was found on the cluster; when false, live is ignored and the
// result is always CREATE. desired is the object's Full() tree; live, when
// liveExists, is the cluster object's Full() tree as read back by the
// transport layer.
func Decide(kind string, identity object.Identity, liveExists bool, live, desired object.Node) (Action, error) {
	if !liveExists {
		return Action{Kind: Create, Identity: identity, Desired: desired}, nil
	}

	result := compare.Compare(kind, live, desired)
	if !result.NeedsAction {
		return Action{Kind: NoAction, Identity: identity}, nil
	}

	if requiresReplace(kind, result.Entries) {
		return Action{Kind: Replace, Identity: identity, Desired: desired}, nil
	}

	patch, err := buildMergePatch(kind, live, desired, result.Entries)
	if err != nil {
		return Action{}, fmt.Errorf("plan %s: %w", identity, err)
	}
	return Action{Kind: Patch, Identity: identity, MergePatch: patch}, nil
}
