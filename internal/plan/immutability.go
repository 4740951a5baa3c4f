package plan

import (
	"strings"

	"github.com/giantswarm/piceli/internal/compare"
)

// ImmutabilityRule is one entry of the kind-specific immutability table:
// any Differing path under PathPrefix for Kind mandates REPLACE instead of
// PATCH. An empty PathPrefix matches the whole object, i.e. the kind's
// spec is immutable wholesale.
type ImmutabilityRule struct {
	Kind       string
	PathPrefix string
}

// immutabilityRules lists the kinds and fields spec.md §4.4 names as
// immutable-spec: Job and PersistentVolume can't be patched at all once
// created; a selector-bearing Service can't have its selector or
// clusterIP changed in place; StorageClass is immutable wholesale.
var immutabilityRules = []ImmutabilityRule{
	{Kind: "Job", PathPrefix: ""},
	{Kind: "PersistentVolume", PathPrefix: ""},
	{Kind: "StorageClass", PathPrefix: ""},
	{Kind: "Service", PathPrefix: "spec.selector"},
	{Kind: "Service", PathPrefix: "spec.clusterIP"},
}

// requiresReplace reports whether kind's diff mandates REPLACE rather than
// PATCH: the kind is immutable wholesale, or a Differing path matches one
// of its forbidden prefixes.
func requiresReplace(kind string, entries []compare.DiffEntry) bool {
	for _, rule := range immutabilityRules {
		if rule.Kind != kind {
			continue
		}
		if rule.PathPrefix == "" {
			return true
		}
		for _, e := range entries {
			if e.Classification != compare.Differing {
				continue
			}
			if matchesPrefix(e.Path, rule.PathPrefix) {
				return true
			}
		}
	}
	return false
}

// matchesPrefix reports whether pattern (a dotted key path with no
// wildcards) is a prefix of p. Reimplemented here rather than exported from
// internal/compare: the immutability table only ever needs simple dotted
// prefixes, not compare's pattern-matching rules.
func matchesPrefix(p compare.Path, pattern string) bool {
	parts := strings.Split(pattern, ".")
	if len(parts) > len(p) {
		return false
	}
	for i, want := range parts {
		if p[i].IsIndex || p[i].Key != want {
			return false
		}
	}
	return true
}
