package compare

// ignoredPaths is the fixed, kind-agnostic set of server-managed fields
// always ignored regardless of kind. "status" covers the entire subtree:
// matchesPrefix treats it as a prefix match, not an exact one.
var ignoredPaths = []string{
	"metadata.creationTimestamp",
	"metadata.resourceVersion",
	"metadata.uid",
	"metadata.generation",
	"metadata.selfLink",
	"metadata.managedFields",
	"status",
}

// ownerReferencesPath is metadata.ownerReferences,
// ignored only when the desired side has none (an empty/absent list),
// since an explicit desired owner reference is a real diff.
const ownerReferencesPath = "metadata.ownerReferences"

// DefaultRule is one entry of the default-value table: a path present on
// the live side, absent on the desired side, classified Defaulted when its
// live value equals Value.
type DefaultRule struct {
	Path  string
	Value interface{}
}

// defaultsByKind encodes known server defaults per kind. Unknown
// (kind, path) combinations fall through to Differing, per SPEC_FULL.md §4.3.
var defaultsByKind = map[string][]DefaultRule{
	"StorageClass": {
		{Path: "reclaimPolicy", Value: "Delete"},
		{Path: "volumeBindingMode", Value: "Immediate"},
	},
	"Deployment": {
		{Path: "spec.revisionHistoryLimit", Value: int64(10)},
		{Path: "spec.strategy.type", Value: "RollingUpdate"},
		{Path: "spec.progressDeadlineSeconds", Value: int64(600)},
	},
	"Service": {
		{Path: "spec.sessionAffinity", Value: "None"},
		{Path: "spec.type", Value: "ClusterIP"},
	},
	"ServiceAccount": {
		{Path: "automountServiceAccountToken", Value: true},
	},
}

// setValuedPatterns lists the sequence paths compared as multisets instead
// of positionally; each element's identity key comes from identityKey in
// compare.go.
var setValuedPatterns = []string{
	"metadata.finalizers",
	"spec.template.spec.containers.*.env",
	"subjects",
	"rules",
}

// isSetValued reports whether p names a sequence that compares as a
// multiset rather than positionally.
func isSetValued(p Path) bool {
	for _, pattern := range setValuedPatterns {
		if matchesPattern(p, pattern) {
			return true
		}
	}
	return false
}
