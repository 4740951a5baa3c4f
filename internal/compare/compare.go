package compare

import (
	"fmt"
	"sort"

	"github.com/giantswarm/piceli/internal/object"
)

// Classification categorizes one DiffEntry.
type Classification int

const (
	Equal Classification = iota
	Ignored
	Defaulted
	Differing
)

func (c Classification) String() string {
	switch c {
	case Equal:
		return "Equal"
	case Ignored:
		return "Ignored"
	case Defaulted:
		return "Defaulted"
	case Differing:
		return "Differing"
	default:
		return "Unknown"
	}
}

// DiffEntry records the classification of one path in the merged tree.
type DiffEntry struct {
	Path           Path
	Classification Classification
	Live           object.Node
	Desired        object.Node
}

// Result is the comparator's verdict for one object.
type Result struct {
	Entries     []DiffEntry
	NeedsAction bool
}

// Compare answers whether live already satisfies desired, for the given
// kind. live and desired are full object trees (object.CanonicalObject.Full
// shape: apiVersion/kind/metadata/spec fields at the root) so metadata- and
// status-scoped ignore rules apply uniformly. A nil live Node (IsZero)
// means the object does not exist on the cluster; callers should not call
// Compare in that case — the planner treats an absent live object as CREATE
// without consulting the comparator.
func Compare(kind string, live, desired object.Node) Result {
	var entries []DiffEntry
	walk(kind, nil, live, desired, &entries)

	needsAction := false
	for _, e := range entries {
		if e.Classification == Differing {
			needsAction = true
			break
		}
	}
	return Result{Entries: entries, NeedsAction: needsAction}
}

func walk(kind string, path Path, live, desired object.Node, out *[]DiffEntry) {
	if classification, ok := fixedClassification(path, live, desired); ok {
		*out = append(*out, DiffEntry{Path: path, Classification: classification, Live: live, Desired: desired})
		return
	}

	switch {
	case live.Kind == object.KindMap || desired.Kind == object.KindMap:
		walkMap(kind, path, live, desired, out)
	case live.Kind == object.KindSeq || desired.Kind == object.KindSeq:
		walkSeq(kind, path, live, desired, out)
	default:
		walkScalar(kind, path, live, desired, out)
	}
}

// fixedClassification handles the ignored-path table and the
// metadata.ownerReferences special case, which short-circuit traversal of
// their subtree (status in particular can be arbitrarily deep).
func fixedClassification(path Path, live, desired object.Node) (Classification, bool) {
	if len(path) == 0 {
		return 0, false
	}
	if path.String() == ownerReferencesPath && desired.Len() == 0 {
		return Ignored, true
	}
	for _, pattern := range ignoredPaths {
		if matchesPrefix(path, pattern) {
			return Ignored, true
		}
	}
	return 0, false
}

func walkMap(kind string, path Path, live, desired object.Node, out *[]DiffEntry) {
	liveKeys := mapKeyIndex(live)
	desiredKeys := mapKeyIndex(desired)

	keys := make([]string, 0, len(liveKeys)+len(desiredKeys))
	seen := make(map[string]bool)
	for _, e := range live.Map {
		if !seen[e.Key] {
			keys = append(keys, e.Key)
			seen[e.Key] = true
		}
	}
	for _, e := range desired.Map {
		if !seen[e.Key] {
			keys = append(keys, e.Key)
			seen[e.Key] = true
		}
	}

	for _, k := range keys {
		childPath := path.append(Segment{Key: k})
		liveChild, liveHas := liveKeys[k]
		desiredChild, desiredHas := desiredKeys[k]

		if liveHas && !desiredHas {
			if classification, ok := defaultedClassification(kind, childPath, liveChild); ok {
				*out = append(*out, DiffEntry{Path: childPath, Classification: classification, Live: liveChild, Desired: object.Node{}})
				continue
			}
			// Not a recognized default at this exact path: descend so that
			// a default matching a deeper leaf (e.g. spec.strategy.type
			// while desired omits spec.strategy entirely) is still found,
			// instead of marking the whole missing subtree Differing.
			walk(kind, childPath, liveChild, object.Node{}, out)
			continue
		}
		if !liveHas && desiredHas {
			walk(kind, childPath, object.Node{}, desiredChild, out)
			continue
		}
		walk(kind, childPath, liveChild, desiredChild, out)
	}
}

func mapKeyIndex(n object.Node) map[string]object.Node {
	m := make(map[string]object.Node, len(n.Map))
	for _, e := range n.Map {
		m[e.Key] = e.Value
	}
	return m
}

func defaultedClassification(kind string, path Path, live object.Node) (Classification, bool) {
	for _, rule := range defaultsByKind[kind] {
		if path.String() != rule.Path {
			continue
		}
		if scalarEqual(live.Scalar, rule.Value) {
			return Defaulted, true
		}
	}
	return 0, false
}

func walkSeq(kind string, path Path, live, desired object.Node, out *[]DiffEntry) {
	if isSetValued(path) {
		walkSetValuedSeq(kind, path, live, desired, out)
		return
	}

	n := live.Len()
	if desired.Len() > n {
		n = desired.Len()
	}
	for i := 0; i < n; i++ {
		childPath := path.append(Segment{Index: i, IsIndex: true})
		liveChild, liveHas := live.GetIndex(i)
		desiredChild, desiredHas := desired.GetIndex(i)
		if !liveHas {
			*out = append(*out, DiffEntry{Path: childPath, Classification: Differing, Live: object.Node{}, Desired: desiredChild})
			continue
		}
		if !desiredHas {
			*out = append(*out, DiffEntry{Path: childPath, Classification: Differing, Live: liveChild, Desired: object.Node{}})
			continue
		}
		walk(kind, childPath, liveChild, desiredChild, out)
	}
}

// walkSetValuedSeq compares two sequences as multisets keyed by a
// kind-specific identity: element name, or name+kind for RBAC subjects.
func walkSetValuedSeq(kind string, path Path, live, desired object.Node, out *[]DiffEntry) {
	liveByKey := indexByIdentity(live)
	desiredByKey := indexByIdentity(desired)

	keys := make([]string, 0, len(liveByKey)+len(desiredByKey))
	seen := make(map[string]bool)
	for k := range liveByKey {
		if !seen[k] {
			keys = append(keys, k)
			seen[k] = true
		}
	}
	for k := range desiredByKey {
		if !seen[k] {
			keys = append(keys, k)
			seen[k] = true
		}
	}
	sort.Strings(keys)

	for i, k := range keys {
		childPath := path.append(Segment{Index: i, IsIndex: true})
		liveChild, liveHas := liveByKey[k]
		desiredChild, desiredHas := desiredByKey[k]
		if liveHas && desiredHas {
			walk(kind, childPath, liveChild, desiredChild, out)
			continue
		}
		if liveHas {
			*out = append(*out, DiffEntry{Path: childPath, Classification: Differing, Live: liveChild, Desired: object.Node{}})
			continue
		}
		*out = append(*out, DiffEntry{Path: childPath, Classification: Differing, Live: object.Node{}, Desired: desiredChild})
	}
}

// indexByIdentity maps every element of a set-valued sequence by its
// identityKey.
func indexByIdentity(seq object.Node) map[string]object.Node {
	out := make(map[string]object.Node, seq.Len())
	for i, elem := range seq.Seq {
		out[identityKey(elem, i)] = elem
	}
	return out
}

// identityKey computes the multiset key for one element of a set-valued
// sequence: "name" for most kinds, "kind/name" when the element itself
// carries both (RBAC subjects).
func identityKey(elem object.Node, fallbackIndex int) string {
	if elem.Kind == object.KindScalar {
		if s, ok := elem.AsString(); ok {
			return s
		}
		return fmt.Sprintf("%v", elem.Scalar)
	}
	if name, ok := elem.Path("name"); ok {
		if s, ok := name.AsString(); ok {
			if k, ok := elem.Path("kind"); ok {
				if ks, ok := k.AsString(); ok {
					return ks + "/" + s
				}
			}
			return s
		}
	}
	return fmt.Sprintf("#%d", fallbackIndex)
}

func walkScalar(kind string, path Path, live, desired object.Node, out *[]DiffEntry) {
	if scalarEqual(live.Scalar, desired.Scalar) {
		*out = append(*out, DiffEntry{Path: path, Classification: Equal, Live: live, Desired: desired})
		return
	}
	*out = append(*out, DiffEntry{Path: path, Classification: Differing, Live: live, Desired: desired})
}

func scalarEqual(a, b interface{}) bool {
	return fmt.Sprintf("%v", a) == fmt.Sprintf("%v", b) && sameType(a, b)
}

func sameType(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return fmt.Sprintf("%T", a) == fmt.Sprintf("%T", b)
}
