package object

import "sort"

// Kind discriminates the three shapes a Node can take.
type Kind int

const (
	KindScalar Kind = iota
	KindSeq
	KindMap
)

// MapEntry is one insertion-ordered key/value pair of a Map node. Using a
// slice of entries instead of a Go map preserves the loader's key order,
// which the comparator's pre-order traversal and the CLI's diagnostic
// output both depend on for stability.
type MapEntry struct {
	Key   string
	Value Node
}

// Node is the tagged-sum representation of one position in a spec tree:
// exactly one of Scalar, Seq or Map is meaningful, selected by Kind.
// Scalar holds null, bool, int64, float64 or string values as interface{}.
type Node struct {
	Kind   Kind
	Scalar interface{}
	Seq    []Node
	Map    []MapEntry
}

// NewScalar wraps a leaf value (nil, bool, int64, float64, string).
func NewScalar(v interface{}) Node {
	return Node{Kind: KindScalar, Scalar: v}
}

// NewSeq wraps an ordered sequence of nodes.
func NewSeq(items []Node) Node {
	return Node{Kind: KindSeq, Seq: items}
}

// NewMap wraps an insertion-ordered set of key/value pairs.
func NewMap(entries []MapEntry) Node {
	return Node{Kind: KindMap, Map: entries}
}

// IsZero reports whether the node is the Go zero value. An explicit scalar
// null (NewScalar(nil)) has the same representation and also reports true.
func (n Node) IsZero() bool {
	return n.Kind == KindScalar && n.Scalar == nil && n.Seq == nil && n.Map == nil
}

// Get returns the value for key in a Map node, and whether it was present.
// Calling Get on a non-Map node returns the zero Node and false.
func (n Node) Get(key string) (Node, bool) {
	if n.Kind != KindMap {
		return Node{}, false
	}
	for _, e := range n.Map {
		if e.Key == key {
			return e.Value, true
		}
	}
	return Node{}, false
}

// Path walks a dotted sequence of map keys, returning the node found at the
// end of the path and whether every segment resolved. Path does not
// descend into Seq nodes; callers needing indexed access use GetIndex.
func (n Node) Path(keys ...string) (Node, bool) {
	cur := n
	for _, k := range keys {
		next, ok := cur.Get(k)
		if !ok {
			return Node{}, false
		}
		cur = next
	}
	return cur, true
}

// GetIndex returns element i of a Seq node, and whether the index is valid.
func (n Node) GetIndex(i int) (Node, bool) {
	if n.Kind != KindSeq || i < 0 || i >= len(n.Seq) {
		return Node{}, false
	}
	return n.Seq[i], true
}

// AsString returns the scalar's string value, or "" and false if the node
// is not a Scalar holding a string.
func (n Node) AsString() (string, bool) {
	if n.Kind != KindScalar {
		return "", false
	}
	s, ok := n.Scalar.(string)
	return s, ok
}

// AsBool returns the scalar's bool value, or false and false if the node is
// not a Scalar holding a bool.
func (n Node) AsBool() (bool, bool) {
	if n.Kind != KindScalar {
		return false, false
	}
	b, ok := n.Scalar.(bool)
	return b, ok
}

// AsInt64 returns the scalar's integer value, or 0 and false if the node
// is not a Scalar holding an int64 (see normalizeScalar for how numeric
// values arrive at that type).
func (n Node) AsInt64() (int64, bool) {
	if n.Kind != KindScalar {
		return 0, false
	}
	i, ok := n.Scalar.(int64)
	return i, ok
}

// Len returns the number of elements of a Seq or entries of a Map; 0 for a
// Scalar.
func (n Node) Len() int {
	switch n.Kind {
	case KindSeq:
		return len(n.Seq)
	case KindMap:
		return len(n.Map)
	default:
		return 0
	}
}

// ToInterface converts a Node back into plain Go values (map[string]any,
// []any, or a scalar) suitable for JSON/YAML marshaling or for handing to
// an unstructured.Unstructured's Object field.
func (n Node) ToInterface() interface{} {
	switch n.Kind {
	case KindSeq:
		out := make([]interface{}, len(n.Seq))
		for i, v := range n.Seq {
			out[i] = v.ToInterface()
		}
		return out
	case KindMap:
		out := make(map[string]interface{}, len(n.Map))
		for _, e := range n.Map {
			out[e.Key] = e.Value.ToInterface()
		}
		return out
	default:
		return n.Scalar
	}
}

// FromInterface builds a Node from plain Go values as produced by
// sigs.k8s.io/yaml or encoding/json decoding into interface{} (map[string]
// interface{}, []interface{}, scalars). Map entries are emitted in sorted
// key order, so the result is deterministic but does not preserve the
// source document's key order.
func FromInterface(v interface{}) Node {
	switch val := v.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries := make([]MapEntry, 0, len(keys))
		for _, k := range keys {
			entries = append(entries, MapEntry{Key: k, Value: FromInterface(val[k])})
		}
		return NewMap(entries)
	case []interface{}:
		items := make([]Node, 0, len(val))
		for _, e := range val {
			items = append(items, FromInterface(e))
		}
		return NewSeq(items)
	default:
		return NewScalar(normalizeScalar(val))
	}
}

// normalizeScalar collapses the numeric types encoding/json and
// sigs.k8s.io/yaml hand back (float64, int, int32) to either int64 or
// float64 so equality comparisons in internal/compare don't have to guess.
// Other values, int64 included, pass through unchanged.
func normalizeScalar(v interface{}) interface{} {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case float64:
		if n == float64(int64(n)) {
			return int64(n)
		}
		return n
	default:
		return v
	}
}
