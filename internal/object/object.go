package object

// SourceKind records which loader.Source produced a CanonicalObject, for
// diagnostic output only; the core never branches on it.
type SourceKind string

const (
	SourceUnknown    SourceKind = ""
	SourceFilesystem SourceKind = "filesystem"
	SourceStatic     SourceKind = "static"
)

// CanonicalObject is the uniform in-memory representation of any Kubernetes
// object consumed by the core, regardless of which loader produced it.
// Immutable after construction: every accessor returns a copy or a
// read-only view so the graph, comparator, planner and journal can share
// one instance by reference without synchronization.
type CanonicalObject struct {
	identity    Identity
	labels      map[string]string
	annotations map[string]string
	spec        Node
	origin      string
	source      SourceKind
}

// New constructs a CanonicalObject. labels and annotations are copied so
// the caller's maps remain mutable without affecting the object.
func New(id Identity, labels, annotations map[string]string, spec Node, origin string, source SourceKind) CanonicalObject {
	return CanonicalObject{
		identity:    id,
		labels:      copyStringMap(labels),
		annotations: copyStringMap(annotations),
		spec:        spec,
		origin:      origin,
		source:      source,
	}
}

func (o CanonicalObject) Identity() Identity { return o.identity }

// Labels returns a copy of the object's labels; callers may mutate it
// freely without affecting the object.
func (o CanonicalObject) Labels() map[string]string { return copyStringMap(o.labels) }

// Annotations returns a copy of the object's annotations.
func (o CanonicalObject) Annotations() map[string]string { return copyStringMap(o.annotations) }

// Spec returns the object's spec tree. Node values are immutable by
// convention (never mutated in place by this repository's code), so
// returning it directly is safe.
func (o CanonicalObject) Spec() Node { return o.spec }

// WithNamespace returns a copy of o with its identity's namespace replaced;
// cluster-scoped kinds have no namespace concept, but WithNamespace does not
// itself know which kinds those are, so callers (config.Settings's -n
// override) should only call it where a namespace makes sense.
func (o CanonicalObject) WithNamespace(namespace string) CanonicalObject {
	id := o.identity
	id.Namespace = namespace
	o.identity = id
	return o
}

// Origin is an opaque diagnostic tag identifying where this object came
// from (a file path, a static-source label, a template lineage).
func (o CanonicalObject) Origin() string { return o.origin }

// Source reports which loader.Source kind produced this object.
func (o CanonicalObject) Source() SourceKind { return o.source }

// Full returns the whole object as a Node tree (apiVersion, kind, metadata,
// spec merged into one Map), the shape the transport layer needs to hand
// to unstructured.Unstructured.SetUnstructuredContent.
func (o CanonicalObject) Full() Node {
	metaEntries := []MapEntry{
		{Key: "name", Value: NewScalar(o.identity.Name)},
	}
	if o.identity.Namespace != "" {
		metaEntries = append(metaEntries, MapEntry{Key: "namespace", Value: NewScalar(o.identity.Namespace)})
	}
	if len(o.labels) > 0 {
		metaEntries = append(metaEntries, MapEntry{Key: "labels", Value: stringMapNode(o.labels)})
	}
	if len(o.annotations) > 0 {
		metaEntries = append(metaEntries, MapEntry{Key: "annotations", Value: stringMapNode(o.annotations)})
	}

	apiVersion := o.identity.Version
	if o.identity.Group != "" {
		apiVersion = o.identity.Group + "/" + o.identity.Version
	}

	entries := []MapEntry{
		{Key: "apiVersion", Value: NewScalar(apiVersion)},
		{Key: "kind", Value: NewScalar(o.identity.Kind)},
		{Key: "metadata", Value: NewMap(metaEntries)},
	}
	if hasSpecField(o.identity.Kind) {
		entries = append(entries, MapEntry{Key: "spec", Value: o.spec})
	} else if o.spec.Kind == KindMap {
		entries = append(entries, o.spec.Map...)
	}
	return NewMap(entries)
}

// kindsWithoutSpec lists kinds whose fields sit directly under the object
// root rather than nested under a "spec" key, matching their real
// Kubernetes schema. CanonicalObject.Spec() always holds "everything below
// metadata" unwrapped from any "spec:" key the manifest had; Full()
// reintroduces that wrapper for every kind not in this set.
var kindsWithoutSpec = map[string]bool{
	"ConfigMap":          true,
	"Secret":             true,
	"ServiceAccount":     true,
	"Role":               true,
	"ClusterRole":        true,
	"RoleBinding":        true,
	"ClusterRoleBinding": true,
	"Namespace":          true,
	"StorageClass":       true,
}

func hasSpecField(kind string) bool {
	return !kindsWithoutSpec[kind]
}

func stringMapNode(m map[string]string) Node {
	entries := make([]MapEntry, 0, len(m))
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// deterministic order for diagnostic stability; see tree.go FromInterface.
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	for _, k := range keys {
		entries = append(entries, MapEntry{Key: k, Value: NewScalar(m[k])})
	}
	return NewMap(entries)
}

func copyStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
