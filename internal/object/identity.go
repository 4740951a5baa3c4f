package object

import (
	"fmt"

	"k8s.io/apimachinery/pkg/runtime/schema"
)

// Identity is the globally unique key of a CanonicalObject within one
// deployment: (group, version, kind, namespace, name). Namespace is empty
// for cluster-scoped kinds.
type Identity struct {
	Group     string
	Version   string
	Kind      string
	Namespace string
	Name      string
}

// String renders a diagnostic-friendly form, omitting the namespace for
// cluster-scoped kinds so log lines stay readable.
func (id Identity) String() string {
	if id.Namespace == "" {
		return fmt.Sprintf("%s/%s", id.Kind, id.Name)
	}
	return fmt.Sprintf("%s/%s/%s", id.Kind, id.Namespace, id.Name)
}

// GroupVersionKind returns the identity's (group, version, kind) as plain
// strings. The edge-inference and readiness tables key on Kind alone.
func (id Identity) GroupVersionKind() (group, version, kind string) {
	return id.Group, id.Version, id.Kind
}

// GVK returns the apimachinery form of the identity's (group, version, kind),
// for callers that need to address the Kubernetes API machinery directly
// (e.g. building an unstructured.Unstructured or a REST mapping lookup).
func (id Identity) GVK() schema.GroupVersionKind {
	return schema.GroupVersionKind{Group: id.Group, Version: id.Version, Kind: id.Kind}
}

// Less implements the stable tie-break order the level assigner uses:
// (kind, namespace, name) ascending.
func (id Identity) Less(other Identity) bool {
	if id.Kind != other.Kind {
		return id.Kind < other.Kind
	}
	if id.Namespace != other.Namespace {
		return id.Namespace < other.Namespace
	}
	return id.Name < other.Name
}
