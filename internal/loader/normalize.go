package loader

import (
	"github.com/giantswarm/piceli/internal/object"
)

// canonicalize turns one decoded manifest document into a CanonicalObject.
// kind and metadata.name are required; an absent apiVersion yields an
// empty group and version. From metadata only name, namespace, labels and
// annotations are kept. The Spec() tree is built by specNode
// (object.CanonicalObject.Full reverses this unwrapping using its own
// kinds-without-a-spec-field table).
func canonicalize(fields map[string]interface{}, origin string, source object.SourceKind) (object.CanonicalObject, error) {
	kind, _ := fields["kind"].(string)
	if kind == "" {
		return object.CanonicalObject{}, &object.MalformedObjectError{Origin: origin, Reason: "missing kind"}
	}

	apiVersion, _ := fields["apiVersion"].(string)
	group, version := splitAPIVersion(apiVersion)

	metadata, _ := fields["metadata"].(map[string]interface{})
	name, _ := metadata["name"].(string)
	if name == "" {
		return object.CanonicalObject{}, &object.MalformedObjectError{Origin: origin, Reason: "missing metadata.name"}
	}
	namespace, _ := metadata["namespace"].(string)

	id := object.Identity{Group: group, Version: version, Kind: kind, Namespace: namespace, Name: name}

	labels := stringMapOf(metadata["labels"])
	annotations := stringMapOf(metadata["annotations"])

	spec := specNode(fields)
	if spec.Kind != object.KindMap {
		return object.CanonicalObject{}, &object.MalformedObjectError{Origin: origin, Reason: "spec is not a map"}
	}

	return object.New(id, labels, annotations, spec, origin, source), nil
}

// splitAPIVersion separates "group/version" into its parts; a core-group
// apiVersion like "v1" has no slash and yields an empty group.
func splitAPIVersion(apiVersion string) (group, version string) {
	for i := 0; i < len(apiVersion); i++ {
		if apiVersion[i] == '/' {
			return apiVersion[:i], apiVersion[i+1:]
		}
	}
	return "", apiVersion
}

// specNode extracts "everything below metadata": the value of a literal
// "spec" key if the manifest has one, otherwise every top-level field
// besides apiVersion/kind/metadata collected back into one map. Real
// Kubernetes manifests never mix the two shapes for one kind, so this
// needs no kind-specific table.
func specNode(fields map[string]interface{}) object.Node {
	if spec, ok := fields["spec"]; ok {
		return object.FromInterface(spec)
	}
	rest := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if k == "apiVersion" || k == "kind" || k == "metadata" {
			continue
		}
		rest[k] = v
	}
	return object.FromInterface(rest)
}

func stringMapOf(v interface{}) map[string]string {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, val := range m {
		s, ok := val.(string)
		if !ok {
			continue
		}
		out[k] = s
	}
	return out
}
