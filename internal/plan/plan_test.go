package plan

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/piceli/internal/object"
)

func mapNode(entries ...object.MapEntry) object.Node { return object.NewMap(entries) }
func strField(k, v string) object.MapEntry           { return object.MapEntry{Key: k, Value: object.NewScalar(v)} }

func jobID(name string) object.Identity {
	return object.Identity{Group: "batch", Version: "v1", Kind: "Job", Namespace: "default", Name: name}
}

// TestJobImageChangeForcesReplace reproduces spec.md §8 scenario 3: a Job's
// pod template is immutable, so an image change must become REPLACE, never
// PATCH, even though the comparator sees only one Differing leaf.
func TestJobImageChangeForcesReplace(t *testing.T) {
	container := func(image string) object.Node { return mapNode(strField("image", image)) }
	full := func(image string) object.Node {
		return mapNode(
			strField("apiVersion", "batch/v1"),
			strField("kind", "Job"),
			object.MapEntry{Key: "metadata", Value: mapNode(strField("name", "migrate"))},
			object.MapEntry{Key: "spec", Value: mapNode(
				object.MapEntry{Key: "template", Value: mapNode(
					object.MapEntry{Key: "spec", Value: mapNode(
						object.MapEntry{Key: "containers", Value: object.NewSeq([]object.Node{container(image)})},
					)},
				)},
			)},
		)
	}

	live := full("app:v1")
	desired := full("app:v2")

	action, err := Decide("Job", jobID("migrate"), true, live, desired)
	require.NoError(t, err)
	require.Equal(t, Replace, action.Kind)
	assert.False(t, action.Desired.IsZero(), "expected Desired to be populated for a Replace action")
}

// TestDeploymentImageChangePatches covers the common case: a Deployment
// (not in the immutability table) with a changed container image gets a
// PATCH carrying only the changed field.
func TestDeploymentImageChangePatches(t *testing.T) {
	full := func(image string, replicas int64) object.Node {
		return mapNode(
			strField("apiVersion", "apps/v1"),
			strField("kind", "Deployment"),
			object.MapEntry{Key: "metadata", Value: mapNode(strField("name", "web"))},
			object.MapEntry{Key: "spec", Value: mapNode(
				object.MapEntry{Key: "replicas", Value: object.NewScalar(replicas)},
				object.MapEntry{Key: "template", Value: mapNode(
					object.MapEntry{Key: "spec", Value: mapNode(
						object.MapEntry{Key: "containers", Value: object.NewSeq([]object.Node{
							mapNode(strField("name", "app"), strField("image", image)),
						})},
					)},
				)},
			)},
		)
	}

	live := full("app:v1", 3)
	desired := full("app:v2", 3)

	id := object.Identity{Group: "apps", Version: "v1", Kind: "Deployment", Namespace: "default", Name: "web"}
	action, err := Decide("Deployment", id, true, live, desired)
	require.NoError(t, err)
	require.Equal(t, Patch, action.Kind)
	require.NotEmpty(t, action.MergePatch)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(action.MergePatch, &decoded), "merge patch is not valid JSON")

	spec, ok := decoded["spec"].(map[string]interface{})
	require.True(t, ok, "expected patch to touch spec, got %v", decoded)

	_, ok = spec["replicas"]
	assert.False(t, ok, "patch should not touch unchanged replicas field: %v", spec)

	template, ok := spec["template"].(map[string]interface{})
	require.True(t, ok, "expected patch to touch spec.template, got %v", spec)

	_, ok = template["spec"]
	assert.True(t, ok, "expected the patch to reach the containers-bearing pod spec, got %v", template)
}

// TestServiceSelectorChangeForcesReplace covers the path-prefix half of the
// immutability table, not just the whole-kind half.
func TestServiceSelectorChangeForcesReplace(t *testing.T) {
	full := func(selectorValue string) object.Node {
		return mapNode(
			strField("apiVersion", "v1"),
			strField("kind", "Service"),
			object.MapEntry{Key: "metadata", Value: mapNode(strField("name", "web"))},
			object.MapEntry{Key: "spec", Value: mapNode(
				object.MapEntry{Key: "selector", Value: mapNode(strField("app", selectorValue))},
			)},
		)
	}

	live := full("web-old")
	desired := full("web-new")

	id := object.Identity{Version: "v1", Kind: "Service", Namespace: "default", Name: "web"}
	action, err := Decide("Service", id, true, live, desired)
	require.NoError(t, err)
	assert.Equal(t, Replace, action.Kind, "expected Replace for a selector change")
}

func TestNoActionWhenEqual(t *testing.T) {
	full := mapNode(
		strField("apiVersion", "v1"),
		strField("kind", "ConfigMap"),
		object.MapEntry{Key: "metadata", Value: mapNode(strField("name", "cfg"))},
		object.MapEntry{Key: "data", Value: mapNode(strField("key", "value"))},
	)

	id := object.Identity{Version: "v1", Kind: "ConfigMap", Namespace: "default", Name: "cfg"}
	action, err := Decide("ConfigMap", id, true, full, full)
	require.NoError(t, err)
	assert.Equal(t, NoAction, action.Kind, "expected NoAction for an identical object")
}

func TestCreateWhenLiveAbsent(t *testing.T) {
	desired := mapNode(
		strField("apiVersion", "v1"),
		strField("kind", "ConfigMap"),
		object.MapEntry{Key: "metadata", Value: mapNode(strField("name", "cfg"))},
	)
	id := object.Identity{Version: "v1", Kind: "ConfigMap", Namespace: "default", Name: "cfg"}

	action, err := Decide("ConfigMap", id, false, object.Node{}, desired)
	require.NoError(t, err)
	require.Equal(t, Create, action.Kind)
	assert.False(t, action.Desired.IsZero(), "expected Desired to be populated for a Create action")
}
