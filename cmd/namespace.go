package cmd

import (
	"github.com/giantswarm/piceli/internal/config"
	"github.com/giantswarm/piceli/internal/object"
)

// clusterScopedKinds lists the common cluster-scoped Kubernetes kinds the
// namespace override must never touch; everything not in this set is
// assumed namespace-scoped, matching the vast majority of manifests piceli
// deploys.
var clusterScopedKinds = map[string]bool{
	"Namespace":                true,
	"ClusterRole":              true,
	"ClusterRoleBinding":       true,
	"PersistentVolume":         true,
	"StorageClass":             true,
	"CustomResourceDefinition": true,
	"PriorityClass":            true,
	"Node":                     true,
}

// applyNamespaceOverride resolves Settings.Namespace against every
// namespace-scoped object in objs, per Settings.NamespaceConflict.
func applyNamespaceOverride(objs []object.CanonicalObject, settings config.Settings) []object.CanonicalObject {
	if settings.Namespace == "" {
		return objs
	}
	out := make([]object.CanonicalObject, len(objs))
	for i, obj := range objs {
		if clusterScopedKinds[obj.Identity().Kind] {
			out[i] = obj
			continue
		}
		out[i] = obj.WithNamespace(settings.ResolveNamespace(obj.Identity().Namespace))
	}
	return out
}
