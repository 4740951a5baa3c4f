package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/giantswarm/piceli/internal/config"
	"github.com/giantswarm/piceli/internal/object"
)

func TestApplyNamespaceOverrideSkipsClusterScoped(t *testing.T) {
	cr := object.New(object.Identity{Group: "rbac.authorization.k8s.io", Version: "v1", Kind: "ClusterRole", Name: "admin"}, nil, nil, object.NewMap(nil), "t", object.SourceStatic)
	cm := object.New(object.Identity{Version: "v1", Kind: "ConfigMap", Name: "cfg"}, nil, nil, object.NewMap(nil), "t", object.SourceStatic)

	out := applyNamespaceOverride([]object.CanonicalObject{cr, cm}, config.Settings{Namespace: "team-a"})

	assert.Equal(t, "", out[0].Identity().Namespace, "expected ClusterRole namespace untouched")
	assert.Equal(t, "team-a", out[1].Identity().Namespace, "expected ConfigMap namespace overridden")
}

func TestApplyNamespaceOverrideNoOpWhenUnset(t *testing.T) {
	cm := object.New(object.Identity{Version: "v1", Kind: "ConfigMap", Namespace: "existing", Name: "cfg"}, nil, nil, object.NewMap(nil), "t", object.SourceStatic)
	out := applyNamespaceOverride([]object.CanonicalObject{cm}, config.Settings{})
	assert.Equal(t, "existing", out[0].Identity().Namespace, "expected namespace unchanged")
}
