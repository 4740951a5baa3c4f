package transport

import (
	"context"
	"fmt"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/api/meta"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/apimachinery/pkg/util/wait"
	"k8s.io/client-go/discovery"
	"k8s.io/client-go/discovery/cached/memory"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/restmapper"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/giantswarm/piceli/internal/object"
)

// KubernetesTransport is the concrete Transport against a live cluster.
type KubernetesTransport struct {
	client  client.Client
	dynamic dynamic.Interface
	mapper  meta.RESTMapper
}

// NewKubernetesTransport builds a Transport from a REST config. The
// controller-runtime client handles Get/Create/Delete against
// unstructured.Unstructured objects directly (no scheme registration
// needed per kind); the dynamic client plus a cached discovery REST
// mapper handle Patch, which controller-runtime's typed client does not
// expose for arbitrary unstructured merge patches.
func NewKubernetesTransport(cfg *rest.Config) (*KubernetesTransport, error) {
	c, err := client.New(cfg, client.Options{})
	if err != nil {
		return nil, fmt.Errorf("build controller-runtime client: %w", err)
	}

	dyn, err := dynamic.NewForConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("build dynamic client: %w", err)
	}

	dc, err := discovery.NewDiscoveryClientForConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("build discovery client: %w", err)
	}
	mapper := restmapper.NewDeferredDiscoveryRESTMapper(memory.NewMemCacheClient(dc))

	return &KubernetesTransport{client: c, dynamic: dyn, mapper: mapper}, nil
}

func (t *KubernetesTransport) Get(ctx context.Context, identity object.Identity) (object.Node, error) {
	u := unstructuredFor(identity)
	key := client.ObjectKey{Namespace: identity.Namespace, Name: identity.Name}
	if err := t.client.Get(ctx, key, u); err != nil {
		return object.Node{}, classify(identity, err)
	}
	return object.FromInterface(u.Object), nil
}

func (t *KubernetesTransport) Create(ctx context.Context, identity object.Identity, desired object.Node) error {
	u := toUnstructured(identity, desired)
	if err := t.client.Create(ctx, u); err != nil {
		return classify(identity, err)
	}
	return nil
}

func (t *KubernetesTransport) Patch(ctx context.Context, identity object.Identity, mergePatch []byte) error {
	gvr, namespaced, err := t.resourceFor(identity)
	if err != nil {
		return &TerminalError{Identity: identity, Err: err}
	}

	var resourceClient dynamic.ResourceInterface
	if namespaced {
		resourceClient = t.dynamic.Resource(gvr).Namespace(identity.Namespace)
	} else {
		resourceClient = t.dynamic.Resource(gvr)
	}

	_, err = resourceClient.Patch(ctx, identity.Name, types.MergePatchType, mergePatch, metav1.PatchOptions{})
	if err != nil {
		return classify(identity, err)
	}
	return nil
}

func (t *KubernetesTransport) Replace(ctx context.Context, identity object.Identity, desired object.Node) error {
	if err := t.Delete(ctx, identity); err != nil {
		if _, isNotFound := err.(*NotFoundError); !isNotFound {
			return err
		}
	}

	// The delete above is asynchronous (finalizers, graceful deletion); poll
	// until the object is actually gone before recreating it, bounded so a
	// stuck finalizer surfaces as a terminal error rather than hanging the
	// level forever.
	pollErr := wait.PollUntilContextTimeout(ctx, 500*time.Millisecond, 30*time.Second, true, func(ctx context.Context) (bool, error) {
		_, getErr := t.Get(ctx, identity)
		if getErr == nil {
			return false, nil
		}
		if _, isNotFound := getErr.(*NotFoundError); isNotFound {
			return true, nil
		}
		return false, getErr
	})
	if pollErr != nil {
		return &TerminalError{Identity: identity, Err: fmt.Errorf("waiting for delete to settle before replace: %w", pollErr)}
	}

	return t.Create(ctx, identity, desired)
}

func (t *KubernetesTransport) Delete(ctx context.Context, identity object.Identity) error {
	u := unstructuredFor(identity)
	if err := t.client.Delete(ctx, u); err != nil {
		return classify(identity, err)
	}
	return nil
}

// resourceFor resolves identity's GVK to a GVR and reports whether the
// kind is namespace-scoped.
func (t *KubernetesTransport) resourceFor(identity object.Identity) (schema.GroupVersionResource, bool, error) {
	gk := schema.GroupKind{Group: identity.Group, Kind: identity.Kind}
	mapping, err := t.mapper.RESTMapping(gk, identity.Version)
	if err != nil {
		return schema.GroupVersionResource{}, false, fmt.Errorf("resolve REST mapping for %s: %w", identity, err)
	}
	return mapping.Resource, mapping.Scope.Name() == meta.RESTScopeNameNamespace, nil
}

func unstructuredFor(identity object.Identity) *unstructured.Unstructured {
	u := &unstructured.Unstructured{}
	u.SetGroupVersionKind(identity.GVK())
	u.SetName(identity.Name)
	u.SetNamespace(identity.Namespace)
	return u
}

func toUnstructured(identity object.Identity, full object.Node) *unstructured.Unstructured {
	content, ok := full.ToInterface().(map[string]interface{})
	if !ok {
		content = map[string]interface{}{}
	}
	u := &unstructured.Unstructured{Object: content}
	u.SetGroupVersionKind(identity.GVK())
	u.SetName(identity.Name)
	u.SetNamespace(identity.Namespace)
	return u
}
