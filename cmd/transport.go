package cmd

import (
	"fmt"

	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/giantswarm/piceli/internal/transport"
)

// newTransport resolves the ambient kubeconfig (in-cluster config when run
// as a pod, otherwise $KUBECONFIG / ~/.kube/config, controller-runtime's
// usual precedence) and builds the concrete cluster Transport.
func newTransport() (transport.Transport, error) {
	cfg, err := ctrl.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("resolve kubeconfig: %w", err)
	}
	t, err := transport.NewKubernetesTransport(cfg)
	if err != nil {
		return nil, fmt.Errorf("build transport: %w", err)
	}
	return t, nil
}
