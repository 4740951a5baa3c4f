package executor

import (
	"context"
	"fmt"

	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/giantswarm/piceli/internal/object"
	"github.com/giantswarm/piceli/internal/transport"
)

// waitForReadiness polls the live object until its kind's ReadinessFunc
// reports Ready or ReadinessFailed, or ctx is done (bounded by
// Options.PerObjectTimeout when set). A freshly created object that has
// not yet propagated to the API server's read path is treated as
// not-ready rather than an error.
func (e *Executor) waitForReadiness(ctx context.Context, id object.Identity) error {
	ready := readinessFor(id.Kind)

	return wait.PollUntilContextCancel(ctx, e.Options.readinessPoll(), true, func(ctx context.Context) (bool, error) {
		live, err := e.Transport.Get(ctx, id)
		if err != nil {
			if _, ok := err.(*transport.NotFoundError); ok {
				return false, nil
			}
			if isTransient(err) {
				return false, nil
			}
			return false, err
		}

		outcome, reason := ready(live)
		switch outcome {
		case Ready:
			return true, nil
		case ReadinessFailed:
			return false, fmt.Errorf("%s failed readiness: %s", id, reason)
		default:
			return false, nil
		}
	})
}
