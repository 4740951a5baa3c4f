package executor

import (
	"time"

	"k8s.io/apimachinery/pkg/util/wait"
	"k8s.io/client-go/util/retry"

	"github.com/giantswarm/piceli/internal/transport"
)

// backoff returns the exponential backoff schedule transient transport
// errors are retried under, capped at maxAttempts total tries.
func backoff(maxAttempts int) wait.Backoff {
	return wait.Backoff{
		Duration: 250 * time.Millisecond,
		Factor:   2.0,
		Jitter:   0.1,
		Steps:    maxAttempts,
	}
}

func isTransient(err error) bool {
	_, ok := err.(*transport.TransientError)
	return ok
}

// retryTransient runs fn, retrying with exponential backoff only when it
// fails with a *transport.TransientError (spec.md §4.5 step 4); any other
// error, including *transport.NotFoundError, returns immediately.
func (e *Executor) retryTransient(fn func() error) error {
	return retry.OnError(backoff(e.Options.maxAttempts()), isTransient, fn)
}
