package transport

import (
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"

	"github.com/giantswarm/piceli/internal/object"
)

// NotFoundError reports that identity does not exist on the cluster. The
// executor and planner treat this as "live object absent", not a failure.
type NotFoundError struct {
	Identity object.Identity
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: not found", e.Identity)
}

// TransientError wraps a transport failure the executor should retry with
// backoff: conflicts, server timeouts, rate limiting.
type TransientError struct {
	Identity object.Identity
	Err      error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("%s: transient error: %v", e.Identity, e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// TerminalError wraps a transport failure that aborts the level: schema
// validation, forbidden, or any error not recognized as transient.
type TerminalError struct {
	Identity object.Identity
	Err      error
}

func (e *TerminalError) Error() string {
	return fmt.Sprintf("%s: terminal error: %v", e.Identity, e.Err)
}

func (e *TerminalError) Unwrap() error { return e.Err }

// classify wraps a raw apimachinery error into the transport's three-way
// taxonomy (spec.md §7): NotFound, Transient (Conflict, ServerTimeout,
// TooManyRequests), or Terminal (everything else, including Invalid and
// Forbidden).
func classify(identity object.Identity, err error) error {
	if err == nil {
		return nil
	}
	if apierrors.IsNotFound(err) {
		return &NotFoundError{Identity: identity}
	}
	if apierrors.IsConflict(err) || apierrors.IsServerTimeout(err) || apierrors.IsTooManyRequests(err) {
		return &TransientError{Identity: identity, Err: err}
	}
	return &TerminalError{Identity: identity, Err: err}
}
