package transport

import (
	"context"

	"github.com/giantswarm/piceli/internal/object"
)

// Transport is the minimal cluster-operations interface spec.md §6
// assigns to the executor. All methods return a NotFoundError,
// TransientError or TerminalError (never a bare apimachinery error) so
// callers can classify failures without importing apimachinery
// themselves.
type Transport interface {
	// Get reads the live object's full tree (CanonicalObject.Full shape).
	// Returns a *NotFoundError if it does not exist.
	Get(ctx context.Context, identity object.Identity) (object.Node, error)

	// Create submits a new object. desired is a CanonicalObject.Full tree.
	Create(ctx context.Context, identity object.Identity, desired object.Node) error

	// Patch applies an RFC 7396 merge-patch document.
	Patch(ctx context.Context, identity object.Identity, mergePatch []byte) error

	// Replace deletes the live object, waits for its removal, then
	// creates desired in its place, matching spec.md §4.4's REPLACE
	// definition ("delete then create").
	Replace(ctx context.Context, identity object.Identity, desired object.Node) error

	// Delete removes the live object. It returns a *NotFoundError when the
	// object is already gone; Replace and journal.Replay treat that as
	// success.
	Delete(ctx context.Context, identity object.Identity) error
}
