package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/piceli/internal/executor"
	"github.com/giantswarm/piceli/internal/object"
	"github.com/giantswarm/piceli/internal/transport"
)

// fakeNamespaceTransport is a minimal transport.Transport double for
// ensureNamespace: it only needs Get and Create.
type fakeNamespaceTransport struct {
	existing map[object.Identity]bool
	created  []object.Identity
}

func (f *fakeNamespaceTransport) Get(ctx context.Context, id object.Identity) (object.Node, error) {
	if f.existing[id] {
		return object.NewMap(nil), nil
	}
	return object.Node{}, &transport.NotFoundError{Identity: id}
}
func (f *fakeNamespaceTransport) Create(ctx context.Context, id object.Identity, desired object.Node) error {
	f.created = append(f.created, id)
	return nil
}
func (f *fakeNamespaceTransport) Patch(ctx context.Context, id object.Identity, mergePatch []byte) error {
	return errors.New("unexpected Patch")
}
func (f *fakeNamespaceTransport) Replace(ctx context.Context, id object.Identity, desired object.Node) error {
	return errors.New("unexpected Replace")
}
func (f *fakeNamespaceTransport) Delete(ctx context.Context, id object.Identity) error {
	return errors.New("unexpected Delete")
}

func TestEnsureNamespaceCreatesWhenMissing(t *testing.T) {
	ft := &fakeNamespaceTransport{existing: map[object.Identity]bool{}}
	require.NoError(t, ensureNamespace(context.Background(), ft, "team-a"))
	require.Len(t, ft.created, 1)
	assert.Equal(t, "team-a", ft.created[0].Name)
}

func TestEnsureNamespaceSkipsWhenPresent(t *testing.T) {
	id := object.Identity{Version: "v1", Kind: "Namespace", Name: "team-a"}
	ft := &fakeNamespaceTransport{existing: map[object.Identity]bool{id: true}}
	require.NoError(t, ensureNamespace(context.Background(), ft, "team-a"))
	assert.Empty(t, ft.created, "expected no create call")
}

func TestRunOutcomeError(t *testing.T) {
	assert.NoError(t, runOutcomeError(executor.Completed), "expected no error for Completed")

	err := runOutcomeError(executor.RolledBack)
	assert.Equal(t, ExitCodeApplyRolledBack, getExitCode(err), "expected exit code for RolledBack (err=%v)", err)

	err = runOutcomeError(executor.RollbackFailed)
	assert.Equal(t, ExitCodeRollbackFailed, getExitCode(err), "expected exit code for RollbackFailed (err=%v)", err)
}
