package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/piceli/internal/object"
	"github.com/giantswarm/piceli/internal/transport"
)

// fakeDetailTransport is a minimal transport.Transport double exercising the
// Get path printDetail needs: either a stored live object, or a NotFoundError.
type fakeDetailTransport struct {
	live map[object.Identity]object.Node
}

func (f *fakeDetailTransport) Get(ctx context.Context, id object.Identity) (object.Node, error) {
	if n, ok := f.live[id]; ok {
		return n, nil
	}
	return object.Node{}, &transport.NotFoundError{Identity: id}
}
func (f *fakeDetailTransport) Create(ctx context.Context, id object.Identity, desired object.Node) error {
	return errors.New("unexpected Create")
}
func (f *fakeDetailTransport) Patch(ctx context.Context, id object.Identity, mergePatch []byte) error {
	return errors.New("unexpected Patch")
}
func (f *fakeDetailTransport) Replace(ctx context.Context, id object.Identity, desired object.Node) error {
	return errors.New("unexpected Replace")
}
func (f *fakeDetailTransport) Delete(ctx context.Context, id object.Identity) error {
	return errors.New("unexpected Delete")
}

func configMapObj(namespace, name string, data map[string]string) object.CanonicalObject {
	spec := object.NewMap([]object.MapEntry{{Key: "data", Value: mapFromStrings(data)}})
	return object.New(object.Identity{Version: "v1", Kind: "ConfigMap", Namespace: namespace, Name: name}, nil, nil, spec, "t", object.SourceStatic)
}

func mapFromStrings(m map[string]string) object.Node {
	var entries []object.MapEntry
	for k, v := range m {
		entries = append(entries, object.MapEntry{Key: k, Value: object.NewScalar(v)})
	}
	return object.NewMap(entries)
}

func TestPrintDetailReportsCreateForMissingObject(t *testing.T) {
	ft := &fakeDetailTransport{live: map[object.Identity]object.Node{}}
	obj := configMapObj("team-a", "cfg", map[string]string{"k": "v"})
	id := obj.Identity()

	var out bytes.Buffer
	tbl := table.NewWriter()
	tbl.SetOutputMirror(&out)

	require.NoError(t, printDetail(context.Background(), tbl, &out, ft, id, obj, false))
	tbl.Render()

	assert.Contains(t, out.String(), "CREATE", "expected CREATE action in output")
}

func TestPrintDetailHidesNoActionWhenRequested(t *testing.T) {
	obj := configMapObj("team-a", "cfg", map[string]string{"k": "v"})
	id := obj.Identity()
	ft := &fakeDetailTransport{live: map[object.Identity]object.Node{id: obj.Full()}}

	var out bytes.Buffer
	tbl := table.NewWriter()
	tbl.SetOutputMirror(&out)

	require.NoError(t, printDetail(context.Background(), tbl, &out, ft, id, obj, true))
	tbl.Render()

	assert.Zero(t, out.Len(), "expected no output for a hidden NO_ACTION row, got %q", out.String())
}

func TestPrintDetailReportsDiffForChangedObject(t *testing.T) {
	live := configMapObj("team-a", "cfg", map[string]string{"k": "old"})
	desired := configMapObj("team-a", "cfg", map[string]string{"k": "new"})
	id := desired.Identity()
	ft := &fakeDetailTransport{live: map[object.Identity]object.Node{id: live.Full()}}

	var out bytes.Buffer
	tbl := table.NewWriter()
	tbl.SetOutputMirror(&out)

	require.NoError(t, printDetail(context.Background(), tbl, &out, ft, id, desired, false))
	tbl.Render()

	assert.Contains(t, out.String(), "PATCH", "expected PATCH action in output")
	assert.Contains(t, out.String(), "diff:", "expected a diff table section")
}
