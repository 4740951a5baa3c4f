package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/piceli/internal/object"
)

func staticObj(name string) object.CanonicalObject {
	id := object.Identity{Version: "v1", Kind: "Namespace", Name: name}
	return object.New(id, nil, nil, object.NewMap(nil), "origin:"+name, object.SourceStatic)
}

func TestLoadMergesSources(t *testing.T) {
	a := NewStaticSource(staticObj("a"))
	b := NewStaticSource(staticObj("b"))

	objs, err := Load(a, b)
	require.NoError(t, err)
	assert.Len(t, objs, 2)
}

func TestLoadRejectsDuplicateIdentityAcrossSources(t *testing.T) {
	a := NewStaticSource(staticObj("dup"))
	b := NewStaticSource(staticObj("dup"))

	_, err := Load(a, b)
	require.Error(t, err)
	var dupErr *object.DuplicateIdentityError
	require.ErrorAs(t, err, &dupErr)
	assert.Len(t, dupErr.Origins, 2, "expected 2 origins recorded")
}

func TestLoadRejectsDuplicateIdentityWithinOneSource(t *testing.T) {
	src := NewStaticSource(staticObj("dup"), staticObj("dup"))

	_, err := Load(src)
	var dupErr *object.DuplicateIdentityError
	require.ErrorAs(t, err, &dupErr)
}

func TestLoadPropagatesSourceError(t *testing.T) {
	_, err := Load(NewFilesystemSource("/nonexistent/path/that/does/not/exist", false))
	assert.Error(t, err, "expected an error from a nonexistent root")
}
