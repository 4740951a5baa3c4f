package cmd

import (
	"fmt"

	"github.com/giantswarm/piceli/internal/config"
	"github.com/giantswarm/piceli/internal/loader"
	"github.com/giantswarm/piceli/internal/object"
)

// loadObjects runs the filesystem loader over every module-path root and
// applies the namespace override, returning a flat CanonicalObject set
// ready for graph.Plan.
func loadObjects(settings config.Settings) ([]object.CanonicalObject, error) {
	roots := settings.ModulePath
	if len(roots) == 0 {
		roots = []string{"."}
	}

	sources := make([]loader.Source, 0, len(roots))
	for _, root := range roots {
		sources = append(sources, loader.NewFilesystemSource(root, settings.SubElements))
	}

	objs, err := loader.Load(sources...)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	return applyNamespaceOverride(objs, settings), nil
}
