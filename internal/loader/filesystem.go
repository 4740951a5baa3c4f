package loader

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/giantswarm/piceli/internal/object"
)

// FilesystemSource loads CanonicalObjects from manifest files under Root.
// Each .yaml, .yml or .json file may contain a multi-document YAML stream
// (documents separated by a "---" line); every document becomes one
// CanonicalObject, tagged with its file path as Origin; every document after
// the first also carries its index, as "path[i]".
type FilesystemSource struct {
	Root      string
	Recursive bool
}

func NewFilesystemSource(root string, recursive bool) *FilesystemSource {
	return &FilesystemSource{Root: root, Recursive: recursive}
}

func (s *FilesystemSource) Load() ([]object.CanonicalObject, error) {
	paths, err := s.manifestPaths()
	if err != nil {
		return nil, fmt.Errorf("loader: walk %s: %w", s.Root, err)
	}

	var out []object.CanonicalObject
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loader: read %s: %w", path, err)
		}
		objs, err := decodeDocuments(path, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, objs...)
	}
	return out, nil
}

func (s *FilesystemSource) manifestPaths() ([]string, error) {
	var paths []string

	if !s.Recursive {
		entries, err := os.ReadDir(s.Root)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() || !isManifestFile(e.Name()) {
				continue
			}
			paths = append(paths, filepath.Join(s.Root, e.Name()))
		}
		return paths, nil
	}

	err := filepath.WalkDir(s.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isManifestFile(d.Name()) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	return paths, err
}

func isManifestFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml" || ext == ".json"
}

// decodeDocuments splits raw on YAML document separators and normalizes
// each document into a CanonicalObject. Empty documents (a file ending in
// "---", or a fully-commented document) are skipped.
func decodeDocuments(path string, raw []byte) ([]object.CanonicalObject, error) {
	var out []object.CanonicalObject
	for i, doc := range splitYAMLDocuments(raw) {
		if isBlankDocument(doc) {
			continue
		}
		origin := path
		if i > 0 {
			origin = fmt.Sprintf("%s[%d]", path, i)
		}

		var fields map[string]interface{}
		if err := yaml.Unmarshal(doc, &fields); err != nil {
			return nil, fmt.Errorf("loader: decode %s: %w", origin, err)
		}
		if fields == nil {
			continue
		}

		obj, err := canonicalize(fields, origin, object.SourceFilesystem)
		if err != nil {
			return nil, err
		}
		out = append(out, obj)
	}
	return out, nil
}

func splitYAMLDocuments(raw []byte) [][]byte {
	var docs [][]byte
	for _, part := range strings.Split(string(raw), "\n---") {
		docs = append(docs, []byte(part))
	}
	return docs
}

func isBlankDocument(doc []byte) bool {
	for _, line := range strings.Split(string(doc), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			return false
		}
	}
	return true
}
