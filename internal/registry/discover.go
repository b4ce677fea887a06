package registry

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"github.com/uisx-labs/uisx/internal/extension"
	"github.com/uisx-labs/uisx/internal/logging"
	"github.com/uisx-labs/uisx/internal/manifest"
)

// extensionGlob matches extensions/<type>/<name> relative to a layer root.
var extensionGlob = path.Join(manifest.ExtensionsDir, "*", "*")

// LoadLayer reads the manifest of a layer and builds its extensions.
// Declared extensions come first; directories under extensions/<type>/<name>
// that no declaration covers are added as single-path extensions. A layer
// without app.yaml is named after its directory and only discovered.
func LoadLayer(ctx context.Context, layer Layer, logger *zap.Logger) (*LoadedLayer, error) {
	logger = logging.OrNop(logger)

	base, err := filepath.Abs(layer.BasePath)
	if err != nil {
		return nil, fmt.Errorf("resolving layer path %s: %w", layer.BasePath, err)
	}
	info, err := os.Stat(base)
	if err != nil {
		return nil, fmt.Errorf("reading layer %s: %w", base, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("layer %s is not a directory", base)
	}
	layer.BasePath = base

	m, err := manifest.Parse(filepath.Join(base, manifest.FileName))
	switch {
	case errors.Is(err, manifest.ErrNoManifest):
		logger.Debug("layer has no manifest", zap.String("path", base))
		m = &manifest.AppManifest{Name: filepath.Base(base)}
	case err != nil:
		return nil, err
	}
	if layer.Name == "" {
		layer.Name = m.Name
	}

	var set extension.Set
	for _, decl := range m.Extensions {
		ext := extension.NewMulti(decl.Name, decl.Type, absPaths(base, decl.Locations()))
		if len(set.Bucket(ext)) > 0 {
			if set.Contains(ext) {
				continue // repeated verbatim
			}
			return nil, fmt.Errorf("layer %s: %s %q declared with different paths: %w",
				layer.Name, decl.Type, decl.Name, ErrConflictingDeclaration)
		}
		set.Add(ext)
	}

	found, err := discover(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("discovering extensions of layer %s: %w", layer.Name, err)
	}
	for _, ext := range found {
		if len(set.Bucket(ext)) > 0 {
			continue
		}
		set.Add(ext)
	}

	exts := set.Values()
	sortExtensions(exts)
	logger.Debug("loaded layer",
		zap.String("layer", layer.Name),
		zap.String("path", base),
		zap.Int("extensions", len(exts)))

	return &LoadedLayer{Layer: layer, Manifest: m, Extensions: exts}, nil
}

// discover globs extensions/*/* under base and returns one extension per
// directory.
func discover(ctx context.Context, base string) ([]extension.Extension, error) {
	fsys := os.DirFS(base)
	matches, err := doublestar.Glob(fsys, extensionGlob)
	if err != nil {
		return nil, err
	}

	var out []extension.Extension
	for _, m := range matches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fi, err := fs.Stat(fsys, m)
		if err != nil || !fi.IsDir() {
			continue
		}
		typ := path.Base(path.Dir(m))
		name := path.Base(m)
		out = append(out, extension.New(name, typ, filepath.Join(base, filepath.FromSlash(m))))
	}
	return out, nil
}

func absPaths(base string, rel []string) []string {
	out := make([]string, len(rel))
	for i, p := range rel {
		p = filepath.FromSlash(p)
		if !filepath.IsAbs(p) {
			p = filepath.Join(base, p)
		}
		out[i] = p
	}
	return out
}

// sortExtensions orders by type, then name.
func sortExtensions(exts []extension.Extension) {
	sort.SliceStable(exts, func(i, j int) bool {
		if exts[i].Type() != exts[j].Type() {
			return exts[i].Type() < exts[j].Type()
		}
		return exts[i].Name() < exts[j].Name()
	})
}
