package registry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/uisx-labs/uisx/internal/extension"
	"github.com/uisx-labs/uisx/internal/manifest"
)

// CacheFileName is the layer cache file name inside the config directory.
const CacheFileName = "layer-cache.json"

// cachedIndex is the on-disk layer cache, keyed by absolute layer path.
type cachedIndex struct {
	Layers   map[string]cachedLayer `json:"layers"`
	CachedAt time.Time              `json:"cached_at"`
}

type cachedLayer struct {
	Name       string                `json:"name"`
	Manifest   *manifest.AppManifest `json:"manifest"`
	Extensions []cachedExtension     `json:"extensions"`
	Mtime      int64                 `json:"mtime"` // unix nanoseconds
}

type cachedExtension struct {
	Name  string   `json:"name"`
	Type  string   `json:"type"`
	Paths []string `json:"paths"`
}

type layerCache struct {
	path string
	idx  *cachedIndex
}

// openCache returns nil when caching is disabled. A missing or corrupt
// cache file yields an empty cache.
func (r *Registry) openCache() *layerCache {
	if r.cachePath == "" {
		return nil
	}
	c := &layerCache{path: r.cachePath, idx: &cachedIndex{Layers: map[string]cachedLayer{}}}
	data, err := os.ReadFile(r.cachePath)
	if err != nil {
		return c
	}
	var idx cachedIndex
	if err := json.Unmarshal(data, &idx); err != nil {
		r.logger.Debug("ignoring unreadable layer cache", zap.String("path", r.cachePath), zap.Error(err))
		return c
	}
	if idx.Layers != nil {
		c.idx = &idx
	}
	return c
}

// lookup returns the cached layer when its directory mtimes are unchanged.
func (c *layerCache) lookup(layer Layer) (*LoadedLayer, bool) {
	if c == nil {
		return nil, false
	}
	base, err := filepath.Abs(layer.BasePath)
	if err != nil {
		return nil, false
	}
	entry, ok := c.idx.Layers[base]
	if !ok || entry.Manifest == nil || entry.Mtime != latestMtime(base) {
		return nil, false
	}

	name := layer.Name
	if name == "" {
		name = entry.Name
	}
	exts := make([]extension.Extension, len(entry.Extensions))
	for i, e := range entry.Extensions {
		exts[i] = extension.NewMulti(e.Name, e.Type, e.Paths)
	}
	return &LoadedLayer{
		Layer:      Layer{Name: name, BasePath: base},
		Manifest:   entry.Manifest,
		Extensions: exts,
	}, true
}

// saveCache records loaded layers. Writes are best effort; resolution works
// without the cache.
func (r *Registry) saveCache(c *layerCache, loaded []*LoadedLayer) {
	if c == nil {
		return
	}
	for _, ll := range loaded {
		entry := cachedLayer{
			Name:     ll.Layer.Name,
			Manifest: ll.Manifest,
			Mtime:    latestMtime(ll.Layer.BasePath),
		}
		for _, ext := range ll.Extensions {
			entry.Extensions = append(entry.Extensions, cachedExtension{
				Name:  ext.Name(),
				Type:  ext.Type(),
				Paths: ext.Paths(),
			})
		}
		c.idx.Layers[ll.Layer.BasePath] = entry
	}
	c.idx.CachedAt = time.Now()

	data, err := json.MarshalIndent(c.idx, "", "  ")
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		r.logger.Debug("cannot create cache directory", zap.Error(err))
		return
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		r.logger.Debug("cannot write layer cache", zap.String("path", c.path), zap.Error(err))
	}
}

// latestMtime returns the newest modification time across the layer root,
// its manifest, the extensions directory and each type directory below it.
// Adding or removing an extension directory touches one of these.
func latestMtime(base string) int64 {
	var latest int64
	check := func(p string) {
		if fi, err := os.Stat(p); err == nil {
			if t := fi.ModTime().UnixNano(); t > latest {
				latest = t
			}
		}
	}

	check(base)
	check(filepath.Join(base, manifest.FileName))
	extDir := filepath.Join(base, manifest.ExtensionsDir)
	check(extDir)
	entries, err := os.ReadDir(extDir)
	if err != nil {
		return latest
	}
	for _, e := range entries {
		if e.IsDir() {
			check(filepath.Join(extDir, e.Name()))
		}
	}
	return latest
}
