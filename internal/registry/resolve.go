package registry

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/uisx-labs/uisx/internal/extension"
	"github.com/uisx-labs/uisx/internal/logging"
)

// Registry resolves stacks of app layers.
type Registry struct {
	logger    *zap.Logger
	cachePath string
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// WithCache enables the layer cache stored at path.
func WithCache(path string) Option {
	return func(r *Registry) { r.cachePath = path }
}

// New returns a Registry.
func New(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = logging.OrNop(r.logger)
	return r
}

// Resolution is the folded view of a stack of layers.
type Resolution struct {
	layers []*LoadedLayer
	exts   []extension.Extension
	index  map[string]int
	from   map[string][]string // key -> names of the layers that contributed
}

// Resolve loads layers concurrently and folds them in order. Layer 0 is the
// base app; each later layer must name the one below it in its manifest's
// overrides block when it has one, and its version constraint must admit
// that app's version.
func (r *Registry) Resolve(ctx context.Context, layers []Layer) (*Resolution, error) {
	if len(layers) == 0 {
		return nil, errors.New("no layers to resolve")
	}

	cache := r.openCache()
	loaded := make([]*LoadedLayer, len(layers))
	g, gctx := errgroup.WithContext(ctx)
	for i, layer := range layers {
		g.Go(func() error {
			ll, err := r.load(gctx, cache, layer)
			if err != nil {
				return err
			}
			loaded[i] = ll
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	r.saveCache(cache, loaded)

	if err := r.checkStack(loaded); err != nil {
		return nil, err
	}
	return r.fold(loaded)
}

func (r *Registry) load(ctx context.Context, cache *layerCache, layer Layer) (*LoadedLayer, error) {
	if ll, ok := cache.lookup(layer); ok {
		r.logger.Debug("layer cache hit", zap.String("path", ll.Layer.BasePath))
		return ll, nil
	}
	return LoadLayer(ctx, layer, r.logger)
}

func (r *Registry) checkStack(loaded []*LoadedLayer) error {
	for i := 1; i < len(loaded); i++ {
		below, above := loaded[i-1], loaded[i]
		target := above.Manifest.Overrides
		if target == nil {
			r.logger.Warn("layer does not declare the app it overrides",
				zap.String("layer", above.Layer.Name),
				zap.String("below", below.Manifest.Name))
			continue
		}
		if target.App != below.Manifest.Name {
			return fmt.Errorf("layer %s overrides app %q but is stacked on %q: %w",
				above.Layer.Name, target.App, below.Manifest.Name, ErrIncompatibleLayer)
		}
		if target.Version == "" {
			continue
		}
		v, err := below.Manifest.SemVer()
		if err != nil {
			return fmt.Errorf("layer %s requires %s %s: %w", above.Layer.Name, target.App, target.Version, err)
		}
		ok, err := target.Allows(v)
		if err != nil {
			return fmt.Errorf("layer %s: %w", above.Layer.Name, err)
		}
		if !ok {
			return fmt.Errorf("layer %s requires %s %s, found %s: %w",
				above.Layer.Name, target.App, target.Version, v, ErrIncompatibleLayer)
		}
	}
	return nil
}

func (r *Registry) fold(loaded []*LoadedLayer) (*Resolution, error) {
	res := &Resolution{
		layers: loaded,
		index:  make(map[string]int),
		from:   make(map[string][]string),
	}

	var errs error
	for _, ll := range loaded {
		for _, ext := range ll.Extensions {
			k := key(ext.Type(), ext.Name())
			res.from[k] = append(res.from[k], ll.Layer.Name)

			i, ok := res.index[k]
			if !ok {
				res.index[k] = len(res.exts)
				res.exts = append(res.exts, ext)
				continue
			}
			merged, err := res.exts[i].Override(ext)
			if err != nil {
				multierr.AppendInto(&errs, fmt.Errorf("layer %s: %w", ll.Layer.Name, err))
				continue
			}
			r.logger.Debug("extension overridden",
				zap.String("type", ext.Type()),
				zap.String("name", ext.Name()),
				zap.String("layer", ll.Layer.Name))
			res.exts[i] = merged
		}
	}
	if errs != nil {
		return nil, errs
	}

	sortExtensions(res.exts)
	for i, ext := range res.exts {
		res.index[key(ext.Type(), ext.Name())] = i
	}
	return res, nil
}

// Extensions returns every resolved extension ordered by type, then name.
func (res *Resolution) Extensions() []extension.Extension {
	out := make([]extension.Extension, len(res.exts))
	copy(out, res.exts)
	return out
}

// Find returns the resolved extension with the given type and name.
func (res *Resolution) Find(typ, name string) (extension.Extension, error) {
	i, ok := res.index[key(typ, name)]
	if !ok {
		return nil, fmt.Errorf("%s %q: %w", typ, name, ErrNotFound)
	}
	return res.exts[i], nil
}

// ByType returns the resolved extensions of one type.
func (res *Resolution) ByType(typ string) []extension.Extension {
	var out []extension.Extension
	for _, ext := range res.exts {
		if ext.Type() == typ {
			out = append(out, ext)
		}
	}
	return out
}

// Contributors returns the names of the layers that defined the extension,
// lowest layer first.
func (res *Resolution) Contributors(typ, name string) []string {
	from := res.from[key(typ, name)]
	out := make([]string, len(from))
	copy(out, from)
	return out
}

// Layers returns the loaded layers in stacking order.
func (res *Resolution) Layers() []*LoadedLayer {
	out := make([]*LoadedLayer, len(res.layers))
	copy(out, res.layers)
	return out
}
