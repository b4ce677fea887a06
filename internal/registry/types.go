package registry

import (
	"errors"

	"github.com/uisx-labs/uisx/internal/extension"
	"github.com/uisx-labs/uisx/internal/manifest"
)

var (
	// ErrNotFound is returned when a lookup matches nothing.
	ErrNotFound = errors.New("not found")
	// ErrIncompatibleLayer is returned when an override layer does not fit
	// the layer below it.
	ErrIncompatibleLayer = errors.New("incompatible layer")
	// ErrConflictingDeclaration is returned when one layer declares the same
	// extension twice with different paths.
	ErrConflictingDeclaration = errors.New("conflicting extension declaration")
)

// Layer is one app directory in a stack of overrides.
type Layer struct {
	Name     string // defaults to the manifest name, then the directory name
	BasePath string // app root, containing app.yaml and extensions/
}

// LoadedLayer is a layer with its manifest and plain extensions.
type LoadedLayer struct {
	Layer      Layer
	Manifest   *manifest.AppManifest
	Extensions []extension.Extension
}

// Located is a file found through an extension's paths.
type Located struct {
	Path string // absolute path of the file
	Root string // the extension path it was found under
	MIME string
}

func key(typ, name string) string { return typ + "/" + name }
