package manifest

import "path"

// FileName is the manifest file expected at the root of an app layer.
const FileName = "app.yaml"

// ExtensionsDir is the directory, relative to an app layer, under which
// extensions are laid out as <type>/<name>.
const ExtensionsDir = "extensions"

// AppManifest represents an app.yaml file.
type AppManifest struct {
	Name        string          `yaml:"name" json:"name"`
	Version     string          `yaml:"version,omitempty" json:"version,omitempty"`
	Description string          `yaml:"description,omitempty" json:"description,omitempty"`
	Overrides   *OverrideTarget `yaml:"overrides,omitempty" json:"overrides,omitempty"`
	Extensions  []ExtensionDecl `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// OverrideTarget names the app a layer overrides and, optionally, the
// versions of it the layer was written against.
type OverrideTarget struct {
	App     string `yaml:"app" json:"app"`
	Version string `yaml:"version,omitempty" json:"version,omitempty"` // semver constraint, e.g. "^1.2"
}

// ExtensionDecl declares one extension of an app layer.
type ExtensionDecl struct {
	Name  string   `yaml:"name" json:"name"`
	Type  string   `yaml:"type" json:"type"`
	Path  string   `yaml:"path,omitempty" json:"path,omitempty"`
	Paths []string `yaml:"paths,omitempty" json:"paths,omitempty"`
}

// Locations returns the layer-relative paths of the declared extension.
// Paths wins over Path; with neither set the conventional
// extensions/<type>/<name> location is used.
func (d ExtensionDecl) Locations() []string {
	switch {
	case len(d.Paths) > 0:
		out := make([]string, len(d.Paths))
		copy(out, d.Paths)
		return out
	case d.Path != "":
		return []string{d.Path}
	default:
		return []string{ConventionalPath(d.Type, d.Name)}
	}
}

// ConventionalPath returns extensions/<type>/<name> in slash form.
func ConventionalPath(typ, name string) string {
	return path.Join(ExtensionsDir, typ, name)
}
