package manifest

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

// ErrNoManifest is returned by Parse when the file does not exist.
var ErrNoManifest = errors.New("manifest not found")

// Parse reads and decodes an app.yaml file.
func Parse(path string) (*AppManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBytes(data, path)
}

// ParseBytes decodes app.yaml content. path is only used in error messages.
func ParseBytes(data []byte, path string) (*AppManifest, error) {
	var m AppManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if strings.TrimSpace(m.Name) == "" {
		return nil, fmt.Errorf("manifest %s: missing required 'name' field", path)
	}
	for i, d := range m.Extensions {
		if d.Name == "" || d.Type == "" {
			return nil, fmt.Errorf("manifest %s: extension %d needs both 'name' and 'type'", path, i)
		}
	}
	return &m, nil
}

// SemVer parses the manifest version. An empty version is reported as an
// error so callers can decide whether it matters.
func (m *AppManifest) SemVer() (*semver.Version, error) {
	if m.Version == "" {
		return nil, fmt.Errorf("app %q has no version", m.Name)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(m.Version, "v"))
	if err != nil {
		return nil, fmt.Errorf("parsing version %q of app %q: %w", m.Version, m.Name, err)
	}
	return v, nil
}

// Allows reports whether v satisfies the target's version constraint.
// A target without a constraint allows every version.
func (t *OverrideTarget) Allows(v *semver.Version) (bool, error) {
	if t.Version == "" {
		return true, nil
	}
	c, err := semver.NewConstraint(t.Version)
	if err != nil {
		return false, fmt.Errorf("parsing version constraint %q: %w", t.Version, err)
	}
	return c.Check(v), nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading file %s: %w", path, ErrNoManifest)
	}
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
