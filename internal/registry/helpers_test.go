package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFile creates path (relative to root) with content, creating parents.
func writeFile(t *testing.T, root, path, content string) string {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(path))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	return full
}

// mkdir creates a directory (relative to root) and returns its full path.
func mkdir(t *testing.T, root, path string) string {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(path))
	require.NoError(t, os.MkdirAll(full, 0o755))
	return full
}

// newPortal lays out a base app with a logo image, a footer component
// declared at a custom path, and a discovered menu component.
func newPortal(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, root, "app.yaml", `name: portal
version: 1.4.2
extensions:
  - name: footer
    type: component
    path: widgets/footer
`)
	writeFile(t, root, "extensions/image/logo/logo.png", "\x89PNG\r\n\x1a\n")
	writeFile(t, root, "widgets/footer/footer.html", "<footer></footer>")
	mkdir(t, root, "extensions/component/menu")
	return root
}

// newTheme lays out an override layer for portal that replaces the logo and
// adds a banner.
func newTheme(t *testing.T, constraint string) string {
	t.Helper()
	root := t.TempDir()
	manifest := "name: portal-dark\nversion: 0.1.0\noverrides:\n  app: portal\n"
	if constraint != "" {
		manifest += "  version: \"" + constraint + "\"\n"
	}
	writeFile(t, root, "app.yaml", manifest)
	writeFile(t, root, "extensions/image/logo/logo.svg", "<svg xmlns=\"http://www.w3.org/2000/svg\"></svg>")
	mkdir(t, root, "extensions/image/banner")
	return root
}
