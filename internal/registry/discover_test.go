package registry

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uisx-labs/uisx/internal/extension"
)

func TestLoadLayer_DeclaredAndDiscovered(t *testing.T) {
	root := newPortal(t)

	ll, err := LoadLayer(context.Background(), Layer{BasePath: root}, nil)
	require.NoError(t, err)

	assert.Equal(t, "portal", ll.Layer.Name)
	assert.Equal(t, "1.4.2", ll.Manifest.Version)
	require.Len(t, ll.Extensions, 3)

	want := []extension.Extension{
		extension.New("footer", "component", filepath.Join(root, "widgets", "footer")),
		extension.New("menu", "component", filepath.Join(root, "extensions", "component", "menu")),
		extension.New("logo", "image", filepath.Join(root, "extensions", "image", "logo")),
	}
	for i, w := range want {
		assert.True(t, extension.Equal(w, ll.Extensions[i]), "got %s, want %s", ll.Extensions[i], w)
	}
}

func TestLoadLayer_ExplicitName(t *testing.T) {
	root := newPortal(t)

	ll, err := LoadLayer(context.Background(), Layer{Name: "base", BasePath: root}, nil)
	require.NoError(t, err)
	assert.Equal(t, "base", ll.Layer.Name)
	assert.Equal(t, "portal", ll.Manifest.Name)
}

func TestLoadLayer_WithoutManifest(t *testing.T) {
	root := filepath.Join(t.TempDir(), "tenant-a")
	mkdir(t, root, "extensions/theme/dark")

	ll, err := LoadLayer(context.Background(), Layer{BasePath: root}, nil)
	require.NoError(t, err)

	assert.Equal(t, "tenant-a", ll.Layer.Name)
	assert.Nil(t, ll.Manifest.Overrides)
	require.Len(t, ll.Extensions, 1)
	assert.Equal(t, "dark", ll.Extensions[0].Name())
	assert.Equal(t, "theme", ll.Extensions[0].Type())
}

func TestLoadLayer_DeclarationWinsOverDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "app.yaml", `name: portal
extensions:
  - name: logo
    type: image
    paths: [extensions/image/logo, shared/branding]
`)
	mkdir(t, root, "extensions/image/logo")

	ll, err := LoadLayer(context.Background(), Layer{BasePath: root}, nil)
	require.NoError(t, err)
	require.Len(t, ll.Extensions, 1)
	assert.Equal(t, []string{
		filepath.Join(root, "extensions", "image", "logo"),
		filepath.Join(root, "shared", "branding"),
	}, ll.Extensions[0].Paths())
}

func TestLoadLayer_RepeatedDeclarationCollapses(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "app.yaml", `name: portal
extensions:
  - name: logo
    type: image
    path: a
  - name: logo
    type: image
    path: a
`)

	ll, err := LoadLayer(context.Background(), Layer{BasePath: root}, nil)
	require.NoError(t, err)
	assert.Len(t, ll.Extensions, 1)
}

func TestLoadLayer_ConflictingDeclaration(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "app.yaml", `name: portal
extensions:
  - name: logo
    type: image
    path: a
  - name: logo
    type: image
    path: b
`)

	_, err := LoadLayer(context.Background(), Layer{BasePath: root}, nil)
	assert.ErrorIs(t, err, ErrConflictingDeclaration)
}

func TestLoadLayer_Errors(t *testing.T) {
	file := writeFile(t, t.TempDir(), "plain.txt", "x")
	badManifest := t.TempDir()
	writeFile(t, badManifest, "app.yaml", "name: [unclosed\n")

	tests := []struct {
		name string
		path string
	}{
		{"missing directory", filepath.Join(t.TempDir(), "nope")},
		{"not a directory", file},
		{"malformed manifest", badManifest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadLayer(context.Background(), Layer{BasePath: tt.path}, nil)
			assert.Error(t, err)
		})
	}
}

func TestLoadLayer_Canceled(t *testing.T) {
	root := newPortal(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LoadLayer(ctx, Layer{BasePath: root}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadLayer_IgnoresFilesAtExtensionLevel(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "extensions/image/README.md", "not an extension")
	mkdir(t, root, "extensions/image/logo")

	ll, err := LoadLayer(context.Background(), Layer{BasePath: root}, nil)
	require.NoError(t, err)
	require.Len(t, ll.Extensions, 1)
	assert.Equal(t, "logo", ll.Extensions[0].Name())
}
