package registry

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uisx-labs/uisx/internal/extension"
)

func TestLocate_PrefersOverride(t *testing.T) {
	base := newPortal(t)
	theme := newTheme(t, "")
	writeFile(t, base, "extensions/image/logo/logo.svg", "<svg></svg>")

	res, err := New().Resolve(context.Background(), []Layer{{BasePath: base}, {BasePath: theme}})
	require.NoError(t, err)
	logo, err := res.Find("image", "logo")
	require.NoError(t, err)

	got, err := Locate(logo, "logo.svg")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(theme, "extensions", "image", "logo", "logo.svg"), got.Path)
	assert.Equal(t, filepath.Join(theme, "extensions", "image", "logo"), got.Root)
	assert.NotEmpty(t, got.MIME)
}

func TestLocate_FallsBackToBase(t *testing.T) {
	base := newPortal(t)
	theme := newTheme(t, "")

	res, err := New().Resolve(context.Background(), []Layer{{BasePath: base}, {BasePath: theme}})
	require.NoError(t, err)
	logo, err := res.Find("image", "logo")
	require.NoError(t, err)

	got, err := Locate(logo, "logo.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "extensions", "image", "logo", "logo.png"), got.Path)
	assert.Equal(t, "image/png", got.MIME)
}

func TestLocate_FilePaths(t *testing.T) {
	root := t.TempDir()
	file := writeFile(t, root, "themes/default/logo.png", "\x89PNG\r\n\x1a\n")
	ext := extension.NewMulti("logo", "image", []string{filepath.Join(root, "missing.png"), file})

	got, err := Locate(ext, "")
	require.NoError(t, err)
	assert.Equal(t, file, got.Path)
}

func TestLocate_Errors(t *testing.T) {
	root := t.TempDir()
	mkdir(t, root, "logo")
	ext := extension.New("logo", "image", filepath.Join(root, "logo"))

	_, err := Locate(ext, "missing.png")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Locate(ext, "../escape.png")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	// A directory path is not a file.
	_, err = Locate(ext, "")
	assert.ErrorIs(t, err, ErrNotFound)
}
