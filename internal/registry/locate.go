package registry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"github.com/uisx-labs/uisx/internal/extension"
)

// Locate returns the first file named rel under the paths of ext, trying
// paths in order. With an empty rel each path is itself a candidate file.
// rel must be a local path; it cannot climb out of an extension path.
func Locate(ext extension.Multilocational, rel string) (*Located, error) {
	rel = filepath.FromSlash(rel)
	if rel != "" && !filepath.IsLocal(rel) {
		return nil, fmt.Errorf("path %q is not local to the extension", rel)
	}

	paths := ext.Paths()
	for _, root := range paths {
		candidate := root
		if rel != "" {
			candidate = filepath.Join(root, rel)
		}
		fi, err := os.Stat(candidate)
		if err != nil || fi.IsDir() {
			continue
		}
		mt, err := mimetype.DetectFile(candidate)
		if err != nil {
			return nil, fmt.Errorf("detecting content type of %s: %w", candidate, err)
		}
		return &Located{Path: candidate, Root: root, MIME: mt.String()}, nil
	}
	return nil, fmt.Errorf("%q in %d path(s): %w", rel, len(paths), ErrNotFound)
}
