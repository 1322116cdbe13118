package static

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/karrick/godirwalk"
)

// file is a regular file found under the mapped root.
type file struct {
	rel string // relative to root, host separators
	abs string
}

// walk collects the regular files below root in lexical order.
// Directories are descended, symlinks and special files are skipped.
func walk(root string) ([]file, error) {
	fi, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("static root: %w", err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("static root %q: %w", root, errNotDirectory)
	}

	var files []file
	err = godirwalk.Walk(root, &godirwalk.Options{
		Callback: func(osPathname string, de *godirwalk.Dirent) error {
			if !de.IsRegular() {
				return nil
			}

			rel, err := filepath.Rel(root, osPathname)
			if err != nil {
				return err
			}

			files = append(files, file{rel: rel, abs: osPathname})
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("walking %q: %w", root, err)
	}

	return files, nil
}

// routePath builds the route for a relative file path, using sep between
// segments and as the leading character.
func routePath(rel, sep string) string {
	segments := strings.Split(rel, string(filepath.Separator))
	return sep + strings.Join(segments, sep)
}
