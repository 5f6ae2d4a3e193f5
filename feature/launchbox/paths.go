package launchbox

import (
	"path/filepath"
	"strings"

	"cheevo-checker/core/reconcile"
)

// NewPathResolver returns the mapping from catalog launch paths to the paths
// handed to the hasher. The first rewrite whose From prefix matches
// (case-insensitively) is applied, then paths that are still relative are
// resolved against the LaunchBox root.
func NewPathResolver(root string, rewrites []PathRewrite) reconcile.PathResolver {
	return func(path string) string {
		for _, rw := range rewrites {
			if rw.From == "" {
				continue
			}
			if len(path) >= len(rw.From) && strings.EqualFold(path[:len(rw.From)], rw.From) {
				path = rw.To + path[len(rw.From):]
				break
			}
		}
		if root == "" || isAbs(path) {
			return path
		}
		return filepath.Join(root, path)
	}
}

// isAbs also accepts Windows drive and UNC paths, which LaunchBox writes
// regardless of the host running the check.
func isAbs(path string) bool {
	if filepath.IsAbs(path) {
		return true
	}
	if strings.HasPrefix(path, `\\`) || strings.HasPrefix(path, "/") {
		return true
	}
	return len(path) >= 3 && path[1] == ':' && (path[2] == '\\' || path[2] == '/')
}
