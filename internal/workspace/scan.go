package workspace

import (
	"os"
	"path/filepath"
	"strings"
)

// Dirs returns the immediate subdirectories of each parent directory.
// Parent paths may start with "~"; parents that do not exist are skipped.
func Dirs(parents []string) []string {
	var dirs []string
	for _, parent := range parents {
		parent = ExpandHome(parent)
		entries, err := os.ReadDir(parent)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				dirs = append(dirs, filepath.Join(parent, entry.Name()))
			}
		}
	}
	return dirs
}

// Name returns the workspace's display name, derived from its path.
func Name(dir string) string {
	return filepath.Base(dir)
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
