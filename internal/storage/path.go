package storage

import (
	"os"
	"path/filepath"
)

// ExpandPath replaces a leading ~ with the user's home directory.
// The path is returned unchanged when the home directory is unknown.
func ExpandPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
