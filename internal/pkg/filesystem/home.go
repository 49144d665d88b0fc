package filesystem

import (
	"os"
	"strings"
)

// UserHomeDir returns the current user's home directory.
// If the home directory cannot be determined, it returns "." as a fallback.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// DisplayPath abbreviates the user's home directory prefix to "~". Paths
// outside the home directory are returned unchanged.
func DisplayPath(path string) string {
	home := UserHomeDir()
	if home == "" || home == "." || home == "/" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(os.PathSeparator)) {
		return "~" + path[len(home):]
	}
	return path
}
