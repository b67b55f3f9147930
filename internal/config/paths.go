package config

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
)

// HomeDir returns the current user's home directory as resolved by xdg
// (which honors $HOME and falls back to the platform's user lookup).
func HomeDir() string {
	return xdg.Home
}

// ExpandHome replaces a leading "~" with home.
// Only "~" on its own or "~/..." are expanded; "~user" forms and tildes
// elsewhere in the path are left alone, so expanding twice is a no-op.
func ExpandHome(path, home string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	if len(path) == 1 {
		return home
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(home, path[2:])
	}
	return path
}

// CurrentPlatform maps runtime.GOOS to the identifiers used as keys under
// `platform:` in descriptors ("Linux", "Darwin", "Windows").
func CurrentPlatform() string {
	return platformName(runtime.GOOS)
}

func platformName(goos string) string {
	switch goos {
	case "linux":
		return "Linux"
	case "darwin":
		return "Darwin"
	case "windows":
		return "Windows"
	case "":
		return ""
	}
	return strings.ToUpper(goos[:1]) + goos[1:]
}
