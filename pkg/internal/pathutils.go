package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DefaultAppDataRoot returns the per-user application data root that settings
// trees live under on the current operating system.
//
// Behavior:
//   - Windows: if the LOCALAPPDATA environment variable is set, returns it.
//     If LOCALAPPDATA is not set, an error is returned.
//   - Unix-like systems: if XDG_CONFIG_HOME is set, returns it. Otherwise
//     falls back to $HOME/.config. If the user's home directory cannot be
//     determined, an error is returned.
//
// Notes:
//   - The returned path is a suggested location and is not created by this
//     function; root-group directories below it may or may not exist.
func DefaultAppDataRoot() (string, error) {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("LOCALAPPDATA"); appData != "" {
			return appData, nil
		}
		return "", fmt.Errorf("LOCALAPPDATA environment variable not set")
	}
	// Unix-like: prefer $XDG_CONFIG_HOME, fall back to ~/.config
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config"), nil
}
