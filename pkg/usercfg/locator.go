package usercfg

import (
	"fmt"
	"path/filepath"
)

// CurrentLocation describes where the host platform keeps the running
// application's settings file, derived purely from that file's path. The
// directory structure is fixed at four ancestor levels:
//
//	{AppDataRoot}/{RootGroup}/{AssemblyDir}/{Version}/user.config
type CurrentLocation struct {
	AppDataRoot  string
	RootGroup    string
	AssemblyDir  string
	Version      Version
	SettingsPath string
}

// LocateCurrent derives the settings-tree coordinates from the absolute path
// of the current settings file, as reported by the host platform's
// configuration locator.
func LocateCurrent(configFilePath string) (CurrentLocation, error) {
	var loc CurrentLocation
	if configFilePath == "" {
		return loc, fmt.Errorf("locate current settings: empty path: %w", ErrInvalid)
	}

	versionDir := filepath.Dir(configFilePath)
	assemblyDir := filepath.Dir(versionDir)
	groupDir := filepath.Dir(assemblyDir)
	root := filepath.Dir(groupDir)

	for _, dir := range []string{versionDir, assemblyDir, groupDir, root} {
		if dir == "." || dir == string(filepath.Separator) {
			return loc, fmt.Errorf(
				"locate current settings: path %q is too shallow: %w",
				configFilePath, ErrInvalid)
		}
	}

	version, err := ParseVersion(filepath.Base(versionDir))
	if err != nil {
		return loc, fmt.Errorf("locate current settings: version directory %q: %w",
			filepath.Base(versionDir), err)
	}

	return CurrentLocation{
		AppDataRoot:  root,
		RootGroup:    filepath.Base(groupDir),
		AssemblyDir:  filepath.Base(assemblyDir),
		Version:      version,
		SettingsPath: configFilePath,
	}, nil
}

// Identity derives the running application's identity from the location: the
// bare name extracted from the observed assembly directory name, with that
// directory name preserved as the exact-match hint. The separator is required
// here since the platform wrote the directory itself.
func (loc CurrentLocation) Identity(debugging bool) (Identity, error) {
	bare, err := ExtractBareName(loc.AssemblyDir, true, debugging)
	if err != nil {
		return Identity{}, err
	}
	id, err := NewIdentity(loc.RootGroup, bare)
	if err != nil {
		return Identity{}, err
	}
	return id.WithHint(loc.AssemblyDir), nil
}
