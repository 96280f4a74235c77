package usercfg

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jlrickert/usercfg/pkg/log"
)

// ResolvedSettingsFile is the winning candidate of a scan: the settings file
// path, the version parsed from its directory name, and the file creation
// timestamp used to break exact-version ties. On filesystems without a birth
// time the modification time stands in for creation.
type ResolvedSettingsFile struct {
	Path      string
	Version   Version
	CreatedAt time.Time
}

// Scan walks the settings tree below appDataRoot for every identity in the
// supplied ordered list and returns the globally best prior settings file, or
// nil when nothing qualifies. Absence of a prior settings file is an
// expected, non-exceptional outcome and is never an error.
//
// For each identity the scan skips a missing root-group subdirectory,
// enumerates assembly subdirectories whose name case-insensitively starts
// with the identity's effective name, and within each collects version
// subdirectories that contain a settings file and parse as a Version.
// Candidates equal to current are dropped unless acceptSame; candidates above
// current are dropped unless acceptHigher. There is no early exit: the full
// identity list is always enumerated so the strictly highest surviving
// version wins, with later file creation time breaking exact-version ties.
func Scan(ctx context.Context, appDataRoot string, identities []Identity,
	current Version, acceptHigher, acceptSame bool) (*ResolvedSettingsFile, error) {

	if appDataRoot == "" {
		return nil, NewInvalidIdentityError("empty app data root")
	}
	lg := log.FromContext(ctx)

	var best *ResolvedSettingsFile
	for _, id := range identities {
		groupDir := filepath.Join(appDataRoot, id.RootGroup)
		entries, err := os.ReadDir(groupDir)
		if err != nil {
			if !os.IsNotExist(err) {
				lg.Debug("skipping unreadable root group directory",
					"dir", groupDir, "error", err)
			}
			continue
		}

		prefix := strings.ToLower(id.EffectiveName())
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			if !strings.HasPrefix(strings.ToLower(entry.Name()), prefix) {
				continue
			}
			assemblyDir := filepath.Join(groupDir, entry.Name())
			candidate := bestInAssemblyDir(ctx, assemblyDir, current, acceptHigher, acceptSame)
			if candidate == nil {
				continue
			}
			if better(candidate, best) {
				best = candidate
			}
		}
	}
	return best, nil
}

// bestInAssemblyDir returns the best acceptable candidate among the version
// subdirectories of one assembly directory, or nil.
func bestInAssemblyDir(ctx context.Context, assemblyDir string,
	current Version, acceptHigher, acceptSame bool) *ResolvedSettingsFile {

	lg := log.FromContext(ctx)

	entries, err := os.ReadDir(assemblyDir)
	if err != nil {
		lg.Debug("skipping unreadable assembly directory",
			"dir", assemblyDir, "error", err)
		return nil
	}

	var best *ResolvedSettingsFile
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		version, err := ParseVersion(entry.Name())
		if err != nil {
			lg.Debug("skipping non-version subdirectory",
				"dir", assemblyDir, "name", entry.Name())
			continue
		}
		settingsPath := filepath.Join(assemblyDir, entry.Name(), SettingsFileName)
		info, err := os.Stat(settingsPath)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if version.Equals(current) && !acceptSame {
			continue
		}
		if version.Gt(current) && !acceptHigher {
			continue
		}
		candidate := &ResolvedSettingsFile{
			Path:      settingsPath,
			Version:   version,
			CreatedAt: info.ModTime(),
		}
		if better(candidate, best) {
			best = candidate
		}
	}
	return best
}

// better reports whether a should replace b: strictly higher version wins,
// and on an exact version tie the later-created file wins.
func better(a, b *ResolvedSettingsFile) bool {
	if b == nil {
		return true
	}
	switch a.Version.Compare(b.Version) {
	case 1:
		return true
	case -1:
		return false
	}
	return a.CreatedAt.After(b.CreatedAt)
}
