package usercfg

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jlrickert/usercfg/pkg/log"
)

// CandidateInfo describes one version subdirectory found under a matching
// assembly directory, whether or not it would survive acceptance filtering.
type CandidateInfo struct {
	AssemblyDir string
	Version     Version
	Path        string
	CreatedAt   time.Time
	HasSettings bool
}

// ListCandidates enumerates every version subdirectory for the identity,
// sorted by version descending. It applies the same matching rules as Scan
// but no acceptance filtering, which makes it useful for inspection tooling.
func ListCandidates(ctx context.Context, appDataRoot string, id Identity) ([]CandidateInfo, error) {
	if appDataRoot == "" {
		return nil, NewInvalidIdentityError("empty app data root")
	}
	lg := log.FromContext(ctx)

	groupDir := filepath.Join(appDataRoot, id.RootGroup)
	entries, err := os.ReadDir(groupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var out []CandidateInfo
	prefix := strings.ToLower(id.EffectiveName())
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if !strings.HasPrefix(strings.ToLower(entry.Name()), prefix) {
			continue
		}
		assemblyDir := filepath.Join(groupDir, entry.Name())
		versionEntries, err := os.ReadDir(assemblyDir)
		if err != nil {
			lg.Debug("skipping unreadable assembly directory",
				"dir", assemblyDir, "error", err)
			continue
		}
		for _, ve := range versionEntries {
			if !ve.IsDir() {
				continue
			}
			version, err := ParseVersion(ve.Name())
			if err != nil {
				continue
			}
			info := CandidateInfo{
				AssemblyDir: entry.Name(),
				Version:     version,
				Path:        filepath.Join(assemblyDir, ve.Name(), SettingsFileName),
			}
			if fi, err := os.Stat(info.Path); err == nil && fi.Mode().IsRegular() {
				info.HasSettings = true
				info.CreatedAt = fi.ModTime()
			}
			out = append(out, info)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Version.Compare(out[j].Version); c != 0 {
			return c > 0
		}
		return out[i].AssemblyDir < out[j].AssemblyDir
	})
	return out, nil
}
