package usercfg

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jlrickert/usercfg/pkg/log"
)

// WatchAssemblyDir watches one assembly directory and invokes onSettings
// whenever a new version subdirectory gains a settings file. It blocks until
// ctx is done.
//
// Events are debounced so a directory that is still being populated is only
// reported once its settings file exists. Version subdirectories present
// before the watch started are not reported.
func WatchAssemblyDir(ctx context.Context, assemblyDir string, onSettings func(ResolvedSettingsFile)) error {
	if onSettings == nil {
		return NewInvalidIdentityError("nil settings callback")
	}
	if fi, err := os.Stat(assemblyDir); err != nil || !fi.IsDir() {
		return NewInvalidIdentityError("assembly directory does not exist: " + assemblyDir)
	}
	lg := log.FromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() {
		_ = watcher.Close()
	}()

	if err := watcher.Add(assemblyDir); err != nil {
		return err
	}

	seen := map[string]bool{}
	pending := map[string]time.Time{}

	// checkDir reports a version directory once it holds a settings file.
	checkDir := func(dir string) {
		if seen[dir] {
			return
		}
		version, err := ParseVersion(filepath.Base(dir))
		if err != nil {
			return
		}
		settingsPath := filepath.Join(dir, SettingsFileName)
		info, err := os.Stat(settingsPath)
		if err != nil || !info.Mode().IsRegular() {
			return
		}
		seen[dir] = true
		delete(pending, dir)
		onSettings(ResolvedSettingsFile{
			Path:      settingsPath,
			Version:   version,
			CreatedAt: info.ModTime(),
		})
	}

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			for dir, since := range pending {
				if time.Since(since) >= 120*time.Millisecond {
					checkDir(dir)
					if !seen[dir] {
						// keep waiting for the settings file
						pending[dir] = time.Now()
					}
				}
			}
		case event, ok := <-watcher.Events:
			if !ok {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			dir := event.Name
			if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
				dir = filepath.Dir(dir)
			}
			if filepath.Dir(dir) != assemblyDir && dir != assemblyDir {
				continue
			}
			if dir == assemblyDir {
				continue
			}
			if !seen[dir] {
				pending[dir] = time.Now()
				// watch inside the new version directory so the settings file
				// write is observed too
				_ = watcher.Add(dir)
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				continue
			}
			lg.Warn("settings tree watcher error", "error", watchErr)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
