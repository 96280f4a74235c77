package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jlrickert/usercfg/pkg/usercfg"
)

func writeStoreFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "store.yaml")
	doc := "fields:\n" +
		"  Theme:\n    type: string\n" +
		"  Count:\n    type: int\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestMigrateCmd(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "Acme", "App.exe_Url_abc123", "1.9.0.0",
		map[string]string{"Theme": "dark", "Count": "3"})
	storePath := writeStoreFile(t)

	out, err := runCLI(t, "migrate", "--store", storePath,
		"--root", root, "--group", "Acme", "--name", "App", "--version", "2.0.0.0")
	require.NoError(t, err)
	require.Contains(t, out, "migrated from")
	require.Contains(t, out, "1.9.0.0")

	store, err := usercfg.LoadStore(storePath)
	require.NoError(t, err)
	theme, ok := store.Get("Theme")
	require.True(t, ok)
	require.Equal(t, "dark", theme)
	count, ok := store.Get("Count")
	require.True(t, ok)
	require.Equal(t, 3, count)
}

func TestMigrateCmdDryRun(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "Acme", "App_Url_x", "1.9.0.0",
		map[string]string{"Theme": "dark"})
	storePath := writeStoreFile(t)

	_, err := runCLI(t, "migrate", "--store", storePath, "--dry-run",
		"--root", root, "--group", "Acme", "--name", "App", "--version", "2.0.0.0")
	require.NoError(t, err)

	store, err := usercfg.LoadStore(storePath)
	require.NoError(t, err)
	theme, ok := store.Get("Theme")
	require.True(t, ok)
	require.Nil(t, theme, "dry run must not write the store")
}

func TestMigrateCmdReportsSkippedFields(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "Acme", "App_Url_x", "1.9.0.0",
		map[string]string{"Theme": "dark", "Ghost": "boo"})
	storePath := writeStoreFile(t)

	out, err := runCLI(t, "migrate", "--store", storePath,
		"--root", root, "--group", "Acme", "--name", "App", "--version", "2.0.0.0")
	require.NoError(t, err)
	require.Contains(t, out, "skipped Ghost")
}

func TestMigrateCmdNothingToMigrate(t *testing.T) {
	storePath := writeStoreFile(t)

	out, err := runCLI(t, "migrate", "--store", storePath,
		"--root", t.TempDir(), "--group", "Acme", "--name", "App", "--version", "2.0.0.0")
	require.NoError(t, err)
	require.Contains(t, out, "nothing to migrate")
}

func TestMigrateCmdRequiresStore(t *testing.T) {
	_, err := runCLI(t, "migrate",
		"--root", t.TempDir(), "--group", "Acme", "--name", "App", "--version", "2.0.0.0")
	require.Error(t, err)
}

func TestMigrateCmdWithManifest(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "OldCorp", "Legacy_Url_x", "1.2.0.0",
		map[string]string{"Theme": "light"})
	storePath := writeStoreFile(t)

	manifestPath := filepath.Join(t.TempDir(), "manifest.yaml")
	manifest := "usercfgv: \"2026-08\"\n" +
		"previous:\n" +
		"  - rootGroup: OldCorp\n    bareName: Legacy\n"
	require.NoError(t, os.WriteFile(manifestPath, []byte(manifest), 0o644))

	out, err := runCLI(t, "migrate", "--store", storePath, "--manifest", manifestPath,
		"--root", root, "--group", "Acme", "--name", "App", "--version", "2.0.0.0")
	require.NoError(t, err)
	require.Contains(t, out, "migrated from")

	store, err := usercfg.LoadStore(storePath)
	require.NoError(t, err)
	theme, ok := store.Get("Theme")
	require.True(t, ok)
	require.Equal(t, "light", theme)
}
