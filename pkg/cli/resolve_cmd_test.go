package cli_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveCmd(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "Acme", "App.exe_Url_abc123", "1.5.0.0", nil)
	want := writeTree(t, root, "Acme", "App.exe_Url_abc123", "1.9.0.0", nil)

	out, err := runCLI(t, "resolve",
		"--root", root, "--group", "Acme", "--name", "App", "--version", "2.0.0.0")
	require.NoError(t, err)
	require.Contains(t, out, "1.9.0.0")
	require.Contains(t, out, want)
}

func TestResolveCmdNothingToMigrate(t *testing.T) {
	out, err := runCLI(t, "resolve",
		"--root", t.TempDir(), "--group", "Acme", "--name", "App", "--version", "2.0.0.0")
	require.NoError(t, err, "no match must exit cleanly")
	require.Contains(t, out, "nothing to migrate")
}

func TestResolveCmdCurrentConfig(t *testing.T) {
	root := t.TempDir()
	current := writeTree(t, root, "Acme", "App.exe_Url_abc123", "2.0.0.0", nil)
	prior := writeTree(t, root, "Acme", "App.exe_Url_abc123", "1.9.0.0", nil)

	out, err := runCLI(t, "resolve", "--current-config", current)
	require.NoError(t, err)
	require.Contains(t, out, prior)
}

func TestResolveCmdRequiresInputs(t *testing.T) {
	_, err := runCLI(t, "resolve", "--root", t.TempDir())
	require.Error(t, err)
}
