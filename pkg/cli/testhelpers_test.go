package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jlrickert/usercfg/pkg/cli"
)

// runCLI executes the root command with args and returns captured stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmd(&cli.Deps{})
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// writeTree creates {root}/{group}/{assembly}/{version}/user.config holding
// the given settings entries.
func writeTree(t *testing.T, root, group, assembly, version string, fields map[string]string) string {
	t.Helper()
	dir := filepath.Join(root, group, assembly, version)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	doc := "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<configuration>\n" +
		"  <userSettings>\n    <App.Properties.Settings>\n"
	for name, value := range fields {
		doc += "      <setting name=\"" + name + "\" serializeAs=\"String\">\n" +
			"        <value>" + value + "</value>\n      </setting>\n"
	}
	doc += "    </App.Properties.Settings>\n  </userSettings>\n</configuration>\n"

	path := filepath.Join(dir, "user.config")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}
