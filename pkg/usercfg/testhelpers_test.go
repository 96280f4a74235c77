package usercfg_test

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// settingsXML renders a minimal settings document holding the given
// name/value entries in one properties section.
func settingsXML(fields map[string]string) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n")
	b.WriteString("<configuration>\n  <userSettings>\n    <App.Properties.Settings>\n")
	for _, name := range names {
		b.WriteString("      <setting name=\"" + name + "\" serializeAs=\"String\">\n")
		b.WriteString("        <value>" + fields[name] + "</value>\n")
		b.WriteString("      </setting>\n")
	}
	b.WriteString("    </App.Properties.Settings>\n  </userSettings>\n</configuration>\n")
	return b.String()
}

// writeSettingsTree creates {root}/{group}/{assembly}/{version}/user.config
// with the given fields and returns the settings file path.
func writeSettingsTree(t *testing.T, root, group, assembly, version string, fields map[string]string) string {
	t.Helper()
	dir := filepath.Join(root, group, assembly, version)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "user.config")
	require.NoError(t, os.WriteFile(path, []byte(settingsXML(fields)), 0o644))
	return path
}

// touch sets both timestamps of path so creation-time tie-breaking is
// deterministic in tests.
func touch(t *testing.T, path string, at time.Time) {
	t.Helper()
	require.NoError(t, os.Chtimes(path, at, at))
}
