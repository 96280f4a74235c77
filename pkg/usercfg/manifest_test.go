package usercfg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jlrickert/usercfg/pkg/usercfg"
)

func TestParseManifestData(t *testing.T) {
	doc := `
usercfgv: "2026-08"
rootGroup: "Acme"
acceptHigher: true
previous:
  - bareName: "OldApp"
  - rootGroup: "OldCorp"
    bareName: "Legacy"
    dirHint: "Legacy.exe_Url_abc"
`

	manifest, err := usercfg.ParseManifestData([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, usercfg.ManifestV1VersionString, manifest.Usercfgv)
	require.True(t, manifest.AcceptHigher)

	identities, err := manifest.Identities()
	require.NoError(t, err)
	require.Len(t, identities, 2)

	require.Equal(t, "Acme", identities[0].RootGroup,
		"entries without a root group inherit the manifest default")
	require.Equal(t, "OldApp", identities[0].BareName)
	require.Empty(t, identities[0].DirHint)

	require.Equal(t, "OldCorp", identities[1].RootGroup)
	require.Equal(t, "Legacy", identities[1].BareName)
	require.Equal(t, "Legacy.exe_Url_abc", identities[1].DirHint)
}

func TestParseManifestDataErrors(t *testing.T) {
	_, err := usercfg.ParseManifestData([]byte("previous: []\n"))
	require.Error(t, err, "missing version field")

	_, err = usercfg.ParseManifestData([]byte("usercfgv: \"1999-01\"\n"))
	require.Error(t, err, "unsupported version")

	_, err = usercfg.ParseManifestData([]byte(":\tnot yaml"))
	require.Error(t, err)
}

func TestManifestIdentitiesValidation(t *testing.T) {
	doc := `
usercfgv: "2026-08"
previous:
  - bareName: "Orphan"
`
	manifest, err := usercfg.ParseManifestData([]byte(doc))
	require.NoError(t, err)

	// no manifest-level root group and none on the entry
	_, err = manifest.Identities()
	require.Error(t, err)
}
