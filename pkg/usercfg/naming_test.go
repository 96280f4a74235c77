package usercfg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jlrickert/usercfg/pkg/usercfg"
)

func TestExtractBareName_Table(t *testing.T) {
	cases := []struct {
		name             string
		dir              string
		requireSeparator bool
		debugging        bool
		want             string
		wantMalformed    bool
		wantInvalid      bool
	}{
		{name: "release executable", dir: "App.exe_Url_abc123", want: "App"},
		{name: "library", dir: "App.dll_Url_abc123", want: "App"},
		{name: "extensionless", dir: "App_Url_abc123", want: "App"},
		{name: "debug host with flag", dir: "App.vshost.exe_Url_abc123",
			debugging: true, want: "App"},
		{name: "debug host without flag keeps vshost", dir: "App.vshost.exe_Url_abc123",
			want: "App.vshost"},
		{name: "case-insensitive extension", dir: "App.EXE_Url_abc123", want: "App"},
		{name: "rightmost separator wins", dir: "My_Url_App.exe_Url_abc123",
			want: "My_Url_App"},
		{name: "no separator, not required", dir: "App.exe", want: "App"},
		{name: "no separator, required", dir: "App.exe",
			requireSeparator: true, wantMalformed: true},
		{name: "separator at index zero", dir: "_Url_abc123", wantMalformed: true},
		{name: "separator leaves empty hash", dir: "App.exe_Url_", wantMalformed: true},
		{name: "empty directory name", dir: "", wantMalformed: true},
		{name: "name reduces to nothing", dir: ".exe_Url_abc123", wantInvalid: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := usercfg.ExtractBareName(tc.dir, tc.requireSeparator, tc.debugging)
			if tc.wantMalformed {
				require.Error(t, err)
				require.True(t, usercfg.IsMalformedDirectoryName(err))
				return
			}
			if tc.wantInvalid {
				require.Error(t, err)
				require.True(t, usercfg.IsInvalidIdentity(err))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestCandidateDirPrefix(t *testing.T) {
	id, err := usercfg.NewIdentity("Acme", "App")
	require.NoError(t, err)

	require.Equal(t, "App", usercfg.CandidateDirPrefix(id, usercfg.ExtensionNone))
	require.Equal(t, "App.exe", usercfg.CandidateDirPrefix(id, usercfg.ExtensionRelease))
	require.Equal(t, "App.vshost.exe", usercfg.CandidateDirPrefix(id, usercfg.ExtensionDebugHost))
}
