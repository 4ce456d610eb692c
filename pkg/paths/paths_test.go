package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallRootFromEnv(t *testing.T) {
	t.Setenv(EnvRoot, "/opt/tool")

	root, err := InstallRoot()
	require.NoError(t, err)
	assert.Equal(t, "/opt/tool", root)
}

func TestInstallRootFromEnvRelative(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(EnvRoot, "tool")

	root, err := InstallRoot()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(root), "install root must be absolute, got %s", root)
	assert.Equal(t, "tool", filepath.Base(root))
}

func TestRootFor(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"setup script layout", "/opt/tool/setup/init.sh", "/opt/tool"},
		{"bin layout", "/opt/tool/bin/trtpy", "/opt/tool"},
		{"deep layout", "/a/b/c/d", "/a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RootFor(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRootForRelativePathIsAbsolutized(t *testing.T) {
	chdir(t, t.TempDir())

	got, err := RootFor("setup/init.sh")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
}

func TestDirsUnderRoot(t *testing.T) {
	assert.Equal(t, "/opt/tool/scripts", ScriptsDir("/opt/tool"))
	assert.Equal(t, "/opt/tool/docs", DocsDir("/opt/tool"))
}

func TestConfigDirOverride(t *testing.T) {
	t.Setenv(EnvConfigDir, "/custom/config")

	assert.Equal(t, "/custom/config", ConfigDir())
	assert.Equal(t, "/custom/config/config.toml", ConfigFilePath())
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
