package lcg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddavis/trtpy/pkg/errors"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "packages.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, `channel: releases/LCG_92
packages:
  - name: numpy
    version: 1.12.0
  - name: pyyaml
    version: "3.12"
`)

	specs, channel, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, Channel("releases/LCG_92"), channel)
	require.Len(t, specs, 2)
	assert.Equal(t, Spec{Name: "numpy", Version: "1.12.0"}, specs[0])
	assert.Equal(t, Spec{Name: "pyyaml", Version: "3.12"}, specs[1])
}

func TestLoadManifestDefaultChannel(t *testing.T) {
	path := writeManifest(t, `packages:
  - name: numpy
    version: 1.11.0
`)

	_, channel, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultChannel, channel)
}

func TestLoadManifestMissingFile(t *testing.T) {
	_, _, err := LoadManifest(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestLoad))
}

func TestLoadManifestBadYAML(t *testing.T) {
	path := writeManifest(t, "packages: [whoops")

	_, _, err := LoadManifest(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestParse))
}

func TestLoadManifestUnknownField(t *testing.T) {
	path := writeManifest(t, `chanel: releases/LCG_92
packages:
  - name: numpy
    version: 1.12.0
`)

	_, _, err := LoadManifest(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestParse))
}

func TestLoadManifestValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no packages", "channel: releases/LCG_88\n"},
		{"missing version", "packages:\n  - name: numpy\n"},
		{"missing name", "packages:\n  - version: 1.11.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := LoadManifest(writeManifest(t, tt.content))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrManifestInvalid))
		})
	}
}
