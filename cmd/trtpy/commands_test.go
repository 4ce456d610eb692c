package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args and captured output
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Keep logging, config discovery, and styling deterministic
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("TRTPY_CONFIG_DIR", t.TempDir())
	t.Setenv("NO_COLOR", "1")

	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestEnvCommandScenario(t *testing.T) {
	// The canonical scenario: install root /opt/tool, no base
	// environment, empty prior paths
	t.Setenv("ROOTCOREBIN", "")
	t.Setenv("PYTHONPATH", "")
	t.Setenv("PATH", "")

	out, err := executeCommand(t, "env", "--root", "/opt/tool")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	want := []string{
		"setupDefaultEnvironment",
		"echo 'trtpy: ROOTCOREBIN was not set, a default base environment has been configured'",
		"echo 'trtpy: establish your own base environment before sourcing to avoid this'",
		"setupPackage 'releases/LCG_88/numpy/1.11.0'",
		"setupPackage 'releases/LCG_88/scipy/0.18.1'",
		"setupPackage 'releases/LCG_88/matplotlib/1.5.1'",
		"setupPackage 'releases/LCG_88/setuptools/20.1.1'",
		"setupPackage 'releases/LCG_88/pyyaml/3.11'",
		"export TRTPYDIR='/opt/tool'",
		"export PYTHONPATH=':/opt/tool'",
		"export PATH=':/opt/tool/scripts'",
	}
	assert.Equal(t, want, lines)
}

func TestEnvCommandSkipsFallback(t *testing.T) {
	t.Setenv("ROOTCOREBIN", "/cvmfs/rootcore/bin")

	out, err := executeCommand(t, "env", "--root", "/opt/tool")
	require.NoError(t, err)

	assert.NotContains(t, out, "setupDefaultEnvironment")
	assert.NotContains(t, out, "echo")
	assert.Contains(t, out, "setupPackage 'releases/LCG_88/numpy/1.11.0'")
}

func TestEnvCommandFish(t *testing.T) {
	t.Setenv("ROOTCOREBIN", "set")

	out, err := executeCommand(t, "env", "--root", "/opt/tool", "--shell", "fish")
	require.NoError(t, err)

	assert.Contains(t, out, "set -gx TRTPYDIR '/opt/tool'")
	assert.NotContains(t, out, "export ")
}

func TestEnvCommandBadShell(t *testing.T) {
	_, err := executeCommand(t, "env", "--root", "/opt/tool", "--shell", "powershell")
	require.Error(t, err)
}

func TestEnvCommandUsesRootEnvVar(t *testing.T) {
	t.Setenv("ROOTCOREBIN", "set")
	t.Setenv("TRTPY_ROOT", "/opt/elsewhere")

	out, err := executeCommand(t, "env")
	require.NoError(t, err)
	assert.Contains(t, out, "export TRTPYDIR='/opt/elsewhere'")
}

func TestSnippetCommand(t *testing.T) {
	out, err := executeCommand(t, "snippet")
	require.NoError(t, err)
	assert.Contains(t, out, `eval "$(trtpy env)"`)

	out, err = executeCommand(t, "snippet", "--shell", "fish")
	require.NoError(t, err)
	assert.Contains(t, out, "trtpy env --shell fish | source")
}

func TestPackagesCommand(t *testing.T) {
	out, err := executeCommand(t, "packages")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	want := []string{
		"releases/LCG_88/numpy/1.11.0",
		"releases/LCG_88/scipy/0.18.1",
		"releases/LCG_88/matplotlib/1.5.1",
		"releases/LCG_88/setuptools/20.1.1",
		"releases/LCG_88/pyyaml/3.11",
	}
	assert.Equal(t, want, lines)
}

func TestPackagesCommandTextFormat(t *testing.T) {
	out, err := executeCommand(t, "packages", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "releases/LCG_88/numpy/1.11.0")
}

func TestPackagesCommandBadFormat(t *testing.T) {
	_, err := executeCommand(t, "packages", "--format", "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestSetupCommandDryRun(t *testing.T) {
	t.Setenv("ROOTCOREBIN", "")

	out, err := executeCommand(t, "setup", "--dry-run", "--root", "/opt/tool")
	require.NoError(t, err)

	// The fallback warning appears exactly once, on two lines
	assert.Equal(t, 1, strings.Count(out, "trtpy: ROOTCOREBIN was not set, a default base environment has been configured"))
	assert.Equal(t, 1, strings.Count(out, "trtpy: establish your own base environment before sourcing to avoid this"))
	assert.Contains(t, out, "Setup finished: 6 succeeded, 0 failed")
	assert.Contains(t, out, "export TRTPYDIR='/opt/tool'")
	assert.Contains(t, out, "export PATH=")
}

func TestSetupCommandSkipsBaseWhenConfigured(t *testing.T) {
	t.Setenv("ROOTCOREBIN", "/cvmfs/rootcore/bin")

	out, err := executeCommand(t, "setup", "--dry-run", "--root", "/opt/tool")
	require.NoError(t, err)

	assert.NotContains(t, out, "trtpy: ROOTCOREBIN was not set")
	assert.Contains(t, out, "Base environment already configured")
	assert.Contains(t, out, "Setup finished: 5 succeeded, 0 failed")
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "trtpy version")
}

func TestNoCommandShowsHelp(t *testing.T) {
	_, err := executeCommand(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestTopicsCommandNoDocs(t *testing.T) {
	t.Setenv("TRTPY_ROOT", t.TempDir())

	out, err := executeCommand(t, "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "No documentation topics found.")
}

func TestTopicsCommandUnknownTopic(t *testing.T) {
	t.Setenv("TRTPY_ROOT", t.TempDir())

	_, err := executeCommand(t, "topics", "nope")
	require.Error(t, err)
}
