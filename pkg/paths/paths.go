// Package paths provides centralized path handling for trtpy.
// The install root follows the toolkit layout: the trtpy executable
// lives two levels below the root (e.g. <root>/bin/trtpy), with
// helper scripts under <root>/scripts and docs under <root>/docs.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/ddavis/trtpy/pkg/errors"
)

// Environment variable names
const (
	// EnvRoot overrides install-root resolution (useful for tests and
	// relocated installs)
	EnvRoot = "TRTPY_ROOT"

	// EnvConfigDir overrides the XDG config directory for trtpy
	EnvConfigDir = "TRTPY_CONFIG_DIR"
)

// Directory and file names under the install root
const (
	// ScriptsDirName holds executable helper scripts, appended to PATH
	ScriptsDirName = "scripts"

	// DocsDirName holds help topics shown by `trtpy topics`
	DocsDirName = "docs"

	// ConfigFileName is the application config file
	ConfigFileName = "config.toml"

	// AppDirName is the subdirectory used under XDG base directories
	AppDirName = "trtpy"
)

// InstallRoot resolves the toolkit root directory: the absolute path
// two levels above the running executable, with symlinks resolved.
// TRTPY_ROOT takes precedence when set.
func InstallRoot() (string, error) {
	if root := os.Getenv(EnvRoot); root != "" {
		abs, err := filepath.Abs(root)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrPathResolve, "failed to absolutize TRTPY_ROOT")
		}
		return abs, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrPathResolve, "failed to locate executable")
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrPathResolve, "failed to resolve executable symlinks")
	}

	return RootFor(resolved)
}

// RootFor computes the install root for a given on-disk location:
// the parent of the containing directory, absolute.
func RootFor(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrPathResolve, "failed to absolutize %s", path)
	}
	return filepath.Dir(filepath.Dir(abs)), nil
}

// ScriptsDir returns the helper-scripts directory under the root
func ScriptsDir(root string) string {
	return filepath.Join(root, ScriptsDirName)
}

// DocsDir returns the help-topics directory under the root
func DocsDir(root string) string {
	return filepath.Join(root, DocsDirName)
}

// ConfigDir returns the directory searched for config.toml.
// It respects TRTPY_CONFIG_DIR if set, otherwise uses the XDG config home.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFilePath returns the full path of the config file
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}
