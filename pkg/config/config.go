// Package config loads the trtpy application config, a TOML file
// under the XDG config directory (or TRTPY_CONFIG_DIR). A missing file
// yields the defaults; a malformed file is an error.
package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/ddavis/trtpy/pkg/errors"
	"github.com/ddavis/trtpy/pkg/lcg"
	"github.com/ddavis/trtpy/pkg/paths"
)

// Config is the application configuration
type Config struct {
	// Shell selects the emitted dialect: "sh" or "fish"
	Shell string `toml:"shell"`

	Setup    SetupConfig    `toml:"setup"`
	Packages PackagesConfig `toml:"packages"`
}

// SetupConfig names the site-provided setup capability commands
type SetupConfig struct {
	EnvCommand     string `toml:"env_command"`
	PackageCommand string `toml:"package_command"`
}

// PackagesConfig overrides the package set to request
type PackagesConfig struct {
	// Channel overrides the release channel
	Channel string `toml:"channel"`

	// Manifest points at a packages.yaml; relative paths resolve
	// against the config directory
	Manifest string `toml:"manifest"`

	// Specs lists inline "name version" overrides; takes precedence
	// over Manifest
	Specs []string `toml:"specs"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Shell: "sh",
		Setup: SetupConfig{
			EnvCommand:     lcg.DefaultEnvCommand,
			PackageCommand: lcg.DefaultPackageCommand,
		},
		Packages: PackagesConfig{
			Channel: string(lcg.DefaultChannel),
		},
	}
}

// Load reads the config file at the standard location. A missing file
// is not an error.
func Load() (*Config, error) {
	return LoadFrom(paths.ConfigFilePath())
}

// LoadFrom reads a config file from an explicit path, merging it over
// the defaults
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config %s", path)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config %s", path)
	}

	if cfg.Shell != "sh" && cfg.Shell != "fish" {
		return nil, errors.Newf(errors.ErrConfigParse, "config %s: shell must be sh or fish, got %q", path, cfg.Shell)
	}

	return cfg, nil
}

// ResolvePackages returns the package set and channel to request:
// inline specs win over a manifest, which wins over the defaults.
func (c *Config) ResolvePackages() ([]lcg.Spec, lcg.Channel, error) {
	channel := lcg.Channel(c.Packages.Channel)
	if channel == "" {
		channel = lcg.DefaultChannel
	}

	if len(c.Packages.Specs) > 0 {
		specs := make([]lcg.Spec, 0, len(c.Packages.Specs))
		for _, raw := range c.Packages.Specs {
			spec, err := lcg.ParseSpec(raw)
			if err != nil {
				return nil, "", err
			}
			specs = append(specs, spec)
		}
		return specs, channel, nil
	}

	if c.Packages.Manifest != "" {
		path := c.Packages.Manifest
		if !filepath.IsAbs(path) {
			path = filepath.Join(paths.ConfigDir(), path)
		}
		specs, manifestChannel, err := lcg.LoadManifest(path)
		if err != nil {
			return nil, "", err
		}
		// An explicit channel in the config wins over the manifest's
		if c.Packages.Channel != "" {
			return specs, channel, nil
		}
		return specs, manifestChannel, nil
	}

	return lcg.DefaultSpecs, channel, nil
}
