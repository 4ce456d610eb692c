package lcg

import (
	"bytes"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ddavis/trtpy/pkg/errors"
)

// Manifest describes an override of the default package set,
// typically <config dir>/packages.yaml
type Manifest struct {
	Channel  Channel `yaml:"channel,omitempty"`
	Packages []struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"packages"`
}

// LoadManifest reads and validates a package manifest. Unknown fields
// are rejected so typos fail loudly instead of silently falling back
// to defaults. The channel falls back to DefaultChannel when the file
// leaves it empty.
func LoadManifest(path string) ([]Spec, Channel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", errors.Wrapf(err, errors.ErrManifestLoad, "failed to read manifest %s", path)
	}

	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, "", errors.Wrapf(err, errors.ErrManifestParse, "failed to parse manifest %s", path)
	}

	if len(m.Packages) == 0 {
		return nil, "", errors.Newf(errors.ErrManifestInvalid, "manifest %s lists no packages", path)
	}

	specs := make([]Spec, 0, len(m.Packages))
	for i, p := range m.Packages {
		if p.Name == "" || p.Version == "" {
			return nil, "", errors.Newf(errors.ErrManifestInvalid,
				"manifest %s entry %d is missing name or version", path, i)
		}
		specs = append(specs, Spec{Name: p.Name, Version: p.Version})
	}

	channel := m.Channel
	if channel == "" {
		channel = DefaultChannel
	}
	return specs, channel, nil
}
