// Package lcg models versioned software packages published on an LCG
// release channel, and the external setup capability that makes them
// available on disk. The capability is site-provided; trtpy invokes it
// but never inspects its results.
package lcg

import (
	"fmt"
	"strings"

	"github.com/ddavis/trtpy/pkg/errors"
)

// Channel identifies which build of a package family to fetch,
// e.g. "releases/LCG_88"
type Channel string

// DefaultChannel is the release channel the toolkit is pinned to
const DefaultChannel Channel = "releases/LCG_88"

// Spec identifies a named package at an exact version
type Spec struct {
	Name    string
	Version string
}

// String returns the "name version" form used in config files
func (s Spec) String() string {
	return s.Name + " " + s.Version
}

// PathIn returns the channel-qualified path form of the spec,
// e.g. "releases/LCG_88/numpy/1.11.0"
func (s Spec) PathIn(channel Channel) string {
	return fmt.Sprintf("%s/%s/%s", channel, s.Name, s.Version)
}

// DefaultSpecs is the fixed package set the environment initializer
// requests, in invocation order.
var DefaultSpecs = []Spec{
	{Name: "numpy", Version: "1.11.0"},
	{Name: "scipy", Version: "0.18.1"},
	{Name: "matplotlib", Version: "1.5.1"},
	{Name: "setuptools", Version: "20.1.1"},
	{Name: "pyyaml", Version: "3.11"},
}

// ParseSpec parses the "name version" form
func ParseSpec(s string) (Spec, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Spec{}, errors.Newf(errors.ErrInvalidInput, "package spec %q is not in 'name version' form", s)
	}
	return Spec{Name: fields[0], Version: fields[1]}, nil
}
