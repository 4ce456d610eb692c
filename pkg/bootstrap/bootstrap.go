// Package bootstrap computes the environment-initializer plan: the
// lazy default-environment fallback, the fixed package setup calls,
// and the three exports (TRTPYDIR, PYTHONPATH, PATH). The plan is a
// pure value computed from a snapshot of the prior environment; all
// mutation happens in the caller's shell, which evals the emitted
// script.
package bootstrap

import (
	"os"

	"github.com/ddavis/trtpy/pkg/lcg"
	"github.com/ddavis/trtpy/pkg/paths"
)

// Environment variable names the initializer reads and writes
const (
	// EnvRootCoreBin is the precondition flag: presence/absence is
	// checked, the value is never inspected
	EnvRootCoreBin = "ROOTCOREBIN"

	// EnvRootDir is the exported toolkit root
	EnvRootDir = "TRTPYDIR"

	// EnvPythonPath is the module search path, extended with the root
	EnvPythonPath = "PYTHONPATH"

	// EnvPath is the executable search path, extended with <root>/scripts
	EnvPath = "PATH"
)

// PathListSeparator joins path-list entries in the emitted script.
// The script targets POSIX and fish shells, so this is ":" on every
// build platform.
const PathListSeparator = ":"

// Warning lines emitted when the default environment fallback runs
const (
	WarnDefaultEnvLine1 = "trtpy: ROOTCOREBIN was not set, a default base environment has been configured"
	WarnDefaultEnvLine2 = "trtpy: establish your own base environment before sourcing to avoid this"
)

// Snapshot captures the prior environment the plan is computed from
type Snapshot struct {
	RootCoreBin string
	PythonPath  string
	Path        string
	InstallRoot string
}

// CaptureSnapshot reads the live process environment. installRoot is
// resolved separately (see paths.InstallRoot) so callers can override
// it.
func CaptureSnapshot(installRoot string) Snapshot {
	return Snapshot{
		RootCoreBin: os.Getenv(EnvRootCoreBin),
		PythonPath:  os.Getenv(EnvPythonPath),
		Path:        os.Getenv(EnvPath),
		InstallRoot: installRoot,
	}
}

// Export is one environment variable assignment
type Export struct {
	Name  string
	Value string
}

// Plan is the full initializer decision: what to set up and what to
// export, in execution order
type Plan struct {
	// NeedsDefaultEnv is true when ROOTCOREBIN was unset or empty
	NeedsDefaultEnv bool

	Channel  lcg.Channel
	Packages []lcg.Spec

	// Exports are TRTPYDIR, PYTHONPATH, PATH, in that order
	Exports []Export
}

// Options selects the package set; zero values mean the defaults
type Options struct {
	Channel  lcg.Channel
	Packages []lcg.Spec
}

// NewPlan computes the initializer plan from a snapshot. Pure: no I/O,
// no environment access.
//
// The PYTHONPATH and PATH values always keep the prior value as a
// prefix. An empty prior value yields a leading separator; that
// degenerate form is the historical behavior and is kept as is.
func NewPlan(snap Snapshot, opts Options) Plan {
	channel := opts.Channel
	if channel == "" {
		channel = lcg.DefaultChannel
	}
	packages := opts.Packages
	if packages == nil {
		packages = lcg.DefaultSpecs
	}

	return Plan{
		NeedsDefaultEnv: snap.RootCoreBin == "",
		Channel:         channel,
		Packages:        packages,
		Exports: []Export{
			{Name: EnvRootDir, Value: snap.InstallRoot},
			{Name: EnvPythonPath, Value: snap.PythonPath + PathListSeparator + snap.InstallRoot},
			{Name: EnvPath, Value: snap.Path + PathListSeparator + paths.ScriptsDir(snap.InstallRoot)},
		},
	}
}
