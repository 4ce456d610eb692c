package lcg

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/ddavis/trtpy/pkg/errors"
	"github.com/ddavis/trtpy/pkg/logging"
)

// Command names of the site-provided setup capability. These are shell
// functions or executables that the hosting environment defines; trtpy
// only calls them.
const (
	DefaultEnvCommand     = "setupDefaultEnvironment"
	DefaultPackageCommand = "setupPackage"
)

// Setup is the external capability the environment initializer
// depends on. Implementations make packages available on disk and may
// mutate the environment themselves; callers do not inspect results
// beyond the returned error.
type Setup interface {
	// Default establishes the fallback base environment
	Default(ctx context.Context) error

	// Package makes one channel-qualified package available
	Package(ctx context.Context, spec Spec) error
}

// ExecSetup invokes the setup capability as subprocesses. Used by
// `trtpy setup` for direct provisioning outside a sourced session.
type ExecSetup struct {
	// EnvCommand runs for Default; defaults to setupDefaultEnvironment
	EnvCommand string

	// PackageCommand runs for Package with the channel-qualified spec
	// path appended; defaults to setupPackage
	PackageCommand string

	// Channel qualifies package specs; defaults to DefaultChannel
	Channel Channel

	// DryRun logs the commands without executing them
	DryRun bool

	// Stdout and Stderr receive the capability's native output;
	// default to the process streams
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecSetup returns an ExecSetup with defaults filled in
func NewExecSetup(channel Channel) *ExecSetup {
	if channel == "" {
		channel = DefaultChannel
	}
	return &ExecSetup{
		EnvCommand:     DefaultEnvCommand,
		PackageCommand: DefaultPackageCommand,
		Channel:        channel,
	}
}

// Default implements Setup
func (e *ExecSetup) Default(ctx context.Context) error {
	return e.run(ctx, e.envCommand())
}

// Package implements Setup
func (e *ExecSetup) Package(ctx context.Context, spec Spec) error {
	return e.run(ctx, e.packageCommand(), spec.PathIn(e.channel()))
}

func (e *ExecSetup) run(ctx context.Context, name string, args ...string) error {
	logger := logging.GetLogger("lcg.setup")
	logger.Debug().Str("command", name).Strs("args", args).Msg("Invoking setup capability")

	if e.DryRun {
		logger.Info().Str("command", name).Strs("args", args).Msg("Dry run, skipping setup invocation")
		return nil
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = e.stdout()
	cmd.Stderr = e.stderr()
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, errors.ErrSetupExec, "setup command %s failed", name)
	}
	return nil
}

func (e *ExecSetup) envCommand() string {
	if e.EnvCommand == "" {
		return DefaultEnvCommand
	}
	return e.EnvCommand
}

func (e *ExecSetup) packageCommand() string {
	if e.PackageCommand == "" {
		return DefaultPackageCommand
	}
	return e.PackageCommand
}

func (e *ExecSetup) channel() Channel {
	if e.Channel == "" {
		return DefaultChannel
	}
	return e.Channel
}

func (e *ExecSetup) stdout() io.Writer {
	if e.Stdout == nil {
		return os.Stdout
	}
	return e.Stdout
}

func (e *ExecSetup) stderr() io.Writer {
	if e.Stderr == nil {
		return os.Stderr
	}
	return e.Stderr
}
