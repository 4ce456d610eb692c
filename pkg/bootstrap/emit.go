package bootstrap

import (
	"fmt"
	"io"
	"strings"

	"github.com/ddavis/trtpy/pkg/errors"
	"github.com/ddavis/trtpy/pkg/lcg"
)

// Dialect selects the emitted shell flavor
type Dialect string

const (
	// DialectSh covers bash, zsh and other POSIX shells
	DialectSh Dialect = "sh"

	// DialectFish covers the fish shell
	DialectFish Dialect = "fish"
)

// ParseDialect maps a user-supplied shell name to a Dialect
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(s) {
	case "", "sh", "bash", "zsh", "posix":
		return DialectSh, nil
	case "fish":
		return DialectFish, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unsupported shell %q (want sh or fish)", s)
	}
}

// EmitOptions names the setup capability commands referenced by the
// emitted script
type EmitOptions struct {
	EnvCommand     string
	PackageCommand string
}

func (o EmitOptions) envCommand() string {
	if o.EnvCommand == "" {
		return lcg.DefaultEnvCommand
	}
	return o.EnvCommand
}

func (o EmitOptions) packageCommand() string {
	if o.PackageCommand == "" {
		return lcg.DefaultPackageCommand
	}
	return o.PackageCommand
}

// WriteScript renders the plan as shell text for eval/source. The
// script performs the plan's steps in order: default-environment
// fallback (with its two warning lines), the package setup calls, then
// the exports. Setup failures are not trapped; whatever the capability
// prints or returns propagates natively.
func (p Plan) WriteScript(w io.Writer, dialect Dialect, opts EmitOptions) error {
	var b strings.Builder

	if p.NeedsDefaultEnv {
		b.WriteString(opts.envCommand())
		b.WriteByte('\n')
		fmt.Fprintf(&b, "echo %s\n", quote(WarnDefaultEnvLine1))
		fmt.Fprintf(&b, "echo %s\n", quote(WarnDefaultEnvLine2))
	}

	for _, spec := range p.Packages {
		fmt.Fprintf(&b, "%s %s\n", opts.packageCommand(), quote(spec.PathIn(p.Channel)))
	}

	for _, export := range p.Exports {
		writeExport(&b, dialect, export)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteExports renders only the plan's export statements, used when
// the setup calls already ran out of band
func (p Plan) WriteExports(w io.Writer, dialect Dialect) error {
	var b strings.Builder
	for _, export := range p.Exports {
		writeExport(&b, dialect, export)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeExport(b *strings.Builder, dialect Dialect, export Export) {
	switch dialect {
	case DialectFish:
		if export.Name == EnvPath {
			// fish treats PATH as a list; pass the entries as
			// separate arguments
			b.WriteString("set -gx PATH")
			for _, entry := range strings.Split(export.Value, PathListSeparator) {
				b.WriteByte(' ')
				b.WriteString(quote(entry))
			}
			b.WriteByte('\n')
		} else {
			fmt.Fprintf(b, "set -gx %s %s\n", export.Name, quote(export.Value))
		}
	default:
		fmt.Fprintf(b, "export %s=%s\n", export.Name, quote(export.Value))
	}
}

// ProfileSnippet returns the one-liner users add to their shell
// profile to source trtpy's environment in every session
func ProfileSnippet(dialect Dialect) string {
	if dialect == DialectFish {
		return `type -q trtpy; and trtpy env --shell fish | source`
	}
	return `command -v trtpy >/dev/null 2>&1 && eval "$(trtpy env)"`
}

// quote single-quotes a value for sh and fish, escaping embedded
// single quotes
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
