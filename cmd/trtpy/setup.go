package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/ddavis/trtpy/pkg/bootstrap"
	"github.com/ddavis/trtpy/pkg/lcg"
	"github.com/ddavis/trtpy/pkg/logging"
	"github.com/ddavis/trtpy/pkg/paths"
	"github.com/ddavis/trtpy/pkg/ui"
)

func newSetupCmd(configFile, formatStr *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: MsgSetupShort,
		Long:  MsgSetupLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.setup")
			out := cmd.OutOrStdout()

			format, err := resolveFormat(*formatStr)
			if err != nil {
				return err
			}
			styled := format == ui.FormatTerminal

			specs, channel, commands, err := resolvePackagesFromConfig(*configFile)
			if err != nil {
				return err
			}

			dryRun, _ := cmd.Flags().GetBool("dry-run")
			root, _ := cmd.Flags().GetString("root")
			if root == "" {
				root, err = paths.InstallRoot()
				if err != nil {
					return err
				}
			}

			plan := bootstrap.NewPlan(bootstrap.CaptureSnapshot(root), bootstrap.Options{
				Channel:  channel,
				Packages: specs,
			})

			setup := &lcg.ExecSetup{
				EnvCommand:     commands.env,
				PackageCommand: commands.pkg,
				Channel:        plan.Channel,
				DryRun:         dryRun,
			}

			ctx := cmd.Context()
			succeeded, failed := 0, 0

			if plan.NeedsDefaultEnv {
				if err := setup.Default(ctx); err != nil {
					// Failures are reported and skipped; the remaining
					// calls still run
					logger.Warn().Err(err).Msg("Default environment setup failed")
					failed++
				} else {
					succeeded++
				}
				fmt.Fprintln(out, bootstrap.WarnDefaultEnvLine1)
				fmt.Fprintln(out, bootstrap.WarnDefaultEnvLine2)
			} else {
				fmt.Fprint(out, MsgSetupSkippedBase)
			}

			for _, spec := range plan.Packages {
				path := spec.PathIn(plan.Channel)
				if err := setup.Package(ctx, spec); err != nil {
					logger.Warn().Err(err).Str("spec", path).Msg("Package setup failed")
					if styled {
						pterm.Warning.Printfln("failed: %s", path)
					} else {
						fmt.Fprintf(out, "failed: %s\n", path)
					}
					failed++
					continue
				}
				if styled {
					pterm.Success.Printfln("ready: %s", path)
				} else {
					fmt.Fprintf(out, "ready: %s\n", path)
				}
				succeeded++
			}

			fmt.Fprintf(out, MsgSetupDone, succeeded, failed)

			// Print the exports so a caller can capture them
			dialect, err := bootstrap.ParseDialect(commands.dialect)
			if err != nil {
				return err
			}
			return plan.WriteExports(out, dialect)
		},
	}

	cmd.Flags().Bool("dry-run", false, MsgFlagDryRun)
	cmd.Flags().String("root", "", MsgFlagRoot)

	return cmd
}
