package main

import (
	"github.com/spf13/cobra"

	"github.com/ddavis/trtpy/pkg/bootstrap"
	"github.com/ddavis/trtpy/pkg/lcg"
	"github.com/ddavis/trtpy/pkg/logging"
	"github.com/ddavis/trtpy/pkg/paths"
)

func newEnvCmd(configFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: MsgEnvShort,
		Long:  MsgEnvLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.env")

			cfg, err := loadConfig(*configFile)
			if err != nil {
				return err
			}

			shell, _ := cmd.Flags().GetString("shell")
			if shell == "" {
				shell = cfg.Shell
			}
			dialect, err := bootstrap.ParseDialect(shell)
			if err != nil {
				return err
			}

			root, _ := cmd.Flags().GetString("root")
			if root == "" {
				root, err = paths.InstallRoot()
				if err != nil {
					return err
				}
			}

			specs, channel, err := cfg.ResolvePackages()
			if err != nil {
				return err
			}

			snap := bootstrap.CaptureSnapshot(root)
			plan := bootstrap.NewPlan(snap, bootstrap.Options{
				Channel:  channel,
				Packages: specs,
			})

			logger.Debug().
				Str("root", root).
				Str("shell", string(dialect)).
				Bool("needsDefaultEnv", plan.NeedsDefaultEnv).
				Int("packages", len(plan.Packages)).
				Msg("Emitting bootstrap script")

			return plan.WriteScript(cmd.OutOrStdout(), dialect, bootstrap.EmitOptions{
				EnvCommand:     cfg.Setup.EnvCommand,
				PackageCommand: cfg.Setup.PackageCommand,
			})
		},
	}

	cmd.Flags().StringP("shell", "s", "", MsgFlagShell)
	cmd.Flags().String("root", "", MsgFlagRoot)

	return cmd
}

func newSnippetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snippet",
		Short: MsgSnippetShort,
		Long:  MsgSnippetLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell, _ := cmd.Flags().GetString("shell")
			dialect, err := bootstrap.ParseDialect(shell)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write([]byte(bootstrap.ProfileSnippet(dialect) + "\n"))
			return err
		},
	}

	cmd.Flags().StringP("shell", "s", "sh", MsgFlagShell)

	return cmd
}

// resolvePackagesFromConfig is shared by setup and packages commands
func resolvePackagesFromConfig(configFile string) ([]lcg.Spec, lcg.Channel, *setupCommands, error) {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return nil, "", nil, err
	}
	specs, channel, err := cfg.ResolvePackages()
	if err != nil {
		return nil, "", nil, err
	}
	return specs, channel, &setupCommands{
		env:     cfg.Setup.EnvCommand,
		pkg:     cfg.Setup.PackageCommand,
		dialect: cfg.Shell,
	}, nil
}

type setupCommands struct {
	env     string
	pkg     string
	dialect string
}
