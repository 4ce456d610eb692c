package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/ddavis/trtpy/pkg/ui"
)

func newPackagesCmd(configFile, formatStr *string) *cobra.Command {
	return &cobra.Command{
		Use:   "packages",
		Short: MsgPackagesShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveFormat(*formatStr)
			if err != nil {
				return err
			}

			specs, channel, _, err := resolvePackagesFromConfig(*configFile)
			if err != nil {
				return err
			}

			if format == ui.FormatTerminal {
				rows := pterm.TableData{{"Package", "Version", "Path"}}
				for _, spec := range specs {
					rows = append(rows, []string{spec.Name, spec.Version, spec.PathIn(channel)})
				}
				return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
			}

			out := cmd.OutOrStdout()
			for _, spec := range specs {
				fmt.Fprintf(out, "%s\n", spec.PathIn(channel))
			}
			return nil
		},
	}
}
