package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ddavis/trtpy/cmd/trtpy/internal/topics"
	"github.com/ddavis/trtpy/pkg/errors"
	"github.com/ddavis/trtpy/pkg/paths"
	"github.com/ddavis/trtpy/pkg/ui"
)

func newTopicsCmd(formatStr *string) *cobra.Command {
	return &cobra.Command{
		Use:   "topics [name]",
		Short: MsgTopicsShort,
		Long:  MsgTopicsLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := paths.InstallRoot()
			if err != nil {
				return err
			}

			format, err := resolveFormat(*formatStr)
			if err != nil {
				return err
			}
			var renderer topics.Renderer = &topics.PlainRenderer{}
			if format == ui.FormatTerminal {
				renderer = topics.NewGlamourRenderer()
			}

			manager := topics.New(paths.DocsDir(root), topics.Options{Renderer: renderer})
			if err := manager.Scan(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if len(args) == 0 {
				names := manager.Names()
				if len(names) == 0 {
					fmt.Fprintln(out, MsgNoTopics)
					return nil
				}
				fmt.Fprintln(out, MsgAvailableTopics)
				for _, name := range names {
					fmt.Fprintf(out, MsgTopicItem, name)
				}
				return nil
			}

			topic, ok := manager.Get(args[0])
			if !ok {
				return errors.Newf(errors.ErrNotFound, "no topic named %q", args[0])
			}
			fmt.Fprint(out, manager.Render(topic))
			return nil
		},
	}
}
