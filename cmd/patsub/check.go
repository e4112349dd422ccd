package patsub

import (
	"github.com/arthur-debert/patsub/pkg/output"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "check [table]",
		Short:   MsgCheckShort,
		Example: MsgCheckExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.tableSource(args)
			if err != nil {
				return err
			}

			table, err := loadTable(cmd, path)
			if err != nil {
				return err
			}

			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return r.RenderSummary(output.Summary{Source: path, Rules: len(table)})
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list [table]",
		Short:   MsgListShort,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.tableSource(args)
			if err != nil {
				return err
			}

			table, err := loadTable(cmd, path)
			if err != nil {
				return err
			}

			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return r.RenderRules(output.Views(table))
		},
	}
}
