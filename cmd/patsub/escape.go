package patsub

import (
	"fmt"

	"github.com/arthur-debert/patsub/pkg/config"
	"github.com/arthur-debert/patsub/pkg/patterns"
	"github.com/spf13/cobra"
)

func newEscapeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "escape <literal>...",
		Short:   MsgEscapeShort,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, literal := range args {
				fmt.Fprintln(cmd.OutOrStdout(), patterns.Escape(literal))
			}
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				fmt.Fprint(cmd.OutOrStdout(), config.DefaultsContent())
				return nil
			}
			text, err := a.cfg.TOML()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}
