package patsub

import (
	"bufio"
	"fmt"

	"github.com/arthur-debert/patsub/pkg/errors"
	"github.com/arthur-debert/patsub/pkg/patterns"
	"github.com/spf13/cobra"
)

func newApplyCmd(a *app) *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:     "apply --rule N [text...]",
		Short:   MsgApplyShort,
		Long:    MsgApplyLong,
		Example: MsgApplyExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.tableSource(nil)
			if err != nil {
				return err
			}
			if path == stdinPath && len(args) == 0 {
				return errors.New(errors.ErrInvalidInput, MsgErrStdinConflict)
			}

			table, err := loadTable(cmd, path)
			if err != nil {
				return err
			}
			rule, err := table.Rule(index)
			if err != nil {
				return err
			}

			if len(args) > 0 {
				return applyArgs(cmd, rule, args)
			}
			return applyLines(cmd, rule)
		},
	}

	cmd.Flags().IntVarP(&index, "rule", "r", 1, MsgFlagRule)
	return cmd
}

func applyArgs(cmd *cobra.Command, rule *patterns.Rule, texts []string) error {
	out := cmd.OutOrStdout()
	for _, text := range texts {
		if _, err := fmt.Fprintln(out, rule.Apply(text)); err != nil {
			return errors.Wrap(err, errors.ErrOutput, "failed to write result")
		}
	}
	return nil
}

func applyLines(cmd *cobra.Command, rule *patterns.Rule) error {
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		if _, err := fmt.Fprintln(out, rule.Apply(scanner.Text())); err != nil {
			return errors.Wrap(err, errors.ErrOutput, "failed to write result")
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, errors.ErrRead, "failed to read input")
	}
	return nil
}
