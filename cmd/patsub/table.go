package patsub

import (
	"io"
	"os"

	"github.com/arthur-debert/patsub/pkg/errors"
	"github.com/arthur-debert/patsub/pkg/logging"
	"github.com/arthur-debert/patsub/pkg/patterns"
	"github.com/spf13/cobra"
)

// stdinPath selects stdin as the table source.
const stdinPath = "-"

// tableSource picks the table path from, in order, a positional argument,
// the --table flag and the table.path config key.
func (a *app) tableSource(args []string) (string, error) {
	switch {
	case len(args) > 0 && args[0] != "":
		return args[0], nil
	case a.tablePath != "":
		return a.tablePath, nil
	case a.cfg != nil && a.cfg.Table.Path != "":
		return a.cfg.Table.Path, nil
	default:
		return "", errors.New(errors.ErrInvalidInput, MsgErrNoTable)
	}
}

// loadTable opens and parses the pattern table at path.
func loadTable(cmd *cobra.Command, path string) (patterns.Table, error) {
	logger := logging.GetLogger("cmd.table")
	done := logging.LogOperationStart(logger, "load-table")
	defer done()

	var r io.Reader
	if path == stdinPath {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			code := errors.ErrFileAccess
			if os.IsNotExist(err) {
				code = errors.ErrFileNotFound
			}
			return nil, errors.Wrapf(err, code, "cannot open pattern table %s", path).
				WithDetail("path", path)
		}
		defer f.Close()
		r = f
	}

	table, err := patterns.Parse(r)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("path", path).
		Int("rules", len(table)).
		Msg("Loaded pattern table")
	return table, nil
}
