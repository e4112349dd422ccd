package patterns

import (
	"io"
	"strings"

	"github.com/arthur-debert/patsub/pkg/errors"
	"github.com/arthur-debert/patsub/pkg/logging"
)

// Column positions of a pattern table row.
const (
	ColumnPattern     = 0
	ColumnReplacement = 1
	ColumnFlags       = 2

	// RequiredColumns is the minimum number of fields in a data row.
	RequiredColumns = 2
)

// MsgRowRequires is the cause message for rows with too few fields.
const MsgRowRequires = "pattern line requires: Pattern  Replacement (Flags)"

// Table is the ordered list of rules parsed from one pattern table.
type Table []*Rule

// Row is one data line split into its named fields.
type Row struct {
	Pattern     string
	Replacement string
	Flags       string
}

// SplitRow splits line on tabs into a Row. Fields past the flags column
// are ignored. Lines with fewer than RequiredColumns fields fail with
// ErrFormat.
func SplitRow(line string) (Row, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < RequiredColumns {
		return Row{}, errors.New(errors.ErrFormat, MsgRowRequires).
			WithDetail("fields", len(fields))
	}

	row := Row{
		Pattern:     fields[ColumnPattern],
		Replacement: fields[ColumnReplacement],
	}
	if len(fields) > ColumnFlags {
		row.Flags = fields[ColumnFlags]
	}
	return row, nil
}

// Rule builds the rule described by the row.
func (row Row) Rule() (*Rule, error) {
	return NewRule(row.Pattern, row.Replacement, row.Flags)
}

// Parse reads a whole pattern table from r. A nil reader fails with
// ErrMissingInput before anything is read. The first bad row aborts the
// parse with a *RowError; no partial table is returned.
func Parse(r io.Reader) (Table, error) {
	if r == nil {
		return nil, errors.New(errors.ErrMissingInput, "no pattern text")
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRead, "failed to read pattern table")
	}
	return ParseString(string(data))
}

// ParseString parses a pattern table held in memory. See Parse.
func ParseString(text string) (Table, error) {
	logger := logging.GetLogger("patterns.parse")

	lines := strings.Split(text, "\n")
	table := make(Table, 0, len(lines))

	// Line 0 is the header.
	for i := 1; i < len(lines); i++ {
		line := strings.TrimSuffix(lines[i], "\r")
		if line == "" {
			continue
		}

		rule, err := parseLine(line)
		if err != nil {
			logger.Debug().
				Int("line", i+1).
				Err(err).
				Msg("Rejected pattern table row")
			return nil, &RowError{Line: i + 1, Raw: line, Cause: err}
		}
		table = append(table, rule)
	}

	logger.Debug().
		Int("lines", len(lines)).
		Int("rules", len(table)).
		Msg("Parsed pattern table")

	return table, nil
}

func parseLine(line string) (*Rule, error) {
	row, err := SplitRow(line)
	if err != nil {
		return nil, err
	}
	return row.Rule()
}

// Rule returns the n-th rule, counting from 1.
func (t Table) Rule(n int) (*Rule, error) {
	if n < 1 || n > len(t) {
		return nil, errors.Newf(errors.ErrNotFound, "no rule %d in table of %d rules", n, len(t)).
			WithDetail("index", n)
	}
	return t[n-1], nil
}
