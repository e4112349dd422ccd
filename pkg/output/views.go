package output

import (
	stderrors "errors"

	"github.com/arthur-debert/patsub/pkg/errors"
	"github.com/arthur-debert/patsub/pkg/patterns"
)

// RuleView is the rendered form of one rule.
type RuleView struct {
	Index       int    `json:"index" yaml:"index" toml:"index"`
	Pattern     string `json:"pattern" yaml:"pattern" toml:"pattern"`
	Escaped     string `json:"escaped" yaml:"escaped" toml:"escaped"`
	Replacement string `json:"replacement" yaml:"replacement" toml:"replacement"`
	Flags       string `json:"flags,omitempty" yaml:"flags,omitempty" toml:"flags,omitempty"`
}

// Views converts a table to views, numbering rules from 1.
func Views(table patterns.Table) []RuleView {
	views := make([]RuleView, 0, len(table))
	for i, rule := range table {
		views = append(views, RuleView{
			Index:       i + 1,
			Pattern:     rule.Literal(),
			Escaped:     patterns.Escape(rule.Literal()),
			Replacement: rule.ReplacementTemplate(),
			Flags:       rule.Flags().String(),
		})
	}
	return views
}

// ErrorView is the rendered form of an error.
type ErrorView struct {
	Code    string `json:"code" yaml:"code" toml:"code"`
	Message string `json:"message" yaml:"message" toml:"message"`
	Cause   string `json:"cause,omitempty" yaml:"cause,omitempty" toml:"cause,omitempty"`
	Line    int    `json:"line,omitempty" yaml:"line,omitempty" toml:"line,omitempty"`
	Raw     string `json:"raw,omitempty" yaml:"raw,omitempty" toml:"raw,omitempty"`
}

// NewErrorView extracts code, message and row context from err.
func NewErrorView(err error) ErrorView {
	view := ErrorView{
		Code:    string(errors.GetErrorCode(err)),
		Message: err.Error(),
	}

	var rowErr *patterns.RowError
	if stderrors.As(err, &rowErr) {
		view.Message = "pattern table format error"
		view.Line = rowErr.Line
		view.Raw = rowErr.Raw
		if rowErr.Cause != nil {
			view.Cause = rowErr.Cause.Error()
		}
	}
	return view
}

// Summary is the result of checking one table.
type Summary struct {
	Source string `json:"source" yaml:"source" toml:"source"`
	Rules  int    `json:"rules" yaml:"rules" toml:"rules"`
}
