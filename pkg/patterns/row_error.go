package patterns

import (
	stderrors "errors"
	"fmt"

	"github.com/arthur-debert/patsub/pkg/errors"
)

// RowError reports the first table row that could not be turned into a
// rule. Cause is the underlying ErrFormat or ErrCompile error.
type RowError struct {
	Line  int    // 1-based line number in the table text
	Raw   string // the line as written, without its line terminator
	Cause error
}

// Error contains the cause message, the line number and the raw line.
func (e *RowError) Error() string {
	return fmt.Sprintf("[%s] pattern table format error: %s\n\n line %d:\n%s",
		errors.ErrTableFormat, causeMessage(e.Cause), e.Line, e.Raw)
}

// Unwrap returns the underlying cause.
func (e *RowError) Unwrap() error {
	return e.Cause
}

// ErrorCode implements errors.Coder.
func (e *RowError) ErrorCode() errors.ErrorCode {
	return errors.ErrTableFormat
}

// Is matches any *errors.PatsubError carrying ErrTableFormat.
func (e *RowError) Is(target error) bool {
	var patsubErr *errors.PatsubError
	if stderrors.As(target, &patsubErr) {
		return patsubErr.Code == errors.ErrTableFormat
	}
	return false
}

// causeMessage prefers the bare message of a coded cause over its
// bracketed Error form.
func causeMessage(err error) string {
	var patsubErr *errors.PatsubError
	if stderrors.As(err, &patsubErr) {
		if patsubErr.Wrapped != nil {
			return fmt.Sprintf("%s: %v", patsubErr.Message, patsubErr.Wrapped)
		}
		return patsubErr.Message
	}
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
