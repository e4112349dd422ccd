// Package patterns reads pattern tables and applies their substitution rules.
//
// A pattern table is tab separated text. The first line is a header and is
// never validated; every following non-empty line holds one rule:
//
//	Pattern<TAB>Replacement[<TAB>Flags]
//
// Patterns are literal text. They are escaped before compilation so that
// characters such as `.` or `(` only ever match themselves. Replacements may
// use the `$&`, `$$`, "$`" and `$'` markers. Flags are modifier letters:
// `g` replaces every match instead of the first one, `i` ignores case, and
// `m`, `s`, `u`, `d`, `y` are accepted as well (see Flags).
//
// Parsing stops at the first bad row. The returned *RowError carries the
// 1-based line number, the raw line and the underlying cause:
//
//	table, err := patterns.ParseString(text)
//	var rowErr *patterns.RowError
//	if errors.As(err, &rowErr) {
//		fmt.Println(rowErr.Line, rowErr.Raw)
//	}
//
// Each Rule is applied on its own with Rule.Apply. A Table is only an
// ordered list; it has no combined apply.
package patterns
