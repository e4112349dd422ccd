package patterns

import (
	"strings"

	"github.com/arthur-debert/patsub/pkg/errors"
)

// Flags holds the modifier letters of a rule.
type Flags struct {
	Indices     bool // d: accepted, has no effect on substitution
	Global      bool // g: replace every non-overlapping match
	IgnoreCase  bool // i
	Multiline   bool // m: ^ and $ match at line boundaries
	DotAll      bool // s: . matches \n
	Unicode     bool // u: accepted, matching is always UTF-8 aware
	UnicodeSets bool // v: accepted like u; cannot be combined with it
	Sticky      bool // y: matches must start where the previous one ended
}

// flagOrder is the canonical letter order used by Flags.String.
const flagOrder = "dgimsuvy"

// ParseFlags parses a string of modifier letters. The empty string yields
// the zero Flags. Unknown or repeated letters, and u together with v, are
// rejected with ErrCompile.
func ParseFlags(s string) (Flags, error) {
	var f Flags
	for _, c := range s {
		var slot *bool
		switch c {
		case 'd':
			slot = &f.Indices
		case 'g':
			slot = &f.Global
		case 'i':
			slot = &f.IgnoreCase
		case 'm':
			slot = &f.Multiline
		case 's':
			slot = &f.DotAll
		case 'u':
			slot = &f.Unicode
		case 'v':
			slot = &f.UnicodeSets
		case 'y':
			slot = &f.Sticky
		default:
			return Flags{}, errors.Newf(errors.ErrCompile, "invalid flags supplied to pattern: %q", s).
				WithDetail("flag", string(c))
		}
		if *slot {
			return Flags{}, errors.Newf(errors.ErrCompile, "invalid flags supplied to pattern: %q", s).
				WithDetail("flag", string(c)).
				WithDetail("reason", "duplicate")
		}
		*slot = true
	}
	if f.Unicode && f.UnicodeSets {
		return Flags{}, errors.Newf(errors.ErrCompile, "invalid flags supplied to pattern: %q", s).
			WithDetail("reason", "u and v are exclusive")
	}
	return f, nil
}

// String returns the set letters in canonical order.
func (f Flags) String() string {
	set := [...]bool{f.Indices, f.Global, f.IgnoreCase, f.Multiline, f.DotAll, f.Unicode, f.UnicodeSets, f.Sticky}
	var b strings.Builder
	for i, on := range set {
		if on {
			b.WriteByte(flagOrder[i])
		}
	}
	return b.String()
}

// IsZero reports whether no flag is set.
func (f Flags) IsZero() bool {
	return f == Flags{}
}

// inlinePrefix returns the inline modifier group the matching engine
// understands for these flags, or "" when none applies.
func (f Flags) inlinePrefix() string {
	var b strings.Builder
	if f.IgnoreCase {
		b.WriteByte('i')
	}
	if f.Multiline {
		b.WriteByte('m')
	}
	if f.DotAll {
		b.WriteByte('s')
	}
	if b.Len() == 0 {
		return ""
	}
	return "(?" + b.String() + ")"
}
