package patterns

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/patsub/pkg/errors"
)

// Rule is one validated pattern/replacement/flags triple with its compiled
// matcher. A Rule is immutable and safe for concurrent use.
type Rule struct {
	literal     string
	replacement string
	flags       Flags
	re          *regexp.Regexp
}

// NewRule escapes pattern, compiles it under flags and pairs it with the
// replacement template. flags may be empty. Invalid flags and patterns that
// do not compile fail with ErrCompile.
func NewRule(pattern, replacement, flags string) (*Rule, error) {
	f, err := ParseFlags(flags)
	if err != nil {
		return nil, err
	}

	re, err := regexp.Compile(f.inlinePrefix() + Escape(pattern))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCompile, "invalid pattern %q", pattern).
			WithDetail("flags", flags)
	}

	return &Rule{
		literal:     pattern,
		replacement: replacement,
		flags:       f,
		re:          re,
	}, nil
}

// MustRule is like NewRule but panics on error. Intended for rules built
// from constants.
func MustRule(pattern, replacement, flags string) *Rule {
	r, err := NewRule(pattern, replacement, flags)
	if err != nil {
		panic(err)
	}
	return r
}

// Pattern returns the compiled matcher.
func (r *Rule) Pattern() *regexp.Regexp {
	return r.re
}

// ReplacementTemplate returns the raw replacement text.
func (r *Rule) ReplacementTemplate() string {
	return r.replacement
}

// Literal returns the pattern as written in the table, before escaping.
func (r *Rule) Literal() string {
	return r.literal
}

// Flags returns the parsed modifier flags.
func (r *Rule) Flags() Flags {
	return r.flags
}

// Apply performs one substitution pass over input. Without the global flag
// only the first match is replaced. Apply has no side effects.
func (r *Rule) Apply(input string) string {
	var locs [][]int
	if r.flags.Global {
		locs = r.re.FindAllStringSubmatchIndex(input, -1)
	} else if loc := r.re.FindStringSubmatchIndex(input); loc != nil {
		locs = [][]int{loc}
	}
	if r.flags.Sticky {
		locs = contiguous(input, locs)
	}
	if len(locs) == 0 {
		return input
	}

	names := r.re.SubexpNames()
	var b strings.Builder
	b.Grow(len(input))
	last := 0
	for _, loc := range locs {
		b.WriteString(input[last:loc[0]])
		expand(&b, r.replacement, input, loc, names)
		last = loc[1]
	}
	b.WriteString(input[last:])
	return b.String()
}

// String renders the rule in table form.
func (r *Rule) String() string {
	if r.flags.IsZero() {
		return r.literal + "\t" + r.replacement
	}
	return r.literal + "\t" + r.replacement + "\t" + r.flags.String()
}

// contiguous keeps the leading run of matches that start at offset 0 and
// each begin where the previous one ended. After an empty match the next
// one may begin one character later.
func contiguous(input string, locs [][]int) [][]int {
	want := 0
	for i, loc := range locs {
		if loc[0] != want {
			return locs[:i]
		}
		want = loc[1]
		if loc[0] == loc[1] && want < len(input) {
			_, size := utf8.DecodeRuneInString(input[want:])
			want += size
		}
	}
	return locs
}
