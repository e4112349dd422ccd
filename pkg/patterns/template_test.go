package patterns

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	re := regexp.MustCompile(`(?P<first>\w+) (\w+)`)
	input := "<hello world>"
	loc := re.FindStringSubmatchIndex(input)
	names := re.SubexpNames()

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"plain", "text", "text"},
		{"whole_match", "$&", "hello world"},
		{"groups", "$2 $1", "world hello"},
		{"two_digit_falls_back_to_one", "$10", "hello0"},
		{"zero_literal", "$0", "$0"},
		{"out_of_range_literal", "$3", "$3"},
		{"named_group", "$<first>!", "hello!"},
		{"unknown_named_group_is_empty", "[$<nope>]", "[]"},
		{"unterminated_name_literal", "$<first", "$<first"},
		{"dollar", "$$1", "$1"},
		{"before_after", "$`|$'", "<|>"},
		{"lone_dollar_at_end", "a$", "a$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			expand(&b, tt.template, input, loc, names)
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestExpand_NamedMarkerLiteralWithoutNamedGroups(t *testing.T) {
	re := regexp.MustCompile(`(a)`)
	input := "a"
	loc := re.FindStringSubmatchIndex(input)

	var b strings.Builder
	expand(&b, "$<x>", input, loc, re.SubexpNames())
	assert.Equal(t, "$<x>", b.String())
}

func TestExpand_UnmatchedGroupIsEmpty(t *testing.T) {
	re := regexp.MustCompile(`a(b)?`)
	input := "a"
	loc := re.FindStringSubmatchIndex(input)

	var b strings.Builder
	expand(&b, "[$1]", input, loc, re.SubexpNames())
	assert.Equal(t, "[]", b.String())
}
