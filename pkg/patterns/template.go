package patterns

import (
	"strings"
)

// expand appends the replacement template for one match to b.
//
// loc is a submatch index slice as returned by FindStringSubmatchIndex and
// names the result of SubexpNames. Markers:
//
//	$$       a literal $
//	$&       the whole match
//	$`       the text before the match
//	$'       the text after the match
//	$n $nn   capture group n, when the pattern has it
//	$<name>  named capture group, when the pattern has named groups
//
// Anything else, including markers referring to groups that do not exist,
// is copied literally.
func expand(b *strings.Builder, template, input string, loc []int, names []string) {
	groups := len(loc)/2 - 1

	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '$' || i+1 == len(template) {
			b.WriteByte(c)
			continue
		}

		next := template[i+1]
		switch {
		case next == '$':
			b.WriteByte('$')
			i++
		case next == '&':
			b.WriteString(input[loc[0]:loc[1]])
			i++
		case next == '`':
			b.WriteString(input[:loc[0]])
			i++
		case next == '\'':
			b.WriteString(input[loc[1]:])
			i++
		case isDigit(next):
			n, width := groupRef(template[i+1:], groups)
			if width == 0 {
				b.WriteByte(c)
				continue
			}
			writeGroup(b, input, loc, n)
			i += width
		case next == '<' && hasNamedGroups(names):
			end := strings.IndexByte(template[i+2:], '>')
			if end < 0 {
				b.WriteByte(c)
				continue
			}
			name := template[i+2 : i+2+end]
			for n, groupName := range names {
				if n > 0 && groupName == name {
					writeGroup(b, input, loc, n)
					break
				}
			}
			i += 2 + end
		default:
			b.WriteByte(c)
		}
	}
}

// groupRef resolves a $n or $nn reference at the start of s. Two digits
// win when they name an existing group; otherwise one digit is tried.
// width is 0 when neither names a group.
func groupRef(s string, groups int) (n, width int) {
	if len(s) >= 2 && isDigit(s[1]) {
		nn := int(s[0]-'0')*10 + int(s[1]-'0')
		if nn >= 1 && nn <= groups {
			return nn, 2
		}
	}
	d := int(s[0] - '0')
	if d >= 1 && d <= groups {
		return d, 1
	}
	return 0, 0
}

func writeGroup(b *strings.Builder, input string, loc []int, n int) {
	start, end := loc[2*n], loc[2*n+1]
	if start >= 0 {
		b.WriteString(input[start:end])
	}
}

func hasNamedGroups(names []string) bool {
	for _, name := range names {
		if name != "" {
			return true
		}
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
