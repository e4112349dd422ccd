package patterns

// metaChars lists every byte the matching engine treats specially.
const metaChars = `/-\^$*+?.()|[]{}`

var isMeta [256]bool

func init() {
	for i := 0; i < len(metaChars); i++ {
		isMeta[metaChars[i]] = true
	}
}

// Escape returns literal with a backslash inserted before every
// metacharacter, so that the result compiles to a pattern matching exactly
// literal. The empty string is returned unchanged.
//
// Escape is a one-shot transform: escaping an already escaped string
// escapes the backslashes again.
func Escape(literal string) string {
	if literal == "" {
		return literal
	}

	n := 0
	for i := 0; i < len(literal); i++ {
		if isMeta[literal[i]] {
			n++
		}
	}
	if n == 0 {
		return literal
	}

	// Metacharacters are all ASCII, so working on bytes leaves multi-byte
	// sequences intact.
	buf := make([]byte, 0, len(literal)+n)
	for i := 0; i < len(literal); i++ {
		c := literal[i]
		if isMeta[c] {
			buf = append(buf, '\\')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
