package token

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Escape produces valid JSON string-body text for v. The two-character
// short forms cover quote, backslash, backspace, form feed, newline,
// carriage return, tab and forward slash; other control characters, the
// 0x7F-0x9F range and the 0x2000-0x20FF block become \uXXXX.
func Escape(v string) string {
	b := &strings.Builder{}
	for _, r := range v {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '/':
			b.WriteString(`\/`)
		default:
			if r <= 0x1f || (r >= 0x7f && r <= 0x9f) || (r >= 0x2000 && r <= 0x20ff) {
				fmt.Fprintf(b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// Unescape is the inverse of Escape, turning JSON string-body text back
// into its literal value.
func Unescape(v string) (string, error) {
	if !strings.ContainsRune(v, '\\') {
		return v, nil
	}
	b := &strings.Builder{}
	for i := 0; i < len(v); {
		c := v[i]
		if c != '\\' {
			r, sz := utf8.DecodeRuneInString(v[i:])
			b.WriteRune(r)
			i += sz
			continue
		}
		i++
		if i >= len(v) {
			return "", fmt.Errorf("%w: dangling backslash", ErrBadEscape)
		}
		switch v[i] {
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case '/':
			b.WriteByte('/')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			if i+5 > len(v) {
				return "", fmt.Errorf("%w: truncated \\u", ErrBadUnicode)
			}
			u, err := strconv.ParseUint(v[i+1:i+5], 16, 32)
			if err != nil {
				return "", fmt.Errorf("%w: %q", ErrBadUnicode, v[i+1:i+5])
			}
			b.WriteRune(rune(u))
			i += 4
		default:
			return "", fmt.Errorf("%w: \\%c", ErrBadEscape, v[i])
		}
		i++
	}
	return b.String(), nil
}

// IsEscaped reports whether the character at pos is preceded by an odd
// number of backslashes.
func IsEscaped(pos int, d []byte) bool {
	if pos <= 0 || pos >= len(d) {
		return false
	}
	n := 0
	for i := pos - 1; i >= 0 && d[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}
