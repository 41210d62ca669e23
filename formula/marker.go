package formula

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// Marker returns a line which places a caret under byte position pos of
// source, for printing below source on a terminal. East Asian wide and
// fullwidth characters occupy two columns.
func Marker(source string, pos int) string {
	if pos < 0 {
		return ""
	}
	if pos > len(source) {
		pos = len(source)
	}
	var b strings.Builder
	for _, r := range source[:pos] {
		switch {
		case r == '\t':
			b.WriteByte('\t')
		case r == utf8.RuneError:
			b.WriteByte(' ')
		default:
			switch width.LookupRune(r).Kind() {
			case width.EastAsianWide, width.EastAsianFullwidth:
				b.WriteString("  ")
			default:
				b.WriteByte(' ')
			}
		}
	}
	b.WriteByte('^')
	return b.String()
}
