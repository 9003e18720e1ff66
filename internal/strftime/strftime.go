// Package strftime translates strftime-style format directives into Go
// time layouts, so datetime fields can be parameterized with the same
// format strings the wire contract was written against.
package strftime

import (
	"fmt"
	"strings"
)

// directives maps a strftime directive character to its Go layout element.
var directives = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'd': "02",
	'H': "15",
	'I': "03",
	'M': "04",
	'S': "05",
	'f': "000000", // microseconds; Go renders them as fractional digits
	'p': "PM",
	'a': "Mon",
	'A': "Monday",
	'b': "Jan",
	'B': "January",
	'z': "-0700",
	'Z': "MST",
	'j': "002",
	'e': "_2",
	'%': "%",
}

// Layout converts a strftime format string to a Go time layout. Unknown
// directives are configuration errors and reported as such.
func Layout(format string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(format) {
			return "", fmt.Errorf("strftime: trailing %% in format %q", format)
		}
		elem, ok := directives[format[i]]
		if !ok {
			return "", fmt.Errorf("strftime: unsupported directive %%%c in format %q", format[i], format)
		}
		if format[i] == 'f' {
			// fractional seconds attach to the preceding dot in Go layouts
			b.WriteString(".000000")
			continue
		}
		b.WriteString(elem)
	}
	return stripFractionDot(b.String()), nil
}

// stripFractionDot undoes the doubled dot when the format already spelled
// one out, e.g. "%H:%M:%S.%f".
func stripFractionDot(layout string) string {
	return strings.ReplaceAll(layout, "..000000", ".000000")
}

// MustLayout is like Layout but panics; for use at schema-definition time
// where a bad format is a misdeclared schema.
func MustLayout(format string) string {
	l, err := Layout(format)
	if err != nil {
		panic(err)
	}
	return l
}
