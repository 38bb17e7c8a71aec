package loader

import (
	"strings"
	"unicode"
)

// splitLine splits one line of delimited text into cleaned fields
//
// A double quote toggles quoted mode; the delimiter only separates fields
// outside quoted mode. Quotes inside a quoted field are not escaped.
func splitLine(line string, delim rune) []string {
	var fields []string
	var b strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			b.WriteRune(r)
		case r == delim && !inQuotes:
			fields = append(fields, cleanField(b.String()))
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	return append(fields, cleanField(b.String()))
}

// cleanField trims surrounding whitespace, strips one leading and one
// trailing quote, then trims again so `" Bolt "` becomes `Bolt`
// Trimming first also unwraps a quoted field with outer padding: `  "a"`
// becomes `a`, where stripping quotes before any trim would leave `"a`
func cleanField(field string) string {
	field = strings.TrimFunc(field, unicode.IsSpace)
	field = strings.TrimPrefix(field, `"`)
	field = strings.TrimSuffix(field, `"`)
	return strings.TrimFunc(field, unicode.IsSpace)
}
