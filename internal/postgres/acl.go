package postgres

import (
	"strings"
)

// SplitACL splits a Postgres array literal of aclitems into its elements.
//
// Handles the double-quoted form Postgres emits for items holding special
// characters, including backslash escapes inside quotes. Surrounding braces
// are optional. Returns nil for empty input or an empty array.
func SplitACL(literal string) (items []string) {
	literal = strings.TrimSpace(literal)
	literal = strings.TrimPrefix(literal, "{")
	literal = strings.TrimSuffix(literal, "}")
	if literal == "" {
		return
	}

	b := strings.Builder{}
	inQuotes := false
	escaped := false
	for _, c := range literal {
		switch {
		case escaped:
			b.WriteRune(c)
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			items = append(items, b.String())
			b.Reset()
		default:
			b.WriteRune(c)
		}
	}
	items = append(items, b.String())
	return
}
