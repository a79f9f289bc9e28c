package postgres

import (
	"regexp"
	"strings"
)

var bareIdentRe = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// QuoteIdent quotes a role or object name the way Postgres does.
//
// Bare lowercase identifiers not colliding with a reserved word pass
// through unchanged. Anything else gets embedded double quotes doubled and
// the whole name wrapped in double quotes. Never fails.
func QuoteIdent(name string) string {
	if bareIdentRe.MatchString(name) && !reservedKeywords.Contains(name) {
		return name
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
