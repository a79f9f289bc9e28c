package privileges

import (
	"log/slog"
	"regexp"

	"github.com/theory/pg-priv/internal/postgres"
)

// Matches one aclitem: an optional grantee, possibly prefixed by the legacy
// "group" keyword, then the privilege letters and the grantor. An absent
// grantee means PUBLIC, e.g. "=r/postgres".
var itemRe = regexp.MustCompile(`^"?(?:(?:group\s+)?([^=]+))?=([^/]+)/(.+)$`)

// ParseACL decodes raw aclitem strings into Privilege records.
//
// Items are decoded in order, one record per item. Items not matching the
// aclitem shape are skipped: ACL arrays from the wild mix entry styles and
// one odd item must not abort the scan. A lone * in place of the privilege
// letters reuses the letters of the preceding item, as Postgres serializes
// grant-option continuation entries. When quote is true, grantee and
// grantor names are requoted with postgres.QuoteIdent.
func ParseACL(items []string, quote bool) (out []Privilege) {
	var carried string
	for _, item := range items {
		m := itemRe.FindStringSubmatch(item)
		if m == nil {
			slog.Debug("Skipping unparseable ACL item.", "item", item)
			continue
		}
		role, privs, by := m[1], m[2], m[3]

		if privs == "*" {
			privs = carried
		} else {
			carried = privs
		}

		if role == "" {
			// No grantee means everyone.
			role = "public"
		}

		if quote {
			role = postgres.QuoteIdent(role)
			by = postgres.QuoteIdent(by)
		}

		out = append(out, New(role, by, privs))
	}
	return
}
