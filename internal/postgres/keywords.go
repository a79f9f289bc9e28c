package postgres

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// SQL reserved words, lowercase. A bare identifier colliding with one of
// these needs quoting. Built once at init, read-only afterwards, so the
// thread-unsafe set is fine for concurrent lookups.
var reservedKeywords = mapset.NewThreadUnsafeSet(
	"all", "analyse", "analyze", "and", "any", "array", "as", "asc",
	"asymmetric", "authorization", "between", "bigint", "binary", "bit",
	"boolean", "both", "case", "cast", "char", "character", "check",
	"coalesce", "collate", "column", "constraint", "create", "cross",
	"current_date", "current_role", "current_time", "current_timestamp",
	"current_user", "dec", "decimal", "default", "deferrable", "desc",
	"distinct", "do", "else", "end", "except", "exists", "extract", "false",
	"float", "for", "foreign", "freeze", "from", "full", "grant", "greatest",
	"group", "having", "ilike", "in", "initially", "inner", "int", "integer",
	"intersect", "interval", "into", "is", "isnull", "join", "leading",
	"least", "left", "like", "limit", "localtime", "localtimestamp",
	"natural", "nchar", "none", "not", "notnull", "null", "nullif",
	"numeric", "offset", "on", "only", "or", "order", "outer", "overlaps",
	"placing", "position", "primary", "real", "references", "right", "row",
	"select", "session_user", "setof", "similar", "smallint", "some",
	"substring", "symmetric", "table", "then", "time", "timestamp", "to",
	"trailing", "treat", "trim", "true", "union", "unique", "user", "using",
	"varchar", "verbose", "when", "where",
)
