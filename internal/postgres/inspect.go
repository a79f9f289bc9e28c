package postgres

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/lithammer/dedent"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/theory/pg-priv/internal/perf"
)

// ObjectACL carries the raw ACL of one object, ready for decoding.
type ObjectACL struct {
	Object  string
	Entries []string
}

var (
	//go:embed sql/databases.sql
	databasesQuery string
	//go:embed sql/schemas.sql
	schemasQuery string
	//go:embed sql/tables.sql
	tablesQuery string

	queries map[string]string
)

func init() {
	queries = map[string]string{
		"database": databasesQuery,
		"schema":   schemasQuery,
		"table":    tablesQuery,
	}
}

// Scopes lists the object classes InspectACLs knows about, sorted.
func Scopes() []string {
	scopes := maps.Keys(queries)
	slices.Sort(scopes)
	return scopes
}

// InspectACLs streams the ACL of every object of a class matching pattern.
//
// scope is one of Scopes(). pattern is a Postgres regex, empty matches
// everything. Sends ObjectACL items on the returned channel, or a single
// error item on failure. watch accumulates time spent waiting for Postgres.
func InspectACLs(ctx context.Context, scope, pattern string, watch *perf.StopWatch) <-chan any {
	ch := make(chan any)
	go func() {
		defer close(ch)
		q, ok := queries[scope]
		if !ok {
			ch <- fmt.Errorf("unknown scope: %s", scope)
			return
		}

		pgconn, err := GetConn(ctx, "")
		if err != nil {
			ch <- err
			return
		}

		sql := strings.TrimSpace(dedent.Dedent(q))
		slog.Debug("Executing SQL query:\n"+sql, "scope", scope, "pattern", pattern)
		var rows pgx.Rows
		watch.TimeIt(func() {
			rows, err = pgconn.Query(ctx, sql, pattern)
		})
		if err != nil {
			ch <- fmt.Errorf("bad query: %w", err)
			return
		}
		for rows.Next() {
			var o ObjectACL
			if err := rows.Scan(&o.Object, &o.Entries); err != nil {
				ch <- fmt.Errorf("bad row: %w", err)
				return
			}
			ch <- o
		}
		if err := rows.Err(); err != nil {
			ch <- fmt.Errorf("%s: %w", scope, err)
		}
	}()
	return ch
}
