package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/jackc/pgx/v5"
)

var (
	globalConn *pgx.Conn
	globalConf *pgx.ConnConfig
)

func Configure(dsn string) (err error) {
	globalConf, err = pgx.ParseConfig(dsn)
	if err != nil {
		return
	}
	if globalConf.ConnectTimeout == 0 {
		slog.Debug("Setting default Postgres connection timeout.", "timeout", "5s")
		globalConf.ConnectTimeout, _ = time.ParseDuration("5s")
	}
	return
}

// GetConn returns the global connection, opening it on first use.
//
// Asking for another database closes the current connection first. Opening
// retries on transient failures.
func GetConn(ctx context.Context, database string) (*pgx.Conn, error) {
	if database == "" {
		database = globalConf.Database
	}

	if globalConn != nil {
		c := globalConn.Config()
		if database != c.Database {
			CloseConn(ctx)
		}
	}

	if globalConn == nil {
		c := globalConf.Copy()
		c.Database = database
		slog.Debug("Opening Postgres global connection.", "database", database)
		err := retry.Do(
			func() (err error) {
				globalConn, err = pgx.ConnectConfig(ctx, c)
				return
			},
			retry.Context(ctx),
			retry.Attempts(3),
			retry.MaxDelay(30*time.Second),
			retry.OnRetry(func(n uint, err error) {
				slog.Debug("Retrying.", "err", err.Error(), "attempt", n)
			}),
			retry.LastErrorOnly(true),
		)
		if err != nil {
			return nil, err
		}
	}

	return globalConn, nil
}

func CloseConn(ctx context.Context) {
	if globalConn == nil {
		return
	}
	c := globalConn.Config()
	slog.Debug("Closing Postgres global connection.", "database", c.Database)

	globalConn.Close(ctx)
	globalConn = nil
}
