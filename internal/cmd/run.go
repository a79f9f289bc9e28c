// Implements the pgpriv command.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"golang.org/x/exp/slices"

	"github.com/theory/pg-priv/internal/config"
	"github.com/theory/pg-priv/internal/lists"
	"github.com/theory/pg-priv/internal/perf"
	"github.com/theory/pg-priv/internal/postgres"
	"github.com/theory/pg-priv/internal/privileges"
)

func Main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer logPanic()

	// Bootstrap logging first to log in setup.
	err := config.SetupLogging()
	if err == nil {
		_ = godotenv.Load()
		err = loadConfiguration()
	}
	if err == nil {
		if k.Bool("help") {
			pflag.Usage()
			return
		} else if k.Bool("version") {
			showVersion()
			return
		}
		err = pgpriv(ctx)
	}
	if err != nil {
		slog.Error("Fatal error.", "err", err)
		if config.CurrentLevel > slog.LevelDebug {
			slog.Error("Run pgpriv with --verbose to get more informations.")
		}
		os.Exit(1)
	}
}

func pgpriv(ctx context.Context) (err error) {
	start := time.Now()

	controller, err := unmarshalController()
	if err != nil {
		return
	}
	config.SetLoggingHandler(controller.LogLevel, controller.Color)
	slog.Info("Starting pgpriv",
		"version", version(),
		"runtime", runtime.Version(),
		"commit", commit,
		"pid", os.Getpid(),
	)

	blacklist := lists.Blacklist(controller.Blacklist)
	if err := blacklist.Check(); err != nil {
		return fmt.Errorf("blacklist: %w", err)
	}

	var objects []postgres.ObjectACL
	args := pflag.Args()
	if len(args) > 0 {
		for i, arg := range args {
			objects = append(objects, postgres.ObjectACL{
				Object:  fmt.Sprintf("acl%d", i+1),
				Entries: postgres.SplitACL(arg),
			})
		}
	} else {
		if !slices.Contains(postgres.Scopes(), controller.Scope) {
			return fmt.Errorf("unknown scope: %s", controller.Scope)
		}
		err = postgres.Configure(controller.Dsn)
		if err != nil {
			return
		}
		defer postgres.CloseConn(ctx)
		err = lists.IterateToSlice(
			postgres.InspectACLs(ctx, controller.Scope, controller.Pattern, &controller.Watch),
			&objects,
		)
		if err != nil {
			return
		}
	}

	count := 0
	for _, o := range objects {
		for _, p := range privileges.ParseACL(o.Entries, controller.Quote) {
			if pattern := blacklist.MatchString(p.Role); pattern != "" {
				slog.Debug("Ignoring blacklisted grantee.", "role", p.Role, "pattern", pattern)
				continue
			}
			labels := p.Labels()
			slices.Sort(labels)
			what := strings.Join(labels, ", ")
			if what == "" {
				what = "nothing"
			}
			fmt.Printf("%s: %s granted %s to %s\n", o.Object, p.By, what, p.Role)
			count++
		}
	}

	vmPeak := perf.ReadVMPeak()
	elapsed := time.Since(start)
	slog.Info("Done.",
		"elapsed", elapsed,
		"mempeak", perf.FormatBytes(vmPeak),
		"postgres", controller.Watch.Total,
		"objects", len(objects),
		"grants", count,
	)

	return
}

func logPanic() {
	r := recover()
	if r == nil {
		return
	}
	slog.Error("Panic!", "err", r)
	buf := debug.Stack()
	fmt.Fprintf(os.Stderr, "%s", buf)
	slog.Error("Aborting pgpriv.", "err", r)
	if config.CurrentLevel > slog.LevelDebug {
		slog.Error("Run pgpriv with --verbose to get more informations.")
	}
	slog.Error("Please file an issue at https://github.com/theory/pg-priv/issues/new with verbose log.")
	os.Exit(1)
}
