package cmd

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/lithammer/dedent"
	"github.com/mattn/go-isatty"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"

	"github.com/theory/pg-priv/internal/config"
	"github.com/theory/pg-priv/internal/perf"
	"github.com/theory/pg-priv/internal/postgres"
)

var k = koanf.New(".")

func init() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [OPTIONS] [ACL...]\n\n", os.Args[0])
		pflag.PrintDefaults()
		os.Stderr.Write([]byte(dedent.Dedent(`

		Each ACL argument is a Postgres aclitem array literal to decode offline.
		Without ACL arguments, pgpriv connects to Postgres using libpq environment
		variables and reports the privileges of objects in the requested scope.
		`)))
	}

	pflag.BoolP("help", "?", false, "Show this help message and exit.")
	pflag.BoolP("version", "V", false, "Show version and exit.")
	pflag.Bool("color", false, "Force color output.")
	pflag.StringP("config", "c", "", "Path to YAML settings file.")
	pflag.StringP("dsn", "d", "", "Postgres connection string.")
	pflag.StringP("scope", "s", "", "Object class to inspect: "+strings.Join(postgres.Scopes(), ", ")+".")
	pflag.StringP("pattern", "p", "", "Only inspect objects matching this Postgres regex.")
	pflag.BoolP("quote", "Q", false, "Requote role names as SQL identifiers.")
	pflag.StringSlice("blacklist", nil, "Glob patterns of grantees to skip.")
	pflag.CountP("quiet", "q", "Decrease log verbosity.")
	pflag.CountP("verbose", "v", "Increase log verbosity.")
}

// loadConfiguration layers defaults, settings file, environment and flags.
func loadConfiguration() error {
	pflag.Parse()

	_ = k.Load(confmap.Provider(map[string]any{
		"color": defaultColor(),
		"scope": "table",
	}, k.Delim()), nil)

	configFlag, _ := pflag.CommandLine.GetString("config")
	values, err := config.Load(config.FindFile(configFlag))
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	_ = k.Load(confmap.Provider(values, k.Delim()), nil)

	_ = k.Load(env.Provider("PGPRIV_", k.Delim(), func(key string) string {
		return strings.ToLower(strings.TrimPrefix(key, "PGPRIV_"))
	}), nil)

	_ = k.Load(posflag.Provider(pflag.CommandLine, k.Delim(), k), nil)
	return nil
}

func defaultColor() bool {
	plain := os.Getenv("NO_COLOR")
	if plain != "" {
		return false
	}
	return isatty.IsTerminal(os.Stderr.Fd())
}

// Controller holds flags/env values controlling the execution of pgpriv.
type Controller struct {
	Color     bool
	Config    string
	Dsn       string
	Pattern   string
	Quote     bool
	Scope     string
	Blacklist []string
	Quiet     int
	Verbose   int
	Verbosity string
	LogLevel  slog.Level     `mapstructure:"-"`
	Watch     perf.StopWatch `mapstructure:"-"`
}

var levels = []slog.Level{
	slog.LevelDebug,
	slog.LevelInfo,
	slog.LevelWarn,
	slog.LevelError,
}

func unmarshalController() (controller Controller, err error) {
	err = mapstructure.WeakDecode(k.All(), &controller)
	if err != nil {
		return
	}

	switch controller.Verbosity {
	case "":
		// Default log level is INFO, which index is 1.
		levelIndex := 1 - controller.Verbose + controller.Quiet
		levelIndex = int(math.Max(0, float64(levelIndex)))
		levelIndex = int(math.Min(float64(levelIndex), float64(len(levels)-1)))
		controller.LogLevel = levels[levelIndex]
	default:
		var level slog.LevelVar
		e := level.UnmarshalText([]byte(controller.Verbosity))
		if e == nil {
			controller.LogLevel = level.Level()
		} else {
			controller.LogLevel = slog.LevelInfo
			slog.Warn("Bad verbosity.", "value", controller.Verbosity)
		}
	}
	return controller, err
}
