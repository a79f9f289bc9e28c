package config

import (
	"fmt"
	"log/slog"
	"os"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// CurrentLevel is the level of the active default handler.
var CurrentLevel slog.Level

// SetupLogging configures the default handler from environment only, before
// flags are parsed.
func SetupLogging() error {
	_, debug := os.LookupEnv("DEBUG")
	level := new(slog.LevelVar)
	if debug {
		level.Set(slog.LevelDebug)
	} else {
		// Early configuration using environment variable, to debug initialization.
		envlevel, found := os.LookupEnv("PGPRIV_VERBOSITY")
		if found {
			err := level.UnmarshalText([]byte(envlevel))
			if err != nil {
				return fmt.Errorf("bad PGPRIV_VERBOSITY value: %s", envlevel)
			}
		}
	}

	colorEnv, found := os.LookupEnv("COLOR")
	var color bool
	if found {
		color = colorEnv == "true"
	} else {
		color = isatty.IsTerminal(os.Stderr.Fd())
	}
	SetLoggingHandler(level.Level(), color)

	return nil
}

var levelStrings = map[slog.Level]string{
	slog.LevelDebug: "\033[2mDEBUG",
	slog.LevelInfo:  "\033[1mINFO ",
	slog.LevelWarn:  "\033[1;38;5;185mWARN ",
	slog.LevelError: "\033[1;31mERROR",
}

func SetLoggingHandler(level slog.Level, color bool) {
	CurrentLevel = level
	var h slog.Handler
	if color {
		h = tint.NewHandler(os.Stderr, &tint.Options{
			Level: level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.LevelKey {
					if l, ok := a.Value.Any().(slog.Level); ok {
						a.Value = slog.StringValue(levelStrings[l])
					}
				}
				if a.Value.Kind() == slog.KindAny {
					set, ok := a.Value.Any().(mapset.Set[string])
					if ok {
						a.Value = slog.AnyValue(set.ToSlice())
					}
				}
				if a.Key == "err" && a.Value.Kind() == slog.KindAny && a.Value.Any() == nil {
					// Drop nil error.
					a.Key = ""
				}
				return a
			},
			TimeFormat: "15:04:05",
		})
	} else {
		h = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})
	}
	slog.SetDefault(slog.New(h))
}
