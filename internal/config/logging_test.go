package config_test

import (
	"fmt"
	"log/slog"

	"github.com/lmittmann/tint"

	"github.com/theory/pg-priv/internal/config"
)

func ExampleSetLoggingHandler() {
	config.SetLoggingHandler(slog.LevelDebug, true)
	slog.Debug("Lorem ipsum dolor sit amet.")
	slog.Info("Consectetur adipiscing elit.", "vivamus", "ut accumsan elit", "maecenas", 4.23)
	slog.Error("Quisque et posuere libero.", tint.Err(fmt.Errorf("pouet")))
	// Output:
}
