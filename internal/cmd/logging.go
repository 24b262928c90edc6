package cmd

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/MeKo-Tech/globalmercator/mercator"
	"github.com/spf13/viper"
)

var logger *slog.Logger

// initLogging installs the default slog logger from the log_level,
// log_format and verbose settings. Logs go to stderr.
func initLogging() {
	logger = newLogger(os.Stderr, viper.GetString("log_level"), viper.GetString("log_format"), viper.GetBool("verbose"))
	slog.SetDefault(logger)
}

func newLogger(w io.Writer, level, format string, verbose bool) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	if verbose {
		lvl = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if strings.ToLower(format) == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// newMercator builds the engine for the configured tile size.
func newMercator() (*mercator.Mercator, error) {
	if logger == nil {
		initLogging()
	}
	return mercator.New(viper.GetInt("tile_size"), mercator.WithLogger(logger))
}
