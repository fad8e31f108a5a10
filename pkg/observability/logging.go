// Package observability provides request logging, metrics, and tracing.
package observability

import (
	"log/slog"
	"os"
)

var logLevel = new(slog.LevelVar)

// Logger is the JSON logger used for per-request logs
var Logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
	Level: logLevel,
}))

// SetLogLevel sets the minimum level of Logger from a name like "debug" or "warn".
// Unknown names fall back to info.
func SetLogLevel(name string) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		level = slog.LevelInfo
	}
	logLevel.Set(level)
}
