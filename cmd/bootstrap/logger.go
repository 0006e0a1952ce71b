package bootstrap

import (
	"log/slog"
	"os"
	"strings"

	"fleet-rental/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger returns a tinted text logger in debug mode and JSON in release
// mode, and installs it as the process default.
func NewLogger(cfg config.Config) *slog.Logger {
	level := parseLevel(cfg.Log.Level)

	var handler slog.Handler
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: cfg.Log.TimeFormat,
		})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
