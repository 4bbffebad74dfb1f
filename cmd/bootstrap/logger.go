package bootstrap

import (
	"log/slog"

	"spa-pos/internal/handler/middleware"
	"spa-pos/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		NewSlogLogger,
	),
)

func NewLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

// NewSlogLogger exposes the request logger's handler; middleware.NewLogger has
// already installed it as the slog default.
func NewSlogLogger(logger *middleware.Logger) *slog.Logger {
	return logger.GetSlogLogger()
}
