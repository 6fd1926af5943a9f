package logger_fx

import (
	"log/slog"
	"os"

	"go.uber.org/fx"

	"cityinfo/internal/config"
	"cityinfo/pkg/logger"
)

var Module = fx.Provide(provideLogger)

func provideLogger(cfg *config.Config) *slog.Logger {
	l := logger.New(os.Stdout, cfg.IsDevelopment())
	slog.SetDefault(l)
	return l
}
