package infra

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm/logger"
)

// slogWriter feeds GORM's logger into slog. GORM only prints warnings, errors
// and slow queries at the level configured in NewGormLogger.
type slogWriter struct {
	log *slog.Logger
}

func (w slogWriter) Printf(format string, args ...interface{}) {
	w.log.Log(context.Background(), slog.LevelWarn, fmt.Sprintf(format, args...), slog.String("component", "gorm"))
}

// NewGormLogger returns a GORM logger that writes through log.
func NewGormLogger(log *slog.Logger) logger.Interface {
	return logger.New(slogWriter{log: log}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
