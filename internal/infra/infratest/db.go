// Package infratest opens throwaway databases for tests.
package infratest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cityinfo/internal/config"
	"cityinfo/internal/infra"
)

// NewDB returns a migrated in-memory SQLite database private to t. When seed is
// set the demo cities are inserted.
func NewDB(t testing.TB, seed bool) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := infra.OpenDatabase(config.DatabaseConfig{
		Driver:           config.DriverSQLite,
		ConnectionString: dsn,
	}, Logger())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if seed {
		_, err := infra.SeedCities(context.Background(), db)
		require.NoError(t, err)
	}
	return db
}

// Logger discards everything.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
