package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("CONNECTION_STRING", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.NotEmpty(t, cfg.Database.ConnectionString)
	assert.True(t, cfg.Database.Seed)
	assert.Equal(t, MailProviderLocal, cfg.Mail.Provider)
	assert.Equal(t, 587, cfg.Mail.SMTPPort)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("CONNECTION_STRING", "host=db user=city dbname=cityinfo")
	t.Setenv("DB_SEED", "false")
	t.Setenv("MAIL_PROVIDER", "sendgrid")
	t.Setenv("SENDGRID_API_KEY", "SG.key")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "host=db user=city dbname=cityinfo", cfg.Database.ConnectionString)
	assert.False(t, cfg.Database.Seed)
	assert.Equal(t, MailProviderSendGrid, cfg.Mail.Provider)
	assert.Equal(t, "SG.key", cfg.Mail.SendGridAPIKey)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "oracle")
		_, err := Load()
		assert.ErrorContains(t, err, "DB_DRIVER")
	})

	t.Run("empty cors origins", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "sqlite")
		t.Setenv("CORS_ALLOWED_ORIGINS", " , ")
		_, err := Load()
		assert.ErrorContains(t, err, "CORS_ALLOWED_ORIGINS")
	})

	t.Run("postgres without connection string", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "postgres")
		t.Setenv("CONNECTION_STRING", "")
		_, err := Load()
		assert.ErrorContains(t, err, "CONNECTION_STRING")
	})

	t.Run("unknown mail provider", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "sqlite")
		t.Setenv("MAIL_PROVIDER", "pigeon")
		_, err := Load()
		assert.ErrorContains(t, err, "MAIL_PROVIDER")
	})
}
