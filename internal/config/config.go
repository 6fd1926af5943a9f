package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	MailProviderLocal    = "local"
	MailProviderSMTP     = "smtp"
	MailProviderSendGrid = "sendgrid"
)

type Config struct {
	AppEnv      string
	Port        string
	CORSOrigins []string
	Database    DatabaseConfig
	Mail     MailConfig
}

type DatabaseConfig struct {
	Driver           string
	ConnectionString string
	Seed             bool
}

type MailConfig struct {
	Provider string
	To       string
	From     string
	FromName string

	SMTPHost       string
	SMTPPort       int
	SMTPUsername   string
	SMTPPassword   string
	SMTPUseSSL     bool
	SMTPRequireTLS bool

	SendGridAPIKey string
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "" || c.AppEnv == "development"
}

// Load reads .env (if present), an optional config.yml and the environment,
// in increasing order of precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		AppEnv:      v.GetString("APP_ENV"),
		Port:        v.GetString("PORT"),
		CORSOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		Database: DatabaseConfig{
			Driver:           strings.ToLower(v.GetString("DB_DRIVER")),
			ConnectionString: v.GetString("CONNECTION_STRING"),
			Seed:             v.GetBool("DB_SEED"),
		},
		Mail: MailConfig{
			Provider:       strings.ToLower(v.GetString("MAIL_PROVIDER")),
			To:             v.GetString("MAIL_TO"),
			From:           v.GetString("MAIL_FROM"),
			FromName:       v.GetString("MAIL_FROM_NAME"),
			SMTPHost:       v.GetString("SMTP_HOST"),
			SMTPPort:       v.GetInt("SMTP_PORT"),
			SMTPUsername:   v.GetString("SMTP_USERNAME"),
			SMTPPassword:   v.GetString("SMTP_PASSWORD"),
			SMTPUseSSL:     v.GetBool("SMTP_USE_SSL"),
			SMTPRequireTLS: v.GetBool("SMTP_REQUIRE_TLS"),
			SendGridAPIKey: v.GetString("SENDGRID_API_KEY"),
		},
	}

	if cfg.Database.ConnectionString == "" && cfg.Database.Driver == DriverSQLite {
		cfg.Database.ConnectionString = "file:cityinfo.db?_foreign_keys=on"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_SEED", true)
	v.SetDefault("MAIL_PROVIDER", MailProviderLocal)
	v.SetDefault("MAIL_TO", "admin@mycompany.com")
	v.SetDefault("MAIL_FROM", "noreply@mycompany.com")
	v.SetDefault("MAIL_FROM_NAME", "CityInfo")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_REQUIRE_TLS", true)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *Config) validate() error {
	if len(c.CORSOrigins) == 0 {
		return errors.New("CORS_ALLOWED_ORIGINS must name at least one origin or \"*\"")
	}

	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.ConnectionString == "" {
			return errors.New("CONNECTION_STRING is required for the postgres driver")
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q: use %q or %q", c.Database.Driver, DriverPostgres, DriverSQLite)
	}

	switch c.Mail.Provider {
	case MailProviderLocal, MailProviderSMTP, MailProviderSendGrid:
	default:
		return fmt.Errorf("unsupported MAIL_PROVIDER %q", c.Mail.Provider)
	}
	return nil
}
