package mail_fx

import (
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"cityinfo/internal/config"
	"cityinfo/internal/services"
)

var Module = fx.Provide(provideMailService)

// provideMailService picks the notifier from MAIL_PROVIDER once at startup.
func provideMailService(cfg *config.Config, logger *slog.Logger) (services.IMailService, error) {
	mc := cfg.Mail
	addr := services.MailAddresses{To: mc.To, From: mc.From, FromName: mc.FromName}
	mailLogger := logger.With(slog.String("component", "mail"), slog.String("provider", mc.Provider))

	logger.Info("Initializing mail service", slog.String("provider", mc.Provider))

	switch mc.Provider {
	case config.MailProviderLocal:
		return services.NewLocalMailService(addr, mailLogger), nil
	case config.MailProviderSMTP:
		return services.NewSMTPMailService(services.SMTPConfig{
			Host:       mc.SMTPHost,
			Port:       mc.SMTPPort,
			Username:   mc.SMTPUsername,
			Password:   mc.SMTPPassword,
			UseSSL:     mc.SMTPUseSSL,
			RequireTLS: mc.SMTPRequireTLS,
		}, addr, mailLogger)
	case config.MailProviderSendGrid:
		return services.NewSendGridMailService(mc.SendGridAPIKey, addr, mailLogger)
	default:
		return nil, fmt.Errorf("unsupported mail provider: %s", mc.Provider)
	}
}
