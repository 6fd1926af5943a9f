// services/mail_service.go
package services

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"text/template"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// IMailService delivers operator notifications. Implementations must be safe
// for concurrent use.
type IMailService interface {
	Send(ctx context.Context, subject, message string) error
}

// MailAddresses is shared by every provider.
type MailAddresses struct {
	To       string
	From     string
	FromName string
}

// ------------------- Local -------------------

type localMailService struct {
	addr   MailAddresses
	logger *slog.Logger
}

// NewLocalMailService writes notifications to the log instead of sending them.
func NewLocalMailService(addr MailAddresses, logger *slog.Logger) IMailService {
	return &localMailService{addr: addr, logger: logger}
}

func (s *localMailService) Send(ctx context.Context, subject, message string) error {
	s.logger.InfoContext(ctx, "Mail from local mail service",
		slog.String("from", s.addr.From),
		slog.String("to", s.addr.To),
		slog.String("subject", subject),
		slog.String("message", message))
	return nil
}

// ------------------- SMTP -------------------

// SMTPConfig holds the SMTP server settings.
type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	UseSSL     bool // true for SMTPS 465, false for STARTTLS 587
	RequireTLS bool // fail if STARTTLS is not available
}

type smtpMailService struct {
	cfg    SMTPConfig
	addr   MailAddresses
	tpl    *template.Template
	logger *slog.Logger
}

const plainTextTemplate = `{{.Subject}}

{{.Message}}

Sent {{.SentAt}} by {{.FromName}}
`

type mailData struct {
	Subject  string
	Message  string
	FromName string
	SentAt   string
}

func NewSMTPMailService(cfg SMTPConfig, addr MailAddresses, logger *slog.Logger) (IMailService, error) {
	if cfg.Host == "" || cfg.Port == 0 {
		return nil, fmt.Errorf("smtp host and port are required")
	}
	tpl, err := template.New("plainText").Parse(plainTextTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mail template: %w", err)
	}
	return &smtpMailService{cfg: cfg, addr: addr, tpl: tpl, logger: logger}, nil
}

func (s *smtpMailService) Send(ctx context.Context, subject, message string) error {
	body, err := s.render(subject, message)
	if err != nil {
		return err
	}

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = fmt.Fprintf(&msg, format, a...) }
	write("From: %s\r\n", formatFromHeader(s.addr))
	write("To: %s\r\n", s.addr.To)
	write("Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n", body)

	if err := s.deliver(ctx, msg.Bytes()); err != nil {
		return fmt.Errorf("failed to send mail via smtp: %w", err)
	}
	s.logger.DebugContext(ctx, "Mail sent via smtp", slog.String("to", s.addr.To), slog.String("subject", subject))
	return nil
}

func (s *smtpMailService) render(subject, message string) (string, error) {
	var b bytes.Buffer
	err := s.tpl.Execute(&b, mailData{
		Subject:  subject,
		Message:  message,
		FromName: s.addr.FromName,
		SentAt:   time.Now().UTC().Format(time.RFC1123),
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

func (s *smtpMailService) deliver(ctx context.Context, msg []byte) error {
	addr := net.JoinHostPort(s.cfg.Host, fmt.Sprint(s.cfg.Port))
	tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
	dialer := &net.Dialer{Timeout: 10 * time.Second}

	var conn net.Conn
	var err error
	if s.cfg.UseSSL {
		conn, err = (&tls.Dialer{NetDialer: dialer, Config: tlsCfg}).DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if !s.cfg.UseSSL {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err = c.StartTLS(tlsCfg); err != nil {
				return err
			}
		} else if s.cfg.RequireTLS {
			return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
		}
	}

	if s.cfg.Username != "" {
		if err = c.Auth(smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)); err != nil {
			return err
		}
	}
	if err = c.Mail(s.addr.From); err != nil {
		return err
	}
	if err = c.Rcpt(s.addr.To); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

func formatFromHeader(addr MailAddresses) string {
	name := strings.TrimSpace(addr.FromName)
	if name == "" {
		return addr.From
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", name), addr.From)
}

// ------------------- SendGrid -------------------

type sendGridMailService struct {
	client *sendgrid.Client
	addr   MailAddresses
	logger *slog.Logger
}

func NewSendGridMailService(apiKey string, addr MailAddresses, logger *slog.Logger) (IMailService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("sendgrid api key is required")
	}
	return &sendGridMailService{
		client: sendgrid.NewSendClient(apiKey),
		addr:   addr,
		logger: logger,
	}, nil
}

func (s *sendGridMailService) Send(ctx context.Context, subject, message string) error {
	from := mail.NewEmail(s.addr.FromName, s.addr.From)
	to := mail.NewEmail("", s.addr.To)
	email := mail.NewSingleEmail(from, subject, to, message, "<p>"+template.HTMLEscapeString(message)+"</p>")

	resp, err := s.client.SendWithContext(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to send mail via sendgrid: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid rejected mail: status %d: %s", resp.StatusCode, resp.Body)
	}

	s.logger.DebugContext(ctx, "Mail sent via sendgrid", slog.Int("status", resp.StatusCode), slog.String("subject", subject))
	return nil
}
