package services

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalMailServiceLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	svc := NewLocalMailService(MailAddresses{To: "admin@mycompany.com", From: "noreply@mycompany.com"}, logger)

	err := svc.Send(context.Background(), "Point of interest deleted.", "Point of interest Central Park with id 1 was deleted.")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"subject":"Point of interest deleted."`)
	assert.Contains(t, out, `"to":"admin@mycompany.com"`)
	assert.Contains(t, out, "Central Park")
}

func TestNewSMTPMailService(t *testing.T) {
	addr := MailAddresses{To: "a@example.com", From: "b@example.com", FromName: "CityInfo"}

	_, err := NewSMTPMailService(SMTPConfig{}, addr, slog.Default())
	assert.Error(t, err)

	svc, err := NewSMTPMailService(SMTPConfig{Host: "localhost", Port: 2525}, addr, slog.Default())
	require.NoError(t, err)

	body, err := svc.(*smtpMailService).render("Subject line", "Body text")
	require.NoError(t, err)
	assert.Contains(t, body, "Subject line")
	assert.Contains(t, body, "Body text")
	assert.Contains(t, body, "CityInfo")
}

func TestFormatFromHeader(t *testing.T) {
	assert.Equal(t, "b@example.com", formatFromHeader(MailAddresses{From: "b@example.com"}))
	assert.Equal(t, "CityInfo <b@example.com>", formatFromHeader(MailAddresses{From: "b@example.com", FromName: "CityInfo"}))
	assert.Contains(t, formatFromHeader(MailAddresses{From: "b@example.com", FromName: "Städte"}), "=?utf-8?q?")
}

func TestNewSendGridMailServiceRequiresKey(t *testing.T) {
	_, err := NewSendGridMailService("", MailAddresses{}, slog.Default())
	assert.Error(t, err)

	svc, err := NewSendGridMailService("SG.test", MailAddresses{To: "a@example.com"}, slog.Default())
	require.NoError(t, err)
	assert.NotNil(t, svc)
}
