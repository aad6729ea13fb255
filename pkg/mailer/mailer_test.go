package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	gomail "gopkg.in/gomail.v2"
)

func TestNew_DisabledWithoutCredentials(t *testing.T) {
	m := New(Config{Host: "smtp.example.com", Port: 587})
	require.False(t, m.Enabled())

	// disabled sends are no-ops, never a failure
	require.NoError(t, m.SendVerificationEmail(context.Background(), "ana@example.com", "tok", "fr"))
}

func TestSendVerificationEmail_DeliversOverDialer(t *testing.T) {
	m := New(Config{
		Host:        "smtp.example.com",
		Port:        587,
		User:        "noreply@vehicleshop.test",
		Password:    "secret",
		AppName:     "VehicleShop",
		FrontendURL: "https://vehicleshop.test",
	})
	require.True(t, m.Enabled())

	var sent []*gomail.Message
	m.send = func(msgs ...*gomail.Message) error {
		sent = append(sent, msgs...)
		return nil
	}

	require.NoError(t, m.SendVerificationEmail(context.Background(), "ana@example.com", "tok-123", "en"))
	require.Len(t, sent, 1)
	require.Equal(t, []string{"ana@example.com"}, sent[0].GetHeader("To"))
	require.Contains(t, sent[0].GetHeader("From")[0], "noreply@vehicleshop.test")
}

func TestSendResetPasswordEmail_PropagatesSendError(t *testing.T) {
	m := New(Config{User: "noreply@vehicleshop.test", Password: "secret"})
	m.send = func(_ ...*gomail.Message) error {
		return errSMTPDown
	}

	err := m.SendResetPasswordEmail(context.Background(), "ana@example.com", "tok", "fr")
	require.ErrorIs(t, err, errSMTPDown)
}

var errSMTPDown = &smtpError{}

type smtpError struct{}

func (*smtpError) Error() string { return "smtp down" }
