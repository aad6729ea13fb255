// Package mailer sends transactional emails over SMTP. When credentials are
// missing the mailer runs disabled: sends become no-ops so the application
// keeps working without an email account configured.
package mailer

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"github.com/arms237/backend-vehicleShop/pkg/i18n"
	"github.com/arms237/backend-vehicleShop/pkg/logger"
)

// Config holds the SMTP settings
type Config struct {
	Host        string
	Port        int
	User        string
	Password    string
	AppName     string
	FrontendURL string
}

// Mailer sends verification and password-reset emails
type Mailer struct {
	cfg     Config
	enabled bool
	send    func(m ...*gomail.Message) error
}

// New creates a mailer; it is disabled when user or password is empty
func New(cfg Config) *Mailer {
	m := &Mailer{cfg: cfg, enabled: cfg.User != "" && cfg.Password != ""}
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	m.send = dialer.DialAndSend
	if !m.enabled {
		logger.Warn(context.Background(), "SMTP credentials missing, email sending disabled")
	}
	return m
}

// Enabled reports whether the mailer can actually send
func (m *Mailer) Enabled() bool {
	return m.enabled
}

// SendVerificationEmail sends the email-verification link
func (m *Mailer) SendVerificationEmail(ctx context.Context, to, token, lang string) error {
	url := fmt.Sprintf("%s/%s/auth/verify-email?token=%s", m.cfg.FrontendURL, lang, token)
	subject := i18n.T(lang, i18n.KeyVerificationSubject)
	body := i18n.T(lang, i18n.KeyVerificationBody, map[string]string{"url": url})
	return m.deliver(ctx, to, subject, body)
}

// SendResetPasswordEmail sends the password-reset link
func (m *Mailer) SendResetPasswordEmail(ctx context.Context, to, token, lang string) error {
	url := fmt.Sprintf("%s/%s/auth/reset-password?token=%s", m.cfg.FrontendURL, lang, token)
	subject := i18n.T(lang, i18n.KeyResetSubject)
	body := i18n.T(lang, i18n.KeyResetBody, map[string]string{"url": url})
	return m.deliver(ctx, to, subject, body)
}

func (m *Mailer) deliver(ctx context.Context, to, subject, body string) error {
	if !m.enabled {
		logger.Info(ctx, "email not sent, mailer disabled", zap.String("to", to), zap.String("subject", subject))
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("%s <%s>", m.cfg.AppName, m.cfg.User))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", fmt.Sprintf("<p>%s</p>", body))

	if err := m.send(msg); err != nil {
		logger.Error(ctx, "failed to send email", zap.String("to", to), zap.Error(err))
		return err
	}
	logger.Info(ctx, "email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
