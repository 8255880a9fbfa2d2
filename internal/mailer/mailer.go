// Package mailer delivers outbound mail for the recovery flow. The SMTP
// implementation is deliberately thin; tests swap in a fake through the
// Mailer interface.
package mailer

import (
	"fmt"
	"net/smtp"

	"go.uber.org/zap"
)

type Mailer interface {
	// SendRecovery mails a password-recovery link carrying the token.
	SendRecovery(to, token string) error
}

type smtpMailer struct {
	addr        string
	auth        smtp.Auth
	from        string
	frontendURL string
	logger      *zap.Logger
}

func NewSMTPMailer(host string, port int, username, password, from, frontendURL string, logger *zap.Logger) Mailer {
	return &smtpMailer{
		addr:        fmt.Sprintf("%s:%d", host, port),
		auth:        smtp.PlainAuth("", username, password, host),
		from:        from,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

func (m *smtpMailer) SendRecovery(to, token string) error {
	link := fmt.Sprintf("%s/resetar-senha?token=%s", m.frontendURL, token)
	body := fmt.Sprintf("Para redefinir sua senha, clique no link: %s", link)

	msg := []byte("From: " + m.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: Redefinição de Senha\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=\"utf-8\"\r\n" +
		"\r\n" +
		body + "\r\n")

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send recovery mail: %w", err)
	}

	m.logger.Info("Recovery email sent", zap.String("to", to))
	return nil
}
