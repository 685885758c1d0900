package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/bcorey85/timestamp-api/internal/config"
)

type SMTPMailer struct {
	cfg config.SMTPConfig
}

func New(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) SendPasswordReset(email, resetLink string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("Timestamp App <%s>", m.cfg.From))
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Timestamp App - Reset Password Link")
	msg.SetBody("text/html", fmt.Sprintf(
		`A password reset request was made for your Timestamp account. <a href=%q>Click here to reset your password.</a>`,
		resetLink))

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	return dialer.DialAndSend(msg)
}
