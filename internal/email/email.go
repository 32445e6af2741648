// Package email delivers confirmation codes to registering users.
package email

import (
	"context"
	"fmt"
	"net/smtp"

	"yamdb-backend/internal/config"

	"github.com/sirupsen/logrus"
)

const (
	confirmationSubject = "Код подтверждения для доступа к API YaMDb."
	confirmationBody    = "Ваш код подтверждения: %s\n"
)

// Sender delivers a confirmation code to an address. Delivery is synchronous
// and a failure is returned to the caller.
type Sender interface {
	SendConfirmationCode(ctx context.Context, to, code string) error
}

// Message is a composed plain-text email.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

func ConfirmationMessage(from, to, code string) Message {
	return Message{
		From:    from,
		To:      to,
		Subject: confirmationSubject,
		Body:    fmt.Sprintf(confirmationBody, code),
	}
}

// Bytes renders the message in RFC 5322 form.
func (m Message) Bytes() []byte {
	return []byte(fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"MIME-Version: 1.0\r\n"+
		"Content-Type: text/plain; charset=UTF-8\r\n"+
		"\r\n"+
		"%s\r\n", m.From, m.To, m.Subject, m.Body))
}

// NewSender picks SMTP delivery when a relay is configured and log-only
// delivery otherwise.
func NewSender(cfg config.EmailConfig, logger *logrus.Logger) Sender {
	if cfg.Host == "" {
		logger.Warn("SMTP_HOST is not set, confirmation codes will be written to the log")
		return &LogSender{from: cfg.From, logger: logger}
	}
	return &SMTPSender{
		host:     cfg.Host,
		port:     cfg.Port,
		user:     cfg.User,
		password: cfg.Password,
		from:     cfg.From,
		send:     smtp.SendMail,
	}
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTPSender struct {
	host     string
	port     string
	user     string
	password string
	from     string
	send     sendFunc
}

func (s *SMTPSender) SendConfirmationCode(_ context.Context, to, code string) error {
	msg := ConfirmationMessage(s.from, to, code)

	var auth smtp.Auth
	if s.user != "" {
		auth = smtp.PlainAuth("", s.user, s.password, s.host)
	}
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	if err := s.send(addr, auth, s.from, []string{to}, msg.Bytes()); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	return nil
}

// LogSender writes messages to the log instead of a mail relay. It backs
// local development the way a console mail backend would.
type LogSender struct {
	from   string
	logger *logrus.Logger
}

func (s *LogSender) SendConfirmationCode(_ context.Context, to, code string) error {
	msg := ConfirmationMessage(s.from, to, code)
	s.logger.WithFields(logrus.Fields{
		"from":    msg.From,
		"to":      msg.To,
		"subject": msg.Subject,
	}).Info(msg.Body)
	return nil
}
