package mailer

import (
	"backend/internal/config"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Message is a single outbound notification.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers transactional mail. Delivery happens synchronously in the
// request path; callers log failures instead of surfacing them, so a broken
// mail setup never blocks idea submission or review.
type Sender interface {
	Send(msg Message) error
}

type smtpSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender builds a Sender backed by the configured SMTP relay.
func NewSMTPSender(cfg config.SMTPConfig) Sender {
	return &smtpSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *smtpSender) Send(msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)
	return s.dialer.DialAndSend(m)
}

type logSender struct {
	logger *zap.Logger
}

// NewLogSender returns a Sender that only logs, for deployments without SMTP.
func NewLogSender(logger *zap.Logger) Sender {
	return &logSender{logger: logger}
}

func (s *logSender) Send(msg Message) error {
	s.logger.Info("email delivery skipped: SMTP not configured",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject))
	return nil
}
