package email

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"go.uber.org/zap"
)

const sendTimeout = 30 * time.Second

var ErrNoRecipient = errors.New("email has no recipient")

// Message is one outgoing email.
type Message struct {
	To      string
	ToName  string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// Mailer delivers a rendered message and returns the provider message id.
type Mailer interface {
	Send(ctx context.Context, m Message) (string, error)
}

// MailgunMailer sends through the Mailgun HTTP API.
type MailgunMailer struct {
	client *mailgun.MailgunImpl
	from   string
	log    *zap.Logger
}

func NewMailgunMailer(domain, apiKey, apiURL, fromEmail, fromName string, logger *zap.Logger) *MailgunMailer {
	client := mailgun.NewMailgun(domain, apiKey)
	if apiURL != "" {
		client.SetAPIBase(apiURL)
	}
	return &MailgunMailer{
		client: client,
		from:   formatAddress(fromName, fromEmail),
		log:    named(logger, "email.mailgun"),
	}
}

func (s *MailgunMailer) Send(ctx context.Context, m Message) (string, error) {
	if m.To == "" {
		return "", ErrNoRecipient
	}

	msg := s.client.NewMessage(s.from, m.Subject, m.Text, formatAddress(m.ToName, m.To))
	if m.HTML != "" {
		msg.SetHtml(m.HTML)
	}
	if m.ReplyTo != "" {
		msg.SetReplyTo(m.ReplyTo)
	}

	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	_, id, err := s.client.Send(sendCtx, msg)
	if err != nil {
		s.log.Error("send failed", zap.String("to", m.To), zap.String("subject", m.Subject), zap.Error(err))
		return "", err
	}
	s.log.Info("email sent", zap.String("to", m.To), zap.String("message_id", id))
	return id, nil
}

// LogMailer only logs messages. It is used when Mailgun is not configured.
type LogMailer struct {
	log *zap.Logger
}

func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{log: named(logger, "email.log")}
}

func (s *LogMailer) Send(_ context.Context, m Message) (string, error) {
	if m.To == "" {
		return "", ErrNoRecipient
	}
	s.log.Info("email not delivered, mailgun disabled",
		zap.String("to", m.To),
		zap.String("subject", m.Subject),
		zap.Int("html_len", len(m.HTML)))
	return "", nil
}

func formatAddress(name, addr string) string {
	if name == "" {
		return addr
	}
	return fmt.Sprintf("%s <%s>", name, addr)
}

func named(logger *zap.Logger, name string) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger.Named(name)
}
