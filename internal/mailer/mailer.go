package mailer

import (
	"fmt"
	"strings"
	"time"

	"portfolio/internal/logger"
	"portfolio/pkg/rabbitmq"

	"gopkg.in/gomail.v2"
)

// Config holds the SMTP settings and the notification addresses.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// Sender delivers composed messages. *gomail.Dialer implements it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer e-mails the portfolio owner about new contact messages.
type Mailer struct {
	sender Sender
	from   string
	to     string
}

// New creates a Mailer that sends through the configured SMTP server.
func New(cfg Config) *Mailer {
	return NewWithSender(gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password), cfg.From, cfg.To)
}

// NewWithSender creates a Mailer over an arbitrary Sender.
func NewWithSender(sender Sender, from, to string) *Mailer {
	return &Mailer{sender: sender, from: from, to: to}
}

// SendContactNotification mails the owner a copy of a contact message. The
// reply goes straight to the visitor.
func (m *Mailer) SendContactNotification(event rabbitmq.MessageEvent) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetAddressHeader("Reply-To", event.Email, event.Name)
	msg.SetHeader("Subject", fmt.Sprintf("New contact message from %s", event.Name))
	msg.SetBody("text/plain", notificationBody(event))

	if err := m.sender.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send contact notification for message %s: %w", event.MessageID, err)
	}
	logger.Info("contact notification sent", "message_id", event.MessageID, "to", m.to)
	return nil
}

// HandleMessageEvent is a rabbitmq consumer handler. Events other than
// message.created are acknowledged and ignored.
func (m *Mailer) HandleMessageEvent(event rabbitmq.MessageEvent) error {
	if event.Type != rabbitmq.EventMessageCreated {
		logger.Debug("ignoring event", "type", event.Type)
		return nil
	}
	return m.SendContactNotification(event)
}

// LogMessageEvent is the consumer handler used when no SMTP server is
// configured.
func LogMessageEvent(event rabbitmq.MessageEvent) error {
	logger.Info("contact message received",
		"message_id", event.MessageID,
		"name", event.Name,
		"email", event.Email,
	)
	return nil
}

func notificationBody(event rabbitmq.MessageEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", event.Name)
	fmt.Fprintf(&b, "Email: %s\n", event.Email)
	if !event.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "Received: %s\n", event.CreatedAt.Format(time.RFC1123))
	}
	b.WriteString("\n")
	b.WriteString(event.Message)
	b.WriteString("\n")
	return b.String()
}
