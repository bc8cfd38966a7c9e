package mail

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"portfolio/internal/config"
)

// ContactMessage is one contact-form submission to forward.
type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Mailer forwards contact-form submissions over SMTP to a single fixed
// recipient. Delivery is fire-and-forget: no retry, no queueing.
type Mailer struct {
	dialer    *gomail.Dialer
	sender    string
	recipient string
}

func New(cfg config.MailConfig) *Mailer {
	return &Mailer{
		dialer:    gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		sender:    cfg.Sender,
		recipient: cfg.Recipient,
	}
}

func (m *Mailer) Send(msg ContactMessage) error {
	body := fmt.Sprintf(
		"New message from your portfolio website:\n\nFrom: %s <%s>\nSubject: %s\n\nMessage:\n%s\n",
		msg.Name, msg.Email, msg.Subject, msg.Message,
	)

	email := gomail.NewMessage()
	email.SetHeader("From", m.sender)
	email.SetHeader("To", m.recipient)
	email.SetHeader("Subject", "Portfolio Contact: "+msg.Subject)
	email.SetHeader("Reply-To", msg.Email)
	email.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(email); err != nil {
		return fmt.Errorf("send contact mail failed: %w", err)
	}
	return nil
}
