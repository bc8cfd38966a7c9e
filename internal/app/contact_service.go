package app

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"portfolio/internal/mail"
)

var ErrMailDelivery = errors.New("mail delivery failed")

// Sender is the outbound mail dependency; satisfied by *mail.Mailer.
type Sender interface {
	Send(msg mail.ContactMessage) error
}

type ContactService struct {
	sender Sender
	logger *zap.Logger
}

type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

func NewContactService(sender Sender, logger *zap.Logger) *ContactService {
	return &ContactService{sender: sender, logger: logger}
}

// Submit validates and forwards one contact-form submission. Failures are
// reported as a single generic error; there is no retry.
func (s *ContactService) Submit(input ContactInput) error {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	subject := strings.TrimSpace(input.Subject)
	message := strings.TrimSpace(input.Message)
	if name == "" || email == "" || subject == "" || message == "" {
		return ErrInvalidInput
	}

	if err := s.sender.Send(mail.ContactMessage{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	}); err != nil {
		s.logger.Error("contact mail send failed", zap.Error(err))
		return ErrMailDelivery
	}
	return nil
}
