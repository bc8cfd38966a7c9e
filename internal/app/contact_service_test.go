package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolio/internal/mail"
)

type fakeSender struct {
	sent []mail.ContactMessage
	err  error
}

func (f *fakeSender) Send(msg mail.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func TestContactSubmit(t *testing.T) {
	sender := &fakeSender{}
	svc := NewContactService(sender, zap.NewNop())

	err := svc.Submit(ContactInput{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hiring",
		Message: "Are you available?",
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "ada@example.com", sender.sent[0].Email)
}

func TestContactSubmitValidation(t *testing.T) {
	sender := &fakeSender{}
	svc := NewContactService(sender, zap.NewNop())

	err := svc.Submit(ContactInput{Name: "Ada", Email: "", Subject: "s", Message: "m"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, sender.sent)
}

func TestContactSubmitDeliveryFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp unreachable")}
	svc := NewContactService(sender, zap.NewNop())

	err := svc.Submit(ContactInput{Name: "Ada", Email: "a@b.c", Subject: "s", Message: "m"})
	assert.ErrorIs(t, err, ErrMailDelivery)
}
