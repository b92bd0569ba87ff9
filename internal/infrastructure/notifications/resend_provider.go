package notifications

import (
	"context"
	"errors"
	"fmt"

	"petsit_booking/internal/domain/entities"
	"petsit_booking/internal/usecase/interfaces"

	"github.com/resend/resend-go/v2"
)

var ErrMissingResendAPIKey = errors.New("missing RESEND_API_KEY")

// emailSender is the part of the Resend emails service used here.
type emailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendProvider sends transactional email through Resend.
type ResendProvider struct {
	emails emailSender
	from   string
}

var _ interfaces.IEmailProvider = (*ResendProvider)(nil)

func NewResendProvider(apiKey, from string) (*ResendProvider, error) {
	if apiKey == "" {
		return nil, ErrMissingResendAPIKey
	}
	client := resend.NewClient(apiKey)
	return &ResendProvider{emails: client.Emails, from: from}, nil
}

func (p *ResendProvider) Send(ctx context.Context, email entities.Email) error {
	req := &resend.SendEmailRequest{
		From:    p.from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
	}
	if email.Tag != "" {
		req.Tags = []resend.Tag{{Name: "template", Value: email.Tag}}
	}

	if _, err := p.emails.SendWithContext(ctx, req); err != nil {
		return fmt.Errorf("resend send: %w", err)
	}
	return nil
}
