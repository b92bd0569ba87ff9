package usecase

import (
	"bytes"
	"context"
	"html/template"
	"strings"

	"petsit_booking/internal/domain/entities"
	"petsit_booking/internal/infrastructure/metrics"
	"petsit_booking/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type INotificationUseCase interface {
	SendEmail(ctx context.Context, email entities.Email) (Delivery, error)
}

// Delivery reports how an email left the service. Fallback means it was only logged.
type Delivery struct {
	Delivered bool `json:"delivered"`
	Fallback  bool `json:"fallback"`
}

type NotificationUseCaseParams struct {
	Provider   interfaces.IEmailProvider
	Profiles   interfaces.IProfileRepository
	AdminEmail string
	Metrics    *metrics.Metrics
	Log        *zap.Logger
}

// NotificationUseCase renders lifecycle notifications and sends them through the email provider.
// Delivery never fails the caller: without a provider, or when the provider errors, the email is
// written to the log instead.
type NotificationUseCase struct {
	provider   interfaces.IEmailProvider
	profiles   interfaces.IProfileRepository
	adminEmail string
	metrics    *metrics.Metrics
	log        *zap.Logger
}

var (
	_ INotificationUseCase               = (*NotificationUseCase)(nil)
	_ interfaces.INotificationDispatcher = (*NotificationUseCase)(nil)
)

func NewNotificationUseCase(p NotificationUseCaseParams) *NotificationUseCase {
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &NotificationUseCase{
		provider:   p.Provider,
		profiles:   p.Profiles,
		adminEmail: strings.TrimSpace(p.AdminEmail),
		metrics:    p.Metrics,
		log:        log.Named("notification.usecase"),
	}
}

func (u *NotificationUseCase) SendEmail(ctx context.Context, email entities.Email) (Delivery, error) {
	email.To = compactAddresses(email.To)
	email.Subject = strings.TrimSpace(email.Subject)
	if len(email.To) == 0 || email.Subject == "" || strings.TrimSpace(email.HTML) == "" {
		return Delivery{}, ErrInvalidEmail
	}
	if email.Tag == "" {
		email.Tag = "direct"
	}
	return u.deliver(ctx, email), nil
}

func (u *NotificationUseCase) Dispatch(ctx context.Context, n entities.Notification) {
	tmpl, ok := emailCatalog[n.Template]
	if !ok {
		u.log.Warn("dispatch unknown template", zap.String("template", n.Template), zap.String("booking_id", n.BookingID))
		return
	}

	data := make(map[string]any, len(n.Data)+1)
	for k, v := range n.Data {
		data[k] = v
	}
	data["name"] = "there"

	var to []string
	if n.ToAdmin {
		if u.adminEmail != "" {
			to = []string{u.adminEmail}
		}
	} else {
		to = u.recipient(ctx, n.RecipientID, data)
	}

	email, err := tmpl.render(data)
	if err != nil {
		u.log.Error("dispatch render failed", zap.String("template", n.Template), zap.Error(err))
		u.metrics.Notification(n.Template, metrics.NotificationFailed)
		return
	}
	email.To = to
	email.Tag = n.Template

	if len(to) == 0 {
		u.log.Warn("dispatch has no recipient address", zap.String("template", n.Template), zap.String("recipient_id", n.RecipientID))
		u.consoleFallback(email)
		return
	}
	u.deliver(ctx, email)
}

func (u *NotificationUseCase) recipient(ctx context.Context, profileID string, data map[string]any) []string {
	if u.profiles == nil || profileID == "" {
		return nil
	}
	profile, err := u.profiles.GetByID(ctx, profileID)
	if err != nil {
		u.log.Warn("dispatch profile lookup failed", zap.String("recipient_id", profileID), zap.Error(err))
		return nil
	}
	if profile.FullName != "" {
		data["name"] = profile.FullName
	}
	if profile.Email == "" {
		return nil
	}
	return []string{profile.Email}
}

func (u *NotificationUseCase) deliver(ctx context.Context, email entities.Email) Delivery {
	if u.provider == nil {
		u.consoleFallback(email)
		return Delivery{Fallback: true}
	}
	if err := u.provider.Send(ctx, email); err != nil {
		u.log.Warn("email provider failed", zap.String("tag", email.Tag), zap.Error(err))
		u.consoleFallback(email)
		return Delivery{Fallback: true}
	}
	u.metrics.Notification(email.Tag, metrics.NotificationSent)
	u.log.Info("email sent", zap.String("tag", email.Tag), zap.Strings("to", email.To))
	return Delivery{Delivered: true}
}

func (u *NotificationUseCase) consoleFallback(email entities.Email) {
	u.metrics.Notification(email.Tag, metrics.NotificationFallback)
	u.log.Info("email console fallback",
		zap.Strings("to", email.To),
		zap.String("subject", email.Subject),
		zap.String("html", email.HTML),
		zap.String("tag", email.Tag))
}

func compactAddresses(in []string) []string {
	out := make([]string, 0, len(in))
	for _, addr := range in {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}

type emailTemplate struct {
	subject string
	body    *template.Template
}

func (t emailTemplate) render(data map[string]any) (entities.Email, error) {
	var buf bytes.Buffer
	if err := t.body.Execute(&buf, data); err != nil {
		return entities.Email{}, err
	}
	return entities.Email{Subject: t.subject, HTML: buf.String()}, nil
}

func newEmailTemplate(name, subject, body string) emailTemplate {
	return emailTemplate{
		subject: subject,
		body:    template.Must(template.New(name).Parse(body)),
	}
}

var emailCatalog = map[string]emailTemplate{
	entities.TemplateBookingRequested: newEmailTemplate(entities.TemplateBookingRequested,
		"New booking request",
		`<p>Hi {{.name}},</p><p>You have a new booking request from {{.start_at}} to {{.end_at}}.</p><p>Open your dashboard to accept or decline it.</p>`),
	entities.TemplateBookingAccepted: newEmailTemplate(entities.TemplateBookingAccepted,
		"Your booking was accepted",
		`<p>Hi {{.name}},</p><p>Your sitter accepted the booking from {{.start_at}} to {{.end_at}} for {{.amount}}.</p><p>Confirm it to receive your invoice.</p>`),
	entities.TemplateBookingDeclined: newEmailTemplate(entities.TemplateBookingDeclined,
		"Your booking was declined",
		`<p>Hi {{.name}},</p><p>Unfortunately the sitter declined the booking from {{.start_at}} to {{.end_at}}.</p>`),
	entities.TemplateBookingCancelled: newEmailTemplate(entities.TemplateBookingCancelled,
		"A booking was cancelled",
		`<p>Hi {{.name}},</p><p>The owner cancelled the booking from {{.start_at}} to {{.end_at}}.</p>`),
	entities.TemplateInvoiceIssued: newEmailTemplate(entities.TemplateInvoiceIssued,
		"Your invoice is ready",
		`<p>Hi {{.name}},</p><p>Invoice {{.invoice_number}} for {{.amount}} is due on {{.due_at}}.</p><p>{{.payment_instructions}}</p>`),
	entities.TemplatePaymentProofToTeam: newEmailTemplate(entities.TemplatePaymentProofToTeam,
		"Payment proof uploaded",
		`<p>A payment proof was uploaded for invoice {{.invoice_number}} ({{.amount}}).</p><p><a href="{{.proof_url}}">View proof</a></p><p>Booking {{.booking_id}}</p>`),
	entities.TemplatePaymentReceived: newEmailTemplate(entities.TemplatePaymentReceived,
		"Payment received for your booking",
		`<p>Hi {{.name}},</p><p>We received the owner's payment for the booking from {{.start_at}} to {{.end_at}}.</p>`),
	entities.TemplateBookingCompleted: newEmailTemplate(entities.TemplateBookingCompleted,
		"Booking completed",
		`<p>Hi {{.name}},</p><p>The booking from {{.start_at}} to {{.end_at}} is completed. A payout of {{.payout_amount}} has been scheduled.</p>`),
}
