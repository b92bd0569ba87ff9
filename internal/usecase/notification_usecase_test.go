package usecase

import (
	"context"
	"errors"
	"testing"

	"petsit_booking/internal/domain/entities"
	mock_interfaces "petsit_booking/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationUseCase_SendEmail(t *testing.T) {
	t.Run("validates payload", func(t *testing.T) {
		uc := NewNotificationUseCase(NotificationUseCaseParams{})
		_, err := uc.SendEmail(context.Background(), entities.Email{To: []string{" "}, Subject: "hi", HTML: "<p>x</p>"})
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("no provider falls back to console", func(t *testing.T) {
		uc := NewNotificationUseCase(NotificationUseCaseParams{})
		got, err := uc.SendEmail(context.Background(), entities.Email{To: []string{"a@example.com"}, Subject: "hi", HTML: "<p>x</p>"})
		require.NoError(t, err)
		assert.Equal(t, Delivery{Fallback: true}, got)
	})

	t.Run("provider failure falls back to console", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIEmailProvider(ctrl)
		uc := NewNotificationUseCase(NotificationUseCaseParams{Provider: provider})

		provider.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("rate limited"))

		got, err := uc.SendEmail(context.Background(), entities.Email{To: []string{"a@example.com"}, Subject: "hi", HTML: "<p>x</p>"})
		require.NoError(t, err)
		assert.True(t, got.Fallback)
		assert.False(t, got.Delivered)
	})

	t.Run("provider success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIEmailProvider(ctrl)
		uc := NewNotificationUseCase(NotificationUseCaseParams{Provider: provider})

		provider.EXPECT().Send(gomock.Any(), entities.Email{
			To:      []string{"a@example.com"},
			Subject: "hi",
			HTML:    "<p>x</p>",
			Tag:     "direct",
		}).Return(nil)

		got, err := uc.SendEmail(context.Background(), entities.Email{To: []string{" a@example.com "}, Subject: " hi ", HTML: "<p>x</p>"})
		require.NoError(t, err)
		assert.Equal(t, Delivery{Delivered: true}, got)
	})
}

func TestNotificationUseCase_Dispatch(t *testing.T) {
	t.Run("renders template for profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIEmailProvider(ctrl)
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewNotificationUseCase(NotificationUseCaseParams{Provider: provider, Profiles: profiles})

		profiles.EXPECT().GetByID(gomock.Any(), owner.ID).Return(entities.Profile{ID: owner.ID, Email: "owner@example.com", FullName: "Ana"}, nil)
		provider.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e entities.Email) error {
			assert.Equal(t, []string{"owner@example.com"}, e.To)
			assert.Equal(t, "Your invoice is ready", e.Subject)
			assert.Equal(t, entities.TemplateInvoiceIssued, e.Tag)
			assert.Contains(t, e.HTML, "Hi Ana")
			assert.Contains(t, e.HTML, "INV-20250310-000001")
			return nil
		})

		uc.Dispatch(context.Background(), entities.Notification{
			Template:    entities.TemplateInvoiceIssued,
			RecipientID: owner.ID,
			BookingID:   "bk-1",
			Data: map[string]any{
				"invoice_number":       "INV-20250310-000001",
				"amount":               "100.00 EUR",
				"due_at":               "2025-03-13",
				"payment_instructions": "Pay by transfer",
			},
		})
	})

	t.Run("admin notification goes to team address", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIEmailProvider(ctrl)
		uc := NewNotificationUseCase(NotificationUseCaseParams{Provider: provider, AdminEmail: "team@example.com"})

		provider.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e entities.Email) error {
			assert.Equal(t, []string{"team@example.com"}, e.To)
			return nil
		})

		uc.Dispatch(context.Background(), entities.Notification{
			Template: entities.TemplatePaymentProofToTeam,
			ToAdmin:  true,
			Data:     map[string]any{"proof_url": "https://cdn.example.com/p.png"},
		})
	})

	t.Run("profile lookup failure does not send", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIEmailProvider(ctrl)
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewNotificationUseCase(NotificationUseCaseParams{Provider: provider, Profiles: profiles})

		profiles.EXPECT().GetByID(gomock.Any(), sitter.ID).Return(entities.Profile{}, errors.New("dynamo down"))

		uc.Dispatch(context.Background(), entities.Notification{Template: entities.TemplateBookingRequested, RecipientID: sitter.ID})
	})

	t.Run("unknown template is dropped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIEmailProvider(ctrl)
		uc := NewNotificationUseCase(NotificationUseCaseParams{Provider: provider})

		uc.Dispatch(context.Background(), entities.Notification{Template: "nope"})
	})
}

func TestEmailCatalogCoversTemplates(t *testing.T) {
	for _, name := range []string{
		entities.TemplateBookingRequested,
		entities.TemplateBookingAccepted,
		entities.TemplateBookingDeclined,
		entities.TemplateBookingCancelled,
		entities.TemplateInvoiceIssued,
		entities.TemplatePaymentProofToTeam,
		entities.TemplatePaymentReceived,
		entities.TemplateBookingCompleted,
	} {
		tmpl, ok := emailCatalog[name]
		require.True(t, ok, name)
		email, err := tmpl.render(map[string]any{"name": "there"})
		require.NoError(t, err, name)
		assert.NotEmpty(t, email.Subject, name)
		assert.NotEmpty(t, email.HTML, name)
	}
}
