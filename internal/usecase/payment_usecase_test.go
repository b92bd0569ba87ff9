package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"petsit_booking/internal/domain/entities"
	"petsit_booking/internal/usecase/interfaces"
	mock_interfaces "petsit_booking/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type paymentDeps struct {
	bookings  *mock_interfaces.MockIBookingRepository
	invoices  *mock_interfaces.MockIInvoiceRepository
	payments  *mock_interfaces.MockIPaymentRepository
	lifecycle *mock_interfaces.MockILifecycleStore
	gateway   *mock_interfaces.MockICheckoutGateway
	audit     *mock_interfaces.MockIAuditRecorder
	notifier  *mock_interfaces.MockINotificationDispatcher
}

func newPaymentUseCaseForTest(t *testing.T) (*PaymentUseCase, paymentDeps) {
	ctrl := gomock.NewController(t)
	d := paymentDeps{
		bookings:  mock_interfaces.NewMockIBookingRepository(ctrl),
		invoices:  mock_interfaces.NewMockIInvoiceRepository(ctrl),
		payments:  mock_interfaces.NewMockIPaymentRepository(ctrl),
		lifecycle: mock_interfaces.NewMockILifecycleStore(ctrl),
		gateway:   mock_interfaces.NewMockICheckoutGateway(ctrl),
		audit:     mock_interfaces.NewMockIAuditRecorder(ctrl),
		notifier:  mock_interfaces.NewMockINotificationDispatcher(ctrl),
	}
	uc := NewPaymentUseCase(PaymentUseCaseParams{
		Bookings:  d.bookings,
		Invoices:  d.invoices,
		Payments:  d.payments,
		Lifecycle: d.lifecycle,
		Gateway:   d.gateway,
		Audit:     d.audit,
		Notifier:  d.notifier,
	})
	uc.now = func() time.Time { return fixedNow }
	return uc, d
}

func sampleInvoice() entities.Invoice {
	return entities.Invoice{
		ID:            "inv-1",
		BookingID:     "bk-1",
		InvoiceNumber: "INV-20250310-000001",
		IssuedAt:      fixedNow.Add(-time.Hour),
		DueAt:         fixedNow.Add(48 * time.Hour),
		TotalCents:    10000,
		Currency:      "EUR",
		Status:        entities.InvoiceStatusAwaitingPayment,
	}
}

func TestPaymentUseCase_UploadProof(t *testing.T) {
	t.Run("invalid proof url", func(t *testing.T) {
		uc := NewPaymentUseCase(PaymentUseCaseParams{})
		for _, raw := range []string{"", "  ", "ftp://files/proof.png", "not a url"} {
			_, err := uc.UploadProof(context.Background(), owner, "bk-1", raw)
			if !errors.Is(err, ErrInvalidProofURL) {
				t.Fatalf("%q: expected ErrInvalidProofURL, got %v", raw, err)
			}
		}
	})

	t.Run("requires confirmed booking", func(t *testing.T) {
		uc, d := newPaymentUseCaseForTest(t)
		d.bookings.EXPECT().GetByID(gomock.Any(), "bk-1").Return(sampleBooking(entities.BookingStatusAccepted), nil)

		_, err := uc.UploadProof(context.Background(), owner, "bk-1", "https://cdn.example.com/proof.png")
		if !errors.Is(err, ErrInvalidBookingStatus) {
			t.Fatalf("expected ErrInvalidBookingStatus, got %v", err)
		}
	})

	t.Run("invoice missing", func(t *testing.T) {
		uc, d := newPaymentUseCaseForTest(t)
		d.bookings.EXPECT().GetByID(gomock.Any(), "bk-1").Return(sampleBooking(entities.BookingStatusConfirmed), nil)
		d.invoices.EXPECT().GetByBookingID(gomock.Any(), "bk-1").Return(entities.Invoice{}, nil)

		_, err := uc.UploadProof(context.Background(), owner, "bk-1", "https://cdn.example.com/proof.png")
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("success records bank transfer payment", func(t *testing.T) {
		uc, d := newPaymentUseCaseForTest(t)
		d.bookings.EXPECT().GetByID(gomock.Any(), "bk-1").Return(sampleBooking(entities.BookingStatusConfirmed), nil)
		d.invoices.EXPECT().GetByBookingID(gomock.Any(), "bk-1").Return(sampleInvoice(), nil)
		d.lifecycle.EXPECT().RecordPaymentProof(gomock.Any(), owner.ID, gomock.Any(), fixedNow).
			DoAndReturn(func(_ context.Context, _ string, p entities.Payment, _ time.Time) error {
				if p.Method != entities.PaymentMethodBankTransfer || p.AmountCents != 10000 || p.InvoiceID != "inv-1" {
					t.Fatalf("unexpected payment %+v", p)
				}
				if p.ReceivedAt != nil {
					t.Fatalf("proof upload must not mark payment received")
				}
				return nil
			})
		d.audit.EXPECT().Record(gomock.Any(), owner, entities.EventPaymentProofUploaded, "bk-1", gomock.Any()).Return(nil)
		d.notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Do(func(_ context.Context, n entities.Notification) {
			if !n.ToAdmin || n.Template != entities.TemplatePaymentProofToTeam {
				t.Fatalf("unexpected notification %+v", n)
			}
		})

		got, err := uc.UploadProof(context.Background(), owner, "bk-1", "https://cdn.example.com/proof.png")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ProofURL != "https://cdn.example.com/proof.png" {
			t.Fatalf("unexpected proof url %s", got.ProofURL)
		}
	})
}

func TestPaymentUseCase_MarkPaymentReceived(t *testing.T) {
	t.Run("admin only", func(t *testing.T) {
		uc := NewPaymentUseCase(PaymentUseCaseParams{})
		_, err := uc.MarkPaymentReceived(context.Background(), owner, "bk-1", 10000, "")
		if !errors.Is(err, ErrAdminOnly) {
			t.Fatalf("expected ErrAdminOnly, got %v", err)
		}
	})

	t.Run("amount mismatch", func(t *testing.T) {
		uc, d := newPaymentUseCaseForTest(t)
		d.bookings.EXPECT().GetByID(gomock.Any(), "bk-1").Return(sampleBooking(entities.BookingStatusConfirmed), nil).Times(3)
		d.invoices.EXPECT().GetByBookingID(gomock.Any(), "bk-1").Return(sampleInvoice(), nil).Times(3)

		for _, amount := range []int64{0, 9999, 10001} {
			_, err := uc.MarkPaymentReceived(context.Background(), admin, "bk-1", amount, "")
			if !errors.Is(err, ErrAmountMismatch) {
				t.Fatalf("amount %d: expected ErrAmountMismatch, got %v", amount, err)
			}
		}
	})

	t.Run("invoice not awaiting payment", func(t *testing.T) {
		uc, d := newPaymentUseCaseForTest(t)
		inv := sampleInvoice()
		inv.Status = entities.InvoiceStatusPaidEscrow
		d.bookings.EXPECT().GetByID(gomock.Any(), "bk-1").Return(sampleBooking(entities.BookingStatusConfirmed), nil)
		d.invoices.EXPECT().GetByBookingID(gomock.Any(), "bk-1").Return(inv, nil)

		_, err := uc.MarkPaymentReceived(context.Background(), admin, "bk-1", 10000, "")
		if !errors.Is(err, ErrInvoiceNotAwaitingPayment) {
			t.Fatalf("expected ErrInvoiceNotAwaitingPayment, got %v", err)
		}
	})

	t.Run("start more than 24h away keeps booking confirmed", func(t *testing.T) {
		uc, d := newPaymentUseCaseForTest(t)
		proof := entities.Payment{ID: "pay-1", InvoiceID: "inv-1", CreatedAt: fixedNow.Add(-time.Hour)}

		d.bookings.EXPECT().GetByID(gomock.Any(), "bk-1").Return(sampleBooking(entities.BookingStatusConfirmed), nil)
		d.invoices.EXPECT().GetByBookingID(gomock.Any(), "bk-1").Return(sampleInvoice(), nil)
		d.payments.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return([]entities.Payment{proof}, nil)
		d.lifecycle.EXPECT().SettlePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.PaymentSettlement) error {
			if s.StartBooking || s.NewPayment || s.Payment.ID != "pay-1" {
				t.Fatalf("unexpected settlement %+v", s)
			}
			return nil
		})
		d.audit.EXPECT().Record(gomock.Any(), admin, entities.EventPaymentReceived, "bk-1", gomock.Any()).Return(nil)
		d.notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any())

		got, err := uc.MarkPaymentReceived(context.Background(), admin, "bk-1", 10000, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Booking.Status != entities.BookingStatusConfirmed || got.Booking.PaymentStatus != entities.BookingPaymentPaid {
			t.Fatalf("unexpected booking state %s/%s", got.Booking.Status, got.Booking.PaymentStatus)
		}
		if got.Invoice.Status != entities.InvoiceStatusPaidEscrow || got.Payment.ReceivedAt == nil {
			t.Fatalf("unexpected settlement result %+v", got)
		}
	})

	t.Run("start within 24h moves booking in progress with manual payment", func(t *testing.T) {
		uc, d := newPaymentUseCaseForTest(t)
		b := sampleBooking(entities.BookingStatusConfirmed)
		b.StartAt = fixedNow.Add(6 * time.Hour)

		d.bookings.EXPECT().GetByID(gomock.Any(), "bk-1").Return(b, nil)
		d.invoices.EXPECT().GetByBookingID(gomock.Any(), "bk-1").Return(sampleInvoice(), nil)
		d.payments.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return(nil, nil)
		d.lifecycle.EXPECT().SettlePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.PaymentSettlement) error {
			if !s.StartBooking || !s.NewPayment || s.Payment.Method != entities.PaymentMethodManual {
				t.Fatalf("unexpected settlement %+v", s)
			}
			return nil
		})
		d.audit.EXPECT().Record(gomock.Any(), admin, entities.EventPaymentReceived, "bk-1", gomock.Any()).Return(nil)
		d.audit.EXPECT().Record(gomock.Any(), admin, entities.EventBookingStarted, "bk-1", gomock.Any()).Return(nil)
		d.notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any())

		got, err := uc.MarkPaymentReceived(context.Background(), admin, "bk-1", 10000, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Booking.Status != entities.BookingStatusInProgress {
			t.Fatalf("expected in_progress, got %s", got.Booking.Status)
		}
	})

	t.Run("lost race", func(t *testing.T) {
		uc, d := newPaymentUseCaseForTest(t)
		d.bookings.EXPECT().GetByID(gomock.Any(), "bk-1").Return(sampleBooking(entities.BookingStatusConfirmed), nil)
		d.invoices.EXPECT().GetByBookingID(gomock.Any(), "bk-1").Return(sampleInvoice(), nil)
		d.payments.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return(nil, nil)
		d.lifecycle.EXPECT().SettlePayment(gomock.Any(), gomock.Any()).Return(interfaces.ErrStaleStatus)

		_, err := uc.MarkPaymentReceived(context.Background(), admin, "bk-1", 10000, entities.PaymentMethodBankTransfer)
		if !errors.Is(err, ErrBookingStatusChanged) {
			t.Fatalf("expected ErrBookingStatusChanged, got %v", err)
		}
	})
}

func TestPaymentUseCase_StartCheckout(t *testing.T) {
	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(PaymentUseCaseParams{})
		_, err := uc.StartCheckout(context.Background(), owner, "bk-1")
		if !errors.Is(err, ErrCheckoutNotConfigured) {
			t.Fatalf("expected ErrCheckoutNotConfigured, got %v", err)
		}
	})

	t.Run("gateway error", func(t *testing.T) {
		uc, d := newPaymentUseCaseForTest(t)
		d.bookings.EXPECT().GetByID(gomock.Any(), "bk-1").Return(sampleBooking(entities.BookingStatusConfirmed), nil)
		d.invoices.EXPECT().GetByBookingID(gomock.Any(), "bk-1").Return(sampleInvoice(), nil)
		d.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(interfaces.CheckoutSession{}, errors.New("provider down"))

		_, err := uc.StartCheckout(context.Background(), owner, "bk-1")
		if err == nil || err.Error() != "provider down" {
			t.Fatalf("expected provider error, got %v", err)
		}
	})

	t.Run("success stores session", func(t *testing.T) {
		uc, d := newPaymentUseCaseForTest(t)
		updated := sampleInvoice()
		updated.CheckoutSessionID = "pref-1"
		updated.CheckoutURL = "https://checkout.example.com/pref-1"

		d.bookings.EXPECT().GetByID(gomock.Any(), "bk-1").Return(sampleBooking(entities.BookingStatusConfirmed), nil)
		d.invoices.EXPECT().GetByBookingID(gomock.Any(), "bk-1").Return(sampleInvoice(), nil)
		d.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutSession, error) {
			if req.AmountCents != 10000 || req.PayerEmail != owner.Email || req.BookingID != "bk-1" {
				t.Fatalf("unexpected checkout request %+v", req)
			}
			return interfaces.CheckoutSession{ID: "pref-1", RedirectURL: "https://checkout.example.com/pref-1"}, nil
		})
		d.invoices.EXPECT().SetCheckoutSession(gomock.Any(), "bk-1", "pref-1", "https://checkout.example.com/pref-1").Return(updated, nil)
		d.audit.EXPECT().Record(gomock.Any(), owner, entities.EventCheckoutStarted, "bk-1", gomock.Any()).Return(nil)

		got, err := uc.StartCheckout(context.Background(), owner, "bk-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.CheckoutURL != "https://checkout.example.com/pref-1" {
			t.Fatalf("unexpected checkout url %s", got.CheckoutURL)
		}
	})
}

func TestPaymentUseCase_StartDueBookings(t *testing.T) {
	uc, d := newPaymentUseCaseForTest(t)

	due := sampleBooking(entities.BookingStatusConfirmed)
	due.ID = "bk-due"
	due.PaymentStatus = entities.BookingPaymentPaid
	due.StartAt = fixedNow.Add(2 * time.Hour)

	unpaid := sampleBooking(entities.BookingStatusConfirmed)
	unpaid.ID = "bk-unpaid"
	unpaid.StartAt = fixedNow.Add(2 * time.Hour)

	later := sampleBooking(entities.BookingStatusConfirmed)
	later.ID = "bk-later"
	later.PaymentStatus = entities.BookingPaymentPaid

	raced := due
	raced.ID = "bk-raced"

	started := due
	started.Status = entities.BookingStatusInProgress

	d.bookings.EXPECT().ListByStatus(gomock.Any(), entities.BookingStatusConfirmed).Return([]entities.Booking{due, unpaid, later, raced}, nil)
	d.bookings.EXPECT().Transition(gomock.Any(), "bk-due", entities.TransitionPaymentStart, gomock.Any(), entities.BookingPatch{}).Return(started, nil)
	d.bookings.EXPECT().Transition(gomock.Any(), "bk-raced", entities.TransitionPaymentStart, gomock.Any(), entities.BookingPatch{}).Return(entities.Booking{}, interfaces.ErrStaleStatus)
	d.audit.EXPECT().Record(gomock.Any(), admin, entities.EventBookingStarted, "bk-due", gomock.Any()).Return(nil)

	got, err := uc.StartDueBookings(context.Background(), admin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "bk-due" {
		t.Fatalf("unexpected started bookings %+v", got)
	}
}

func TestPaymentUseCase_ListPayments(t *testing.T) {
	uc, d := newPaymentUseCaseForTest(t)
	first := entities.Payment{ID: "pay-1", CreatedAt: fixedNow.Add(-2 * time.Hour)}
	second := entities.Payment{ID: "pay-2", CreatedAt: fixedNow.Add(-time.Hour)}

	d.bookings.EXPECT().GetByID(gomock.Any(), "bk-1").Return(sampleBooking(entities.BookingStatusConfirmed), nil)
	d.invoices.EXPECT().GetByBookingID(gomock.Any(), "bk-1").Return(sampleInvoice(), nil)
	d.payments.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return([]entities.Payment{second, first}, nil)

	got, err := uc.ListPayments(context.Background(), sitter, "bk-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "pay-1" {
		t.Fatalf("expected payments ordered by creation, got %+v", got)
	}
}

func TestLatestUnreceived(t *testing.T) {
	received := fixedNow
	payments := []entities.Payment{
		{ID: "old", CreatedAt: fixedNow.Add(-3 * time.Hour)},
		{ID: "new", CreatedAt: fixedNow.Add(-time.Hour)},
		{ID: "done", CreatedAt: fixedNow, ReceivedAt: &received},
	}
	got, ok := latestUnreceived(payments)
	if !ok || got.ID != "new" {
		t.Fatalf("expected new, got %+v (found=%v)", got, ok)
	}
	if _, ok := latestUnreceived(nil); ok {
		t.Fatalf("expected no payment")
	}
}
