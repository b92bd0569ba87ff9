package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"petsit_booking/internal/adapter/http/handlers/mocks"
	"petsit_booking/internal/domain/entities"
	"petsit_booking/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestPayoutHandler_CompleteBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPayoutUseCase(ctrl)
	uc.EXPECT().CompleteBooking(gomock.Any(), testAdmin, "bk-1").Return(usecase.CompletionResult{
		Booking: entities.Booking{ID: "bk-1", Status: entities.BookingStatusCompleted},
		Payout:  entities.Payout{ID: "po-1", BookingID: "bk-1", AmountCents: 8500, Currency: "EUR", Status: entities.PayoutStatusScheduled},
	}, nil)
	uc.EXPECT().CompleteBooking(gomock.Any(), testAdmin, "bk-2").Return(usecase.CompletionResult{}, usecase.ErrBookingHasNoSitter)
	r := newTestRouter(testAdmin, http.MethodPost, "/v1/admin/bookings/:id/complete", NewPayoutHandler(uc, nil).CompleteBooking)

	w := doJSON(r, http.MethodPost, "/v1/admin/bookings/bk-1/complete", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"amount":"85.00 EUR"`)) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	w = doJSON(r, http.MethodPost, "/v1/admin/bookings/bk-2/complete", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if body := decodeError(t, w); body.Code != "BOOKING_HAS_NO_SITTER" {
		t.Fatalf("expected BOOKING_HAS_NO_SITTER, got %s", body.Code)
	}
}

func TestPayoutHandler_MarkPayoutPaid(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPayoutUseCase(ctrl)
	uc.EXPECT().MarkPaid(gomock.Any(), testAdmin, "po-1", "TRX-9").
		Return(entities.Payout{ID: "po-1", Status: entities.PayoutStatusPaid, TransactionRef: "TRX-9"}, nil)
	uc.EXPECT().MarkPaid(gomock.Any(), testAdmin, "po-1", "").Return(entities.Payout{}, usecase.ErrPayoutNotScheduled)
	uc.EXPECT().MarkPaid(gomock.Any(), testAdmin, "po-x", "").Return(entities.Payout{}, usecase.ErrPayoutNotFound)
	r := newTestRouter(testAdmin, http.MethodPost, "/v1/admin/payouts/:id/paid", NewPayoutHandler(uc, nil).MarkPayoutPaid)

	w := doJSON(r, http.MethodPost, "/v1/admin/payouts/po-1/paid", `{"transaction_ref":"TRX-9"}`)
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"status":"paid"`)) {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
	if w := doJSON(r, http.MethodPost, "/v1/admin/payouts/po-1/paid", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPost, "/v1/admin/payouts/po-x/paid", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestPayoutHandler_ListPayouts(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPayoutUseCase(ctrl)
	uc.EXPECT().List(gomock.Any(), testSitter, entities.PayoutStatusScheduled).Return([]entities.Payout{{ID: "po-1"}}, nil)
	r := newTestRouter(testSitter, http.MethodGet, "/v1/payouts", NewPayoutHandler(uc, nil).ListPayouts)

	if w := doJSON(r, http.MethodGet, "/v1/payouts?status=late", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	w := doJSON(r, http.MethodGet, "/v1/payouts?status=scheduled", "")
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"po-1"`)) {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestSettingsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockISettingsUseCase(ctrl)
	h := NewSettingsHandler(uc, nil)

	uc.EXPECT().GetPlatformFee(gomock.Any(), testAdmin).Return(usecase.PlatformFee{Percent: 15, Source: "default"}, nil)
	r := newTestRouter(testAdmin, http.MethodGet, "/v1/admin/settings/platform-fee", h.GetPlatformFee)
	w := doJSON(r, http.MethodGet, "/v1/admin/settings/platform-fee", "")
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"fee_percent":15`)) {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}

	r = newTestRouter(testAdmin, http.MethodPut, "/v1/admin/settings/platform-fee", h.SetPlatformFee)
	if w := doJSON(r, http.MethodPut, "/v1/admin/settings/platform-fee", `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fee, got %d", w.Code)
	}

	uc.EXPECT().SetPlatformFee(gomock.Any(), testAdmin, 0.0).Return(usecase.PlatformFee{Percent: 0, Source: "settings"}, nil)
	if w := doJSON(r, http.MethodPut, "/v1/admin/settings/platform-fee", `{"fee_percent":0}`); w.Code != http.StatusOK {
		t.Fatalf("expected zero fee to be accepted, got %d", w.Code)
	}

	uc.EXPECT().SetPlatformFee(gomock.Any(), testAdmin, 100.0).Return(usecase.PlatformFee{}, usecase.ErrInvalidFeePercent)
	if w := doJSON(r, http.MethodPut, "/v1/admin/settings/platform-fee", `{"fee_percent":100}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestLedgerHandler_ListBookingEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockILedgerUseCase(ctrl)
	uc.EXPECT().ListByBooking(gomock.Any(), testSitter, "bk-1").Return(nil, usecase.ErrNotBookingParty)
	uc.EXPECT().ListByBooking(gomock.Any(), testSitter, "bk-2").
		Return([]entities.LedgerEvent{{ID: "ev-1", EventName: entities.EventPayoutPaid, ActorRole: entities.UserTypeAdmin}}, nil)
	r := newTestRouter(testSitter, http.MethodGet, "/v1/bookings/:id/events", NewLedgerHandler(uc, nil).ListBookingEvents)

	if w := doJSON(r, http.MethodGet, "/v1/bookings/bk-1/events", ""); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	w := doJSON(r, http.MethodGet, "/v1/bookings/bk-2/events", "")
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"ev-1"`)) {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestNotificationHandler_SendEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockINotificationUseCase(ctrl)
	uc.EXPECT().SendEmail(gomock.Any(), entities.Email{To: []string{"a@b.c"}, Subject: "Hi", HTML: "<p>x</p>"}).
		Return(usecase.Delivery{Fallback: true}, nil)
	r := newTestRouter(entities.SystemActor, http.MethodPost, "/v1/notifications/email", NewNotificationHandler(uc, nil).SendEmail)

	if w := doJSON(r, http.MethodPost, "/v1/notifications/email", `{"to":"a@b.c"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	w := doJSON(r, http.MethodPost, "/v1/notifications/email", `{"to":" a@b.c ","subject":" Hi ","html":"<p>x</p>"}`)
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"fallback":true`)) {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestMapError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{usecase.ErrInvalidBookingDates, http.StatusBadRequest, "INVALID_REQUEST"},
		{fmt.Errorf("wrapped: %w", usecase.ErrInvalidEmail), http.StatusBadRequest, "INVALID_REQUEST"},
		{usecase.ErrAdminOnly, http.StatusForbidden, "FORBIDDEN"},
		{usecase.ErrBookingNotFound, http.StatusNotFound, "BOOKING_NOT_FOUND"},
		{usecase.ErrPayoutNotFound, http.StatusNotFound, "PAYOUT_NOT_FOUND"},
		{usecase.ErrBookingStatusChanged, http.StatusBadRequest, "BOOKING_STATUS_CHANGED"},
		{usecase.ErrInvoiceAlreadyExists, http.StatusBadRequest, "INVOICE_ALREADY_EXISTS"},
		{usecase.ErrInvoiceNotAwaitingPayment, http.StatusBadRequest, "INVOICE_NOT_AWAITING_PAYMENT"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		appErr := mapError(tc.err)
		if appErr.HTTPStatus != tc.status || appErr.Code != tc.code {
			t.Fatalf("mapError(%v) = %d %s; want %d %s", tc.err, appErr.HTTPStatus, appErr.Code, tc.status, tc.code)
		}
	}
	if body := mapError(errors.New("secret detail")).ToHTTPError(); body.Error != "An internal error occurred" {
		t.Fatalf("internal cause leaked: %+v", body)
	}
}
