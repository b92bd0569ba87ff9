package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"petsit_booking/internal/adapter/http/handlers"
	"petsit_booking/internal/adapter/http/handlers/mocks"
	"petsit_booking/internal/adapter/http/middleware"
	"petsit_booking/internal/domain/entities"
	"petsit_booking/internal/infrastructure/metrics"
	"petsit_booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "test-jwt-secret"

type fakeIdempotencyStore struct {
	claimed map[string]bool
}

func (f *fakeIdempotencyStore) Claim(_ context.Context, key string) (bool, error) {
	if f.claimed[key] {
		return false, nil
	}
	f.claimed[key] = true
	return true, nil
}

func (f *fakeIdempotencyStore) Release(_ context.Context, key string) error {
	delete(f.claimed, key)
	return nil
}

type testUseCases struct {
	bookings      *mocks.MockIBookingUseCase
	payments      *mocks.MockIPaymentUseCase
	payouts       *mocks.MockIPayoutUseCase
	settings      *mocks.MockISettingsUseCase
	ledger        *mocks.MockILedgerUseCase
	notifications *mocks.MockINotificationUseCase
	idempotency   *fakeIdempotencyStore
}

func newTestServer(t *testing.T) (*gin.Engine, testUseCases) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := testUseCases{
		bookings:      mocks.NewMockIBookingUseCase(ctrl),
		payments:      mocks.NewMockIPaymentUseCase(ctrl),
		payouts:       mocks.NewMockIPayoutUseCase(ctrl),
		settings:      mocks.NewMockISettingsUseCase(ctrl),
		ledger:        mocks.NewMockILedgerUseCase(ctrl),
		notifications: mocks.NewMockINotificationUseCase(ctrl),
		idempotency:   &fakeIdempotencyStore{claimed: map[string]bool{}},
	}
	router := NewRouter(Dependencies{
		Bookings:      handlers.NewBookingHandler(uc.bookings, nil),
		Payments:      handlers.NewPaymentHandler(uc.payments, nil),
		Payouts:       handlers.NewPayoutHandler(uc.payouts, nil),
		Settings:      handlers.NewSettingsHandler(uc.settings, nil),
		Ledger:        handlers.NewLedgerHandler(uc.ledger, nil),
		Notifications: handlers.NewNotificationHandler(uc.notifications, nil),
		Auth:          middleware.NewAuthenticator(testSecret),
		NotifySecret:  "notify-secret",
		Idempotency:   uc.idempotency,
		Metrics:       metrics.New("petsit_booking_test", "test"),
	})
	return router, uc
}

func token(t *testing.T, subject string, role entities.UserType) string {
	t.Helper()
	claims := middleware.Claims{
		Email:    subject + "@example.com",
		UserType: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func serve(router *gin.Engine, method, path, bearer, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_PublicRoutes(t *testing.T) {
	router, _ := newTestServer(t)

	w := serve(router, http.MethodGet, "/v1/ping", "", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"pong"`)

	w = serve(router, http.MethodGet, "/metrics", "", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "booking_http_requests_total")

	w = serve(router, http.MethodOptions, "/v1/bookings", "", "", map[string]string{"Origin": "https://app.example"})
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRouter_Authentication(t *testing.T) {
	router, _ := newTestServer(t)

	w := serve(router, http.MethodGet, "/v1/bookings", "", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"UNAUTHORIZED"`)

	w = serve(router, http.MethodGet, "/v1/bookings", "not-a-jwt", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_RoleGuards(t *testing.T) {
	router, uc := newTestServer(t)
	sitter := token(t, "sitter-1", entities.UserTypeSitter)
	owner := token(t, "owner-1", entities.UserTypeOwner)

	w := serve(router, http.MethodPost, "/v1/bookings/bk-1/confirm", sitter, "", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = serve(router, http.MethodPost, "/v1/admin/bookings/bk-1/complete", owner, "", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = serve(router, http.MethodGet, "/v1/payouts", owner, "", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	uc.bookings.EXPECT().
		OwnerConfirm(gomock.Any(), entities.Actor{ID: "owner-1", Role: entities.UserTypeOwner, Email: "owner-1@example.com"}, "bk-1").
		Return(usecase.ConfirmResult{Booking: entities.Booking{ID: "bk-1", Status: entities.BookingStatusConfirmed}}, nil)
	w = serve(router, http.MethodPost, "/v1/bookings/bk-1/confirm", owner, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestRouter_AdminRoutes(t *testing.T) {
	router, uc := newTestServer(t)
	admin := token(t, "admin-1", entities.UserTypeAdmin)

	uc.settings.EXPECT().GetPlatformFee(gomock.Any(), gomock.Any()).Return(usecase.PlatformFee{Percent: 15, Source: "default"}, nil)
	w := serve(router, http.MethodGet, "/v1/admin/settings/platform-fee", admin, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	uc.ledger.EXPECT().ListByBooking(gomock.Any(), gomock.Any(), "bk-1").Return(nil, nil)
	w = serve(router, http.MethodGet, "/v1/admin/bookings/bk-1/events", admin, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	uc.payments.EXPECT().StartDueBookings(gomock.Any(), gomock.Any()).Return(nil, nil)
	w = serve(router, http.MethodPost, "/v1/admin/bookings/start-due", admin, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_IdempotencyKey(t *testing.T) {
	router, uc := newTestServer(t)
	owner := token(t, "owner-1", entities.UserTypeOwner)
	headers := map[string]string{middleware.IdempotencyKeyHeader: "confirm-1"}

	uc.bookings.EXPECT().OwnerConfirm(gomock.Any(), gomock.Any(), "bk-1").
		Return(usecase.ConfirmResult{Booking: entities.Booking{ID: "bk-1"}}, nil).Times(1)

	w := serve(router, http.MethodPost, "/v1/bookings/bk-1/confirm", owner, "", headers)
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(router, http.MethodPost, "/v1/bookings/bk-1/confirm", owner, "", headers)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"DUPLICATE_REQUEST"`)
}

func TestRouter_NotifyEmail(t *testing.T) {
	router, uc := newTestServer(t)
	body := `{"to":["a@example.com"],"subject":"Hello","html":"<p>hi</p>"}`

	w := serve(router, http.MethodPost, "/v1/notifications/email", "", body, map[string]string{middleware.NotifySecretHeader: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	uc.notifications.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return(usecase.Delivery{Delivered: true}, nil)
	w = serve(router, http.MethodPost, "/v1/notifications/email", "", body, map[string]string{middleware.NotifySecretHeader: "notify-secret"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"delivered":true`)
}
