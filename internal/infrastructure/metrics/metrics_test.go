package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestLifecycleEvent(t *testing.T) {
	m := newMetrics(prometheus.NewRegistry(), "petsit_booking", "test")

	m.LifecycleEvent("booking_confirmed")
	m.LifecycleEvent("booking_confirmed")

	got := testutil.ToFloat64(m.lifecycleEvents.WithLabelValues("booking_confirmed"))
	if got != 2 {
		t.Fatalf("expected 2 events, got %v", got)
	}
}

func TestNotification(t *testing.T) {
	m := newMetrics(prometheus.NewRegistry(), "", "")

	m.Notification("invoice_issued", NotificationFallback)

	got := testutil.ToFloat64(m.notifications.WithLabelValues("invoice_issued", NotificationFallback))
	if got != 1 {
		t.Fatalf("expected 1 notification, got %v", got)
	}
}

func TestObserveRequest(t *testing.T) {
	m := newMetrics(prometheus.NewRegistry(), "petsit_booking", "test")

	m.ObserveRequest(http.MethodPost, "/v1/bookings/:id/accept", http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodPost, "/v1/bookings/:id/accept", "200")); got != 1 {
		t.Fatalf("expected 1 request, got %v", got)
	}
	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "unmatched", "404")); got != 1 {
		t.Fatalf("expected 1 unmatched request, got %v", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	m.LifecycleEvent("booking_created")
	m.Notification("booking_requested", NotificationSent)
	m.ObserveRequest(http.MethodGet, "/v1/ping", http.StatusOK, time.Millisecond)
}

func TestHandlerExposesCounters(t *testing.T) {
	m := New("petsit_booking", "test")
	m.LifecycleEvent("payout_scheduled")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `booking_lifecycle_events_total{env="test",event="payout_scheduled",service="petsit_booking"} 1`) {
		t.Fatalf("expected lifecycle counter in output, got %s", rec.Body.String())
	}
}
