package pkg

import (
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestAppError_ToHTTPErrorHidesCause(t *testing.T) {
	cause := errors.New("dynamodb: connection reset")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	body := appErr.ToHTTPError()
	if body.Success {
		t.Fatalf("expected success=false")
	}
	if strings.Contains(body.Error, "dynamodb") {
		t.Fatalf("cause leaked into response: %q", body.Error)
	}
	if !errors.Is(appErr, cause) {
		t.Fatalf("expected errors.Is to reach the cause")
	}
	if !strings.Contains(appErr.Error(), "connection reset") {
		t.Fatalf("expected Error() to include the cause, got %q", appErr.Error())
	}
}

func TestNewDomainError_DefaultsTo500(t *testing.T) {
	appErr := NewDomainError("X", "x", nil, 0)
	if appErr.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", appErr.HTTPStatus)
	}
}

func TestOK(t *testing.T) {
	env := OK(map[string]string{"id": "b-1"})
	if !env.Success || env.Data == nil {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}
