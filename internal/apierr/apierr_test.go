package apierr

import (
	"errors"
	"net/http"
	"testing"
)

func TestHelpersCarryStatusAndCode(t *testing.T) {
	cases := []struct {
		err    *Error
		status int
	}{
		{NotFound("thing_not_found", "thing not found"), http.StatusNotFound},
		{Forbidden("nope", "not allowed"), http.StatusForbidden},
		{Conflict("already_done", "already done"), http.StatusConflict},
		{Validation("bad_field", "field %q is bad", "x"), http.StatusBadRequest},
		{Upstream("collaborator_failed", "collaborator failed"), http.StatusBadGateway},
	}
	for _, tc := range cases {
		if tc.err.Status != tc.status {
			t.Fatalf("code %q: expected status %d, got %d", tc.err.Code, tc.status, tc.err.Status)
		}
		if tc.err.Error() == "" {
			t.Fatalf("code %q: empty message", tc.err.Code)
		}
	}
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	inner := Conflict("session_already_finalized", "session already finalized")
	wrapped := errors.Join(errors.New("tx failed"), inner)

	var ae *Error
	if !errors.As(wrapped, &ae) {
		t.Fatalf("expected errors.As to find the api error")
	}
	if ae.Code != "session_already_finalized" {
		t.Fatalf("unexpected code %q", ae.Code)
	}
}

func TestErrorMessageFallbacks(t *testing.T) {
	if got := (&Error{Code: "just_code"}).Error(); got != "just_code" {
		t.Fatalf("expected code fallback, got %q", got)
	}
	if got := (&Error{Status: 500}).Error(); got != "api error (500)" {
		t.Fatalf("expected status fallback, got %q", got)
	}
}
