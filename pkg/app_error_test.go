package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("connection refused")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(appErr, cause) {
		t.Fatalf("expected AppError to wrap its cause")
	}
	if appErr.Error() != "INTERNAL_ERROR: An internal error occurred: connection refused" {
		t.Fatalf("unexpected message %q", appErr.Error())
	}

	body := appErr.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected body %+v", body)
	}

	simple := NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound)
	if simple.HTTPStatus != http.StatusNotFound || simple.Unwrap() != nil {
		t.Fatalf("unexpected simple error %+v", simple)
	}
}
