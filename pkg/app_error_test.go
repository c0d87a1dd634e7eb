package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_ToHTTPError(t *testing.T) {
	cause := errors.New("dynamo down")
	e := NewRetryableError("FETCH_ERROR", "Failed to read records", cause, http.StatusBadGateway)

	body := e.ToHTTPError()
	if body.Code != "FETCH_ERROR" || !body.Retryable {
		t.Fatalf("unexpected body: %+v", body)
	}
	if !errors.Is(e, cause) {
		t.Fatalf("expected AppError to unwrap to cause")
	}

	withDetails := NewDomainErrorSimple("LIMIT", "limit", http.StatusUnprocessableEntity).ToHTTPErrorWithDetails(map[string]int{"accepted": 1})
	if withDetails.Details == nil || withDetails.Retryable {
		t.Fatalf("unexpected body: %+v", withDetails)
	}
}
