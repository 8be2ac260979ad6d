package debank

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorForStatus(t *testing.T) {
	tests := []struct {
		status  int
		code    Code
		message string
	}{
		{400, CodeInvalidParams, "INVALID_PARAMS: Invalid params or body"},
		{401, CodeInvalidAccessKey, "INVALID_ACCESS_KEY: You must authenticate your request with an access key"},
		{403, CodeCapacityLimit, "CAPACITY_LIMIT: You have hit your capacity limit"},
		{429, CodeRateLimit, "RATE_LIMIT: You have exceeded our ratelimit for API"},
		{500, CodeInternalServerError, "INTERNAL_SERVER_ERROR: We are unable to process your request right now"},
		{418, CodeUnknownStatus, "UNKNOWN_STATUS: Unknown response status: 418"},
		{503, CodeUnknownStatus, "UNKNOWN_STATUS: Unknown response status: 503"},
	}
	for _, tt := range tests {
		err := errorForStatus(tt.status)
		if err.Code != tt.code {
			t.Errorf("%d: code = %s, want %s", tt.status, err.Code, tt.code)
		}
		if err.Error() != tt.message {
			t.Errorf("%d: message = %q, want %q", tt.status, err.Error(), tt.message)
		}
	}
}

func TestErrorIs(t *testing.T) {
	err := fmt.Errorf("fetching balance: %w", errorForStatus(429))

	if !errors.Is(err, ErrRateLimit) {
		t.Error("expected match on RATE_LIMIT")
	}
	if errors.Is(err, ErrCapacityLimit) {
		t.Error("unexpected match on CAPACITY_LIMIT")
	}
	if !errors.Is(err, &Error{}) {
		t.Error("empty code should match any *Error")
	}
	if errors.Is(err, ErrOperationNotExist) {
		t.Error("API error must not match ErrOperationNotExist")
	}
}

func TestOperationNotExistMessage(t *testing.T) {
	if got := ErrOperationNotExist.Error(); got != "API does not exists" {
		t.Errorf("message = %q", got)
	}
}
