package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"oasis/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusNotFound,
		Message: "Cabin could not be found",
	}

	if f.Error() != "Cabin could not be found" {
		t.Errorf("expected error message to be 'Cabin could not be found', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "NotFound",
			err:     failure.NotFound("cabin not found"),
			code:    http.StatusNotFound,
			message: "cabin not found",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("guest already exists"),
			code:    http.StatusConflict,
			message: "guest already exists",
		},
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("startDate must be before endDate"),
			code:    http.StatusBadRequest,
			message: "startDate must be before endDate",
		},
		{
			name:    "Unauthorized",
			err:     failure.Unauthorized("missing authorization header"),
			code:    http.StatusUnauthorized,
			message: "missing authorization header",
		},
		{
			name:    "InternalFromString",
			err:     failure.InternalFromString("Settings could not be loaded"),
			code:    http.StatusInternalServerError,
			message: "Settings could not be loaded",
		},
		{
			name:    "BadGateway",
			err:     failure.BadGateway("Could not fetch countries"),
			code:    http.StatusBadGateway,
			message: "Could not fetch countries",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.err.(*failure.Failure)
			if !ok {
				t.Fatalf("expected *failure.Failure, got %T", tt.err)
			}

			if f.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, f.Code)
			}

			if f.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, f.Message)
			}
		})
	}
}

func TestBadRequest_NilError(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestGetCode(t *testing.T) {
	if code := failure.GetCode(errors.New("plain error")); code != http.StatusInternalServerError {
		t.Errorf("expected %d for plain error, got %d", http.StatusInternalServerError, code)
	}

	wrapped := fmt.Errorf("outer: %w", failure.NotFound("booking not found"))
	if code := failure.GetCode(wrapped); code != http.StatusNotFound {
		t.Errorf("expected %d for wrapped failure, got %d", http.StatusNotFound, code)
	}

	if !failure.IsNotFound(wrapped) {
		t.Error("expected IsNotFound to report true for wrapped not-found failure")
	}
}
