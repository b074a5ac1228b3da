package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructorsCarryStatusAndCode(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		code   string
		status int
	}{
		{"not found", NotFound("Space"), CodeNotFound, http.StatusNotFound},
		{"not found with id", NotFoundWithID("Booking", "abc"), CodeNotFound, http.StatusNotFound},
		{"validation", Validation("bad input", nil), CodeValidation, http.StatusBadRequest},
		{"invalid input", InvalidInput("bad id"), CodeInvalidInput, http.StatusBadRequest},
		{"conflict", Conflict("occupied"), CodeConflict, http.StatusBadRequest},
		{"internal", Internal("boom", errors.New("cause")), CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("code = %s, want %s", tt.err.Code, tt.code)
			}
			if tt.err.StatusCode() != tt.status {
				t.Errorf("status = %d, want %d", tt.err.StatusCode(), tt.status)
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", Conflict("occupied"))
	if !IsCode(err, CodeConflict) {
		t.Error("IsCode should see through wrapping")
	}
	if IsCode(err, CodeNotFound) {
		t.Error("IsCode matched the wrong code")
	}
	if IsCode(errors.New("plain"), CodeConflict) {
		t.Error("IsCode matched a non-AppError")
	}
}

func TestAsAppError(t *testing.T) {
	original := NotFound("Space")
	if got := AsAppError(original); got != original {
		t.Error("AsAppError should return the original AppError")
	}

	plain := errors.New("boom")
	converted := AsAppError(plain)
	if converted.Code != CodeInternal {
		t.Errorf("expected internal code, got %s", converted.Code)
	}
	if !errors.Is(converted, plain) {
		t.Error("converted error should wrap the original")
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := Internal("boom", cause)
	if !errors.Is(err, cause) {
		t.Error("Internal should wrap its cause")
	}
}
