package errors

import (
	"fmt"
	"testing"
)

func TestErrValidationError(t *testing.T) {
	err := &ErrValidation{Field: "amount", Message: "must be positive"}
	if got, want := err.Error(), "amount: must be positive"; got != want {
		t.Fatalf("unexpected error string: got %q want %q", got, want)
	}
}

func TestIsValidation(t *testing.T) {
	wrapped := fmt.Errorf("save prediction: %w", NewValidation("timeframe", "is required"))
	if !IsValidation(wrapped) {
		t.Fatal("expected wrapped validation error to be detected")
	}
	if IsValidation(fmt.Errorf("%w: boom", ErrUpstream)) {
		t.Fatal("upstream error must not be reported as validation")
	}
}
