package failure

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("release: %w", ConcurrencyConflict("escrow status changed"))
	if CodeOf(wrapped) != CodeConcurrencyConflict {
		t.Fatalf("expected concurrency conflict, got %s", CodeOf(wrapped))
	}
	if CodeOf(errors.New("boom")) != CodeInternal {
		t.Fatalf("plain errors must map to internal")
	}
	if HasCode(nil, CodeNotFound) {
		t.Fatalf("nil error has no code")
	}
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"gateway", Gateway(errors.New("timeout"), "capture"), true},
		{"conflict", ConcurrencyConflict("lost race"), true},
		{"validation", Validation("amount below minimum"), false},
		{"unauthorized", Unauthorized("not the client"), false},
		{"transition", InvalidTransition("escrow", "released", "funded"), false},
		{"plain", errors.New("x"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Retryable(tt.err); got != tt.want {
				t.Fatalf("Retryable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorsIsByCode(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NotFound("escrow not found"))
	if !errors.Is(err, NotFound("")) {
		t.Fatalf("expected code match")
	}
	if errors.Is(err, Unauthorized("")) {
		t.Fatalf("different code must not match")
	}
	cause := errors.New("card declined")
	if !errors.Is(Gateway(cause, "authorize"), cause) {
		t.Fatalf("gateway error must unwrap to its cause")
	}
}
