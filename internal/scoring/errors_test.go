package scoring

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsTransport(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"timeout", errors.New("context deadline exceeded (Client.Timeout)"), false},
		{"timeout keyword", errors.New("request timeout after 30s"), true},
		{"connection refused", errors.New("dial tcp 127.0.0.1:8756: connect: connection refused"), true},
		{"network down", errors.New("network is unreachable"), true},
		{"fetch failed", errors.New("fetch failed"), true},
		{"validation error", errors.New("userAnswer must not be empty"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransport(tt.err); got != tt.want {
				t.Errorf("IsTransport(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"status line", fmt.Errorf("scoring sidecar: 404 Not Found"), true},
		{"detail", fmt.Errorf("scoring sidecar: 404 card c1 not found"), true},
		{"gone", errors.New("card does not exist"), true},
		{"server error", errors.New("scoring sidecar: 500 Internal Server Error"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.want {
				t.Errorf("IsNotFound(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(errors.New("connection refused")); got != UnreachableMessage {
		t.Errorf("transport error message = %q, want friendly message", got)
	}
	raw := errors.New("keypoints must be a list")
	if got := UserMessage(raw); got != raw.Error() {
		t.Errorf("validation error message = %q, want raw text", got)
	}
	if got := UserMessage(nil); got != "" {
		t.Errorf("nil error message = %q, want empty", got)
	}
}
