package chat_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/chat"
	"github.com/stretchr/testify/assert"
)

func TestServiceError_Error(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  *chat.ServiceError
		want string
	}{
		{"type and status", &chat.ServiceError{StatusCode: 400, Type: "invalid_request_error", Message: "bad"}, "invalid_request_error (HTTP 400): bad"},
		{"type only", &chat.ServiceError{Type: "overloaded_error", Message: "busy"}, "overloaded_error: busy"},
		{"status only", &chat.ServiceError{StatusCode: 500, Message: "oops"}, "HTTP 500: oops"},
		{"message only", &chat.ServiceError{Message: "plain"}, "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestTransportError_Unwrap(t *testing.T) {
	t.Parallel()
	inner := errors.New("connection refused")
	err := &chat.TransportError{Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "connection refused", err.Error())
}

func TestErrorClass(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"service", &chat.ServiceError{Message: "x"}, chat.ClassService},
		{"wrapped service", fmt.Errorf("anthropic: %w", &chat.ServiceError{Message: "x"}), chat.ClassService},
		{"transport", &chat.TransportError{Err: errors.New("x")}, chat.ClassTransport},
		{"wrapped transport", fmt.Errorf("gemini: %w", &chat.TransportError{Err: errors.New("x")}), chat.ClassTransport},
		{"anything else", errors.New("x"), chat.ClassUnexpected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, chat.ErrorClass(tt.err))
		})
	}
}
