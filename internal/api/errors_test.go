package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		failure  Failure
		wantKind Kind
		wantMsg  string
	}{
		{
			name:     "not found ignores detail",
			failure:  Failure{Status: 404, Detail: "Employee not found", Message: "Request failed with status code 404"},
			wantKind: KindNotFound,
			wantMsg:  "Resource not found",
		},
		{
			name:     "bad request uses detail",
			failure:  Failure{Status: 400, Detail: "Email required"},
			wantKind: KindBadRequest,
			wantMsg:  "Email required",
		},
		{
			name:     "bad request without detail",
			failure:  Failure{Status: 400, Message: "Request failed with status code 400"},
			wantKind: KindBadRequest,
			wantMsg:  "Bad request",
		},
		{
			name:     "server error",
			failure:  Failure{Status: 503, Detail: "db down"},
			wantKind: KindServer,
			wantMsg:  "Server error. Please try again later.",
		},
		{
			name:     "500 is a server error",
			failure:  Failure{Status: 500},
			wantKind: KindServer,
			wantMsg:  "Server error. Please try again later.",
		},
		{
			name:     "no response uses failure message",
			failure:  Failure{Message: "timeout"},
			wantKind: KindNetwork,
			wantMsg:  "timeout",
		},
		{
			name:     "no response and no message",
			failure:  Failure{},
			wantKind: KindNetwork,
			wantMsg:  "Network error",
		},
		{
			name:     "conflict falls through to message",
			failure:  Failure{Status: 409, Detail: "Employee ID already exists", Message: "Request failed with status code 409"},
			wantKind: KindNetwork,
			wantMsg:  "Request failed with status code 409",
		},
		{
			name:     "unprocessable without message",
			failure:  Failure{Status: 422, Detail: "field required"},
			wantKind: KindNetwork,
			wantMsg:  "Network error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.failure)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantMsg, got.Message)
			assert.Equal(t, tt.wantMsg, got.Error())
			assert.Equal(t, tt.failure.Status, got.Status)
			assert.Equal(t, tt.failure.Detail, got.Detail)
		})
	}
}

func TestNormalize_keeps_cause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Normalize(Failure{Message: "connection refused", Err: cause})

	assert.ErrorIs(t, err, cause)
}

func TestAsError_wrapped(t *testing.T) {
	base := Normalize(Failure{Status: 404})
	wrapped := fmt.Errorf("load employee: %w", base)

	got, ok := AsError(wrapped)
	require.True(t, ok)
	assert.Same(t, base, got)

	_, ok = AsError(errors.New("plain"))
	assert.False(t, ok)
}

func TestMessage(t *testing.T) {
	assert.Empty(t, Message(nil))
	assert.Equal(t, "Resource not found", Message(fmt.Errorf("wrap: %w", Normalize(Failure{Status: 404}))))
	assert.Equal(t, "plain failure", Message(errors.New("plain failure")))
}

func TestIsConflict(t *testing.T) {
	assert.True(t, IsConflict(Normalize(Failure{Status: 409, Detail: "Email already exists"})))
	assert.False(t, IsConflict(Normalize(Failure{Status: 400, Detail: "already exists"})))
	assert.False(t, IsConflict(errors.New("Employee ID already exists")))
	assert.False(t, IsConflict(nil))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(Normalize(Failure{Status: 404})))
	assert.False(t, IsNotFound(Normalize(Failure{Status: 500})))
	assert.False(t, IsNotFound(nil))
}
