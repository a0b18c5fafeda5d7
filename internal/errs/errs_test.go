package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_HTTPStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindInvalidInput, http.StatusBadRequest},
		{KindUnauthenticated, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindNotFound, http.StatusNotFound},
		{KindConflict, http.StatusConflict},
		{KindInvalidState, http.StatusBadRequest},
		{KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.HTTPStatus())
		})
	}
}

func TestKindOf(t *testing.T) {
	forbidden := New(KindForbidden, "not yours")
	wrapped := fmt.Errorf("review: %w", forbidden)

	assert.Equal(t, KindForbidden, KindOf(forbidden))
	assert.Equal(t, KindForbidden, KindOf(wrapped))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.True(t, Is(wrapped, KindForbidden))
	assert.False(t, Is(nil, KindInternal))
}

func TestError_UnwrapAndMessage(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindInternal, "failed to load user", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to load user: connection refused", err.Error())
	assert.Equal(t, "not found", New(KindNotFound, "not found").Error())
}

func TestError_WithDetail(t *testing.T) {
	err := New(KindInvalidState, "cannot review").WithDetail("currentStatus", "accepted")

	assert.Equal(t, map[string]any{"currentStatus": "accepted"}, err.Details)
}
