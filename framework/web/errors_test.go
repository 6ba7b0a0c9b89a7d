package web

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "bad request",
			err:  ErrBadRequest,
			want: NewRequestError(ErrBadRequest, http.StatusBadRequest),
		},
		{
			name: "not found",
			err:  ErrNotFound,
			want: NewRequestError(ErrNotFound, http.StatusNotFound),
		},
		{
			name: "service unavailable",
			err:  ErrServiceUnavailable,
			want: NewRequestError(ErrServiceUnavailable, http.StatusServiceUnavailable),
		},
		{
			name: "internal server error",
			err:  ErrInternalServerError,
			want: NewRequestError(ErrInternalServerError, http.StatusInternalServerError),
		},
		{
			name: "unknown error",
			err:  errors.New("some error"),
			want: nil,
		},
		{
			name: "nil error",
			err:  nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TranslateError(tt.err))
		})
	}
}

func TestIsShutdown(t *testing.T) {
	assert.True(t, IsShutdown(NewShutdownError("integrity issue")))
	assert.False(t, IsShutdown(errors.New("some error")))
	assert.False(t, IsShutdown(NewRequestError(ErrBadRequest, http.StatusBadRequest)))
}
