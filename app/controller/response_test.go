package controller

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"dress-diary/canvas"
	"dress-diary/repository"
	"dress-diary/service"
	"dress-diary/session"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrInvalidItem, http.StatusBadRequest},
		{service.ErrInvalidSignUp, http.StatusBadRequest},
		{fmt.Errorf("%w: name and season are required", service.ErrIncompleteDetails), http.StatusBadRequest},
		{service.ErrUnauthorized, http.StatusUnauthorized},
		{session.ErrNoSession, http.StatusUnauthorized},
		{repository.ErrNotFound, http.StatusNotFound},
		{service.ErrSessionNotFound, http.StatusNotFound},
		{repository.ErrUserExists, http.StatusConflict},
		{canvas.ErrSaveInProgress, http.StatusConflict},
		{canvas.ErrEmptyComposition, http.StatusUnprocessableEntity},
		{fmt.Errorf("%w: %w", canvas.ErrUnresolvablePayload, errors.New("boom")), http.StatusUnprocessableEntity},
		{canvas.ErrUnknownItem, http.StatusUnprocessableEntity},
		{fmt.Errorf("%w: %w", service.ErrSaveFailed, errors.New("db down")), http.StatusBadGateway},
		{service.ErrImportUnavailable, http.StatusServiceUnavailable},
		{service.ErrPDFUnavailable, http.StatusServiceUnavailable},
		{errors.New("anything else"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestWriteErrorHidesInternalErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, "Test", errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	writeError(rec, "Test", canvas.ErrEmptyComposition)
	assert.JSONEq(t, `{"error":"drag at least one item onto the board before saving"}`, rec.Body.String())
}

func TestBearerToken(t *testing.T) {
	tests := map[string]string{
		"Bearer abc":   "abc",
		"bearer  abc ": "abc",
		"Basic abc":    "",
		"abc":          "",
		"":             "",
	}
	for header, want := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			r.Header.Set("Authorization", header)
		}
		assert.Equal(t, want, BearerToken(r), header)
	}
}
