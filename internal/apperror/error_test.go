package apperror

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"without internal", ErrNotFound, "not_found: Resource not found"},
		{"with internal", ErrInternal.WithInternal(errors.New("boom")), "internal_error: An internal error occurred (boom)"},
		{"custom message", NewNotFound("/menu"), "not_found: no page at '/menu'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_CopiesLeaveSentinelUntouched(t *testing.T) {
	cause := errors.New("disk full")
	err := NewInternal("render failed", cause)

	assert.Equal(t, "An internal error occurred", ErrInternal.Message)
	assert.Nil(t, ErrInternal.Internal)
	assert.Equal(t, "render failed", err.Message)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestFrom(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewNotFound("/x"))
	assert.Equal(t, http.StatusNotFound, From(wrapped).HTTPStatus)

	plain := errors.New("unexpected")
	got := From(plain)
	assert.Equal(t, http.StatusInternalServerError, got.HTTPStatus)
	assert.Equal(t, "internal_error", got.Code)
	assert.ErrorIs(t, got, plain)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) errorObj {
	t.Helper()
	var resp body
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func TestWrite_AppError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)

	Write(rec, req, slog.New(slog.NewTextHandler(io.Discard, nil)), NewNotFound("/nope"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	got := decode(t, rec)
	assert.Equal(t, "not_found", got.Code)
	assert.Equal(t, "no page at '/nope'", got.Message)
}

func TestWrite_HidesInternalCause(t *testing.T) {
	var logs bytes.Buffer
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	Write(rec, req, slog.New(slog.NewTextHandler(&logs, nil)), errors.New("secret: template exploded"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	got := decode(t, rec)
	assert.Equal(t, "internal_error", got.Code)
	assert.Equal(t, "An internal error occurred", got.Message)
	assert.NotContains(t, rec.Body.String(), "secret")
	assert.Contains(t, logs.String(), "template exploded")
}

func TestWrite_ClientErrorsNotLogged(t *testing.T) {
	var logs bytes.Buffer
	rec := httptest.NewRecorder()

	Write(rec, httptest.NewRequest(http.MethodPost, "/", nil), slog.New(slog.NewTextHandler(&logs, nil)), ErrMethodNotAllowed)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Empty(t, logs.String())
}

func TestWrite_Head(t *testing.T) {
	rec := httptest.NewRecorder()

	Write(rec, httptest.NewRequest(http.MethodHead, "/nope", nil), slog.New(slog.NewTextHandler(io.Discard, nil)), ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, rec.Body.Len())
}
