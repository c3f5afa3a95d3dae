package errors

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAppError_Chain(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("command handler failed: %w", NewStorageError("Failed to save content", cause))

	assert.True(t, IsStorage(err))
	assert.False(t, IsValidation(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Failed to save content", GetAppError(err).Message)
	assert.Contains(t, err.Error(), "caused by: disk full")
	assert.Nil(t, GetAppError(cause))
}

func TestAppError_Statuses(t *testing.T) {
	tests := []struct {
		err    *AppError
		status int
		typ    ErrorType
	}{
		{NewValidationError("bad"), http.StatusBadRequest, ErrorTypeValidation},
		{NewNotFoundError("milestone"), http.StatusNotFound, ErrorTypeNotFound},
		{NewUnauthorizedError("Unauthorized"), http.StatusUnauthorized, ErrorTypeUnauthorized},
		{NewInternalError("boom"), http.StatusInternalServerError, ErrorTypeInternal},
		{NewRateLimitError(10, "minute"), http.StatusTooManyRequests, ErrorTypeRateLimit},
		{NewUnavailableError("content store"), http.StatusServiceUnavailable, ErrorTypeUnavailable},
		{NewTooLargeError(1024), http.StatusRequestEntityTooLarge, ErrorTypeTooLarge},
		{NewStorageError("Failed to load content", nil), http.StatusInternalServerError, ErrorTypeStorage},
		{NewExternalError("eventbridge", errors.New("throttled")), http.StatusBadGateway, ErrorTypeExternal},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.True(t, IsType(tt.err, tt.typ))
		})
	}
}

func TestErrorHandler_Handle(t *testing.T) {
	t.Run("Should send the AppError message and status", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		h := NewErrorHandler(zap.New(core), false)

		w := httptest.NewRecorder()
		h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/content", nil),
			NewStorageError("Failed to load content", errors.New("no such file")))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Failed to load content","type":"STORAGE"}`, w.Body.String())
		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
	})

	t.Run("Should log client errors as warnings", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		h := NewErrorHandler(zap.New(core), false)

		w := httptest.NewRecorder()
		h.Handle(w, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil), NewUnauthorizedError("Invalid password"))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
	})

	t.Run("Should hide plain errors unless debugging", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewErrorHandler(zap.NewNop(), false).Handle(w, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("secret detail"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "secret detail")

		w = httptest.NewRecorder()
		NewErrorHandler(zap.NewNop(), true).Handle(w, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("secret detail"))
		assert.Contains(t, w.Body.String(), "secret detail")
	})
}

func TestErrorHandler_HandleStatus(t *testing.T) {
	w := httptest.NewRecorder()
	NewErrorHandler(zap.NewNop(), false).HandleStatus(w, httptest.NewRequest(http.MethodGet, "/nope", nil), http.StatusNotFound, "Not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Not found","type":"NOT_FOUND"}`, w.Body.String())
}

func TestErrorHandler_MiddlewareRecoversPanics(t *testing.T) {
	h := NewErrorHandler(zap.NewNop(), false)
	handler := h.Middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("nil map")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "An internal error occurred", resp.Error)
	assert.NotContains(t, w.Body.String(), "nil map")
}
