package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolio/pkg/auth"
	pkgerrors "portfolio/pkg/errors"
)

func newSessionService(password string, perMinute int) *SessionService {
	cfg := SessionConfig{
		Password:        password,
		Secret:          "s3cret-token",
		MaxAge:          7 * 24 * time.Hour,
		Secure:          true,
		LoginsPerMinute: perMinute,
	}
	return NewSessionService(cfg, auth.NewIPRateLimiter(perMinute), nil, zap.NewNop())
}

func TestSessionService_Login(t *testing.T) {
	ctx := context.Background()
	s := newSessionService("hunter2", 10)

	_, err := s.Login(ctx, "10.0.0.1", "wrong")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsUnauthorized(err))
	assert.Equal(t, "Invalid password", pkgerrors.GetAppError(err).Message)

	cookie, err := s.Login(ctx, "10.0.0.1", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Equal(t, "s3cret-token", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 604800, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestSessionService_Login_NotConfigured(t *testing.T) {
	s := newSessionService("", 10)

	_, err := s.Login(context.Background(), "10.0.0.1", "")
	appErr := pkgerrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
	assert.Equal(t, "Admin login not configured", appErr.Message)
}

func TestSessionService_Login_RateLimited(t *testing.T) {
	ctx := context.Background()
	s := newSessionService("hunter2", 2)

	for i := 0; i < 2; i++ {
		_, err := s.Login(ctx, "10.0.0.9", "guess")
		require.True(t, pkgerrors.IsUnauthorized(err))
	}

	_, err := s.Login(ctx, "10.0.0.9", "hunter2")
	assert.True(t, pkgerrors.IsType(err, pkgerrors.ErrorTypeRateLimit))

	_, err = s.Login(ctx, "10.0.0.10", "hunter2")
	assert.NoError(t, err, "other clients are unaffected")
}

func TestSessionService_IsAdminAndLogout(t *testing.T) {
	s := newSessionService("hunter2", 10)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, s.IsAdmin(r))

	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "s3cret-token"})
	assert.True(t, s.IsAdmin(r))

	forged := httptest.NewRequest(http.MethodGet, "/", nil)
	forged.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "guess"})
	assert.False(t, s.IsAdmin(forged))

	cleared := s.Logout()
	assert.Equal(t, SessionCookieName, cleared.Name)
	assert.Empty(t, cleared.Value)
	assert.Less(t, cleared.MaxAge, 0)
}
