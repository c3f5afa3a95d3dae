package services

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"portfolio/pkg/auth"
	pkgerrors "portfolio/pkg/errors"
	"portfolio/pkg/observability"
)

// SessionCookieName is the cookie carrying the admin token
const SessionCookieName = "admin_session"

// SessionConfig controls admin login
type SessionConfig struct {
	// Password enables login; empty disables it
	Password string
	// Secret is the opaque token stored in the cookie
	Secret string
	MaxAge time.Duration
	// Secure marks the cookie HTTPS-only
	Secure bool
	// LoginsPerMinute bounds attempts per client address
	LoginsPerMinute int
}

// SessionService issues and checks the single shared admin session
type SessionService struct {
	cfg     SessionConfig
	limiter auth.RateLimiter
	metrics *observability.Collector
	logger  *zap.Logger
}

// NewSessionService creates a new session service
func NewSessionService(cfg SessionConfig, limiter auth.RateLimiter, metrics *observability.Collector, logger *zap.Logger) *SessionService {
	return &SessionService{
		cfg:     cfg,
		limiter: limiter,
		metrics: metrics,
		logger:  logger,
	}
}

// Login checks password and returns the session cookie to set.
func (s *SessionService) Login(ctx context.Context, clientIP, password string) (*http.Cookie, error) {
	if s.cfg.Password == "" {
		s.recordAttempt("disabled")
		return nil, pkgerrors.NewInternalError("Admin login not configured")
	}

	allowed, err := s.limiter.Allow(ctx, clientIP)
	if err != nil {
		return nil, pkgerrors.NewInternalError("Login failed").WithCause(err)
	}
	if !allowed {
		s.recordAttempt("throttled")
		s.logger.Warn("Login rate limit exceeded", zap.String("client_ip", clientIP))
		return nil, pkgerrors.NewRateLimitError(s.cfg.LoginsPerMinute, "minute")
	}

	if !auth.SecretsEqual(s.cfg.Password, password) {
		s.recordAttempt("rejected")
		s.logger.Info("Invalid admin password", zap.String("client_ip", clientIP))
		return nil, pkgerrors.NewUnauthorizedError("Invalid password")
	}

	if err := s.limiter.Reset(ctx, clientIP); err != nil {
		s.logger.Warn("Failed to reset login limiter", zap.Error(err))
	}
	s.recordAttempt("accepted")
	return s.cookie(s.cfg.Secret, int(s.cfg.MaxAge.Seconds())), nil
}

// Logout returns a cookie that clears the session.
func (s *SessionService) Logout() *http.Cookie {
	c := s.cookie("", -1)
	c.Expires = time.Unix(0, 0)
	return c
}

// Authorize reports whether token is the admin secret.
func (s *SessionService) Authorize(token string) bool {
	return auth.SecretsEqual(s.cfg.Secret, token)
}

// IsAdmin reports whether the request carries a valid session cookie.
func (s *SessionService) IsAdmin(r *http.Request) bool {
	c, err := r.Cookie(SessionCookieName)
	if err != nil {
		return false
	}
	return s.Authorize(c.Value)
}

func (s *SessionService) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (s *SessionService) recordAttempt(outcome string) {
	if s.metrics != nil {
		s.metrics.LoginAttempts.WithLabelValues(outcome).Inc()
	}
}
