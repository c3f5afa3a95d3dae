package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"portfolio/application/services"
	"portfolio/interfaces/http/rest/middleware"
	"portfolio/pkg/common"
	pkgerrors "portfolio/pkg/errors"
	"portfolio/pkg/utils"
)

const loginBodyLimit = 4 << 10

// AuthHandler handles admin login and logout
type AuthHandler struct {
	sessions *services.SessionService
	errors   *pkgerrors.ErrorHandler
	logger   *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessions *services.SessionService, errors *pkgerrors.ErrorHandler, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		errors:   errors,
		logger:   logger,
	}
}

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Password string `json:"password" validate:"max=1024"`
}

// SessionResponse reports whether the caller holds the admin session
type SessionResponse struct {
	Admin bool `json:"admin"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := common.ParseJSONBody(w, r, &req, loginBodyLimit); err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	cookie, err := h.sessions.Login(r.Context(), middleware.ClientIP(r), req.Password)
	if err != nil {
		if pkgerrors.IsAppError(err) {
			h.errors.Handle(w, r, err)
			return
		}
		h.errors.Handle(w, r, pkgerrors.NewInternalError("Login failed").WithCause(err))
		return
	}

	http.SetCookie(w, cookie)
	common.RespondSuccess(w)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessions.Logout())
	common.RespondSuccess(w)
}

// Session handles GET /api/auth/session
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, SessionResponse{Admin: common.IsAdmin(r.Context())})
}
