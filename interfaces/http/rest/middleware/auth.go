package middleware

import (
	"net"
	"net/http"

	"portfolio/pkg/common"
	pkgerrors "portfolio/pkg/errors"
)

// Authorizer decides whether a request carries the admin session
type Authorizer interface {
	IsAdmin(r *http.Request) bool
}

// Session records on the request context whether the caller is the admin.
// It never rejects; RequireAdmin does that for the routes that need it.
func Session(authorizer Authorizer) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := common.WithAdmin(r.Context(), authorizer.IsAdmin(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects requests without a valid admin session with 401 and
// never calls next for them.
func RequireAdmin(errors *pkgerrors.ErrorHandler) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !common.IsAdmin(r.Context()) {
				errors.Handle(w, r, pkgerrors.NewUnauthorizedError("Unauthorized"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP returns the caller's address without its port. Behind a proxy
// chi's RealIP middleware has already replaced RemoteAddr.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
