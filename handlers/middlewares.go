package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/juho05/wavedial/auth"
)

type ContextKey int

const (
	ContextKeyPrincipal ContextKey = iota
)

// SessionCookieName is the cookie the session token travels in.
const SessionCookieName = "wavedial_session"

// sessionMiddleware resolves the session cookie to a principal and stores it
// in the request context. Requests without a valid session stay anonymous;
// enforcement is requireUser's job.
func (h *Handler) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		principal, err := h.Auth.Verify(r.Context(), cookie.Value)
		if err != nil {
			if !errors.Is(err, auth.ErrInvalidCredentials) {
				respondInternalErr(w, err)
				return
			}
			h.clearSessionCookie(w)
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ContextKeyPrincipal, principal)))
	})
}

// requireUser redirects anonymous requests to the login flow.
// Missing authentication is control flow here, not an error.
func (h *Handler) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if principal(r) == nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// principal returns the authenticated user of the request or nil.
func principal(r *http.Request) *auth.Principal {
	p, ok := r.Context().Value(ContextKeyPrincipal).(*auth.Principal)
	if !ok {
		return nil
	}
	return p
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
