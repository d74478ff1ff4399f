package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/juho05/wavedial/auth"
	"github.com/juho05/wavedial/handlers/responses"
)

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		responses.EncodeError(w, http.StatusBadRequest, "invalid form data")
		return
	}
	username := r.PostFormValue("username")
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	_, err = h.Auth.Register(r.Context(), username, email, password)
	if err != nil {
		respondErr(w, fmt.Errorf("register user: %w", err))
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		responses.EncodeError(w, http.StatusBadRequest, "invalid form data")
		return
	}
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	session, err := h.Auth.Authenticate(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respondErr(w, err)
			return
		}
		respondInternalErr(w, fmt.Errorf("login user: %w", err))
		return
	}
	h.setSessionCookie(w, session.Token, session.Expires)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(SessionCookieName)
	if err == nil {
		err = h.Auth.Logout(r.Context(), cookie.Value)
		if err != nil {
			respondInternalErr(w, fmt.Errorf("logout user: %w", err))
			return
		}
	}
	h.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}
