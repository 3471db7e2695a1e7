package http

import (
	"net/http"

	"Shortlink-Web/internal/identity"

	"go.uber.org/zap"
)

// AuthHandler manages the signed-in session: it stores the Google credential
// posted back by the sign-in widget and clears it on sign-out. The credential
// is kept only in the visitor's cookie; this service never persists it.
type AuthHandler struct {
	credentialCookie string
	log              *zap.Logger
}

// NewAuthHandler создает новый auth обработчик
func NewAuthHandler(credentialCookie string, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		credentialCookie: credentialCookie,
		log:              log,
	}
}

// CreateSession receives the Google Sign-In callback (a form POST with a
// "credential" field), stores the credential in the session cookie and sends
// the visitor home, refreshing the dashboard under the new identity. A
// credential that does not decode is dropped silently: the visitor simply
// stays anonymous.
func (h *AuthHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	credential := r.PostFormValue("credential")
	profile, err := identity.DecodeIDToken(credential)
	if err != nil {
		h.log.Warn("rejected sign-in with malformed credential", zap.Error(err))
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.credentialCookie,
		Value:    credential,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.log.Info("visitor signed in", zap.String("subject", profile.Subject))
	http.Redirect(w, r, "/", http.StatusFound)
}

// SignOut clears the session cookie; the next request resolves to the
// anonymous identity immediately.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.credentialCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.log.Info("visitor signed out")
	http.Redirect(w, r, "/", http.StatusFound)
}
