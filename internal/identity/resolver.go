package identity

import (
	"net/http"
	"time"

	"Shortlink-Web/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Config holds cookie settings for identity resolution.
type Config struct {
	AnonymousCookie  string        // name of the cookie holding the anonymous id
	CredentialCookie string        // name of the cookie holding the raw Google credential
	AnonymousTTL     time.Duration // lifetime of the anonymous cookie
}

// Resolver derives the active identity for a request. A signed-in session
// (credential cookie with a decodable token) wins; otherwise the anonymous
// cookie is reused, and if the browser has none yet a fresh id is generated.
type Resolver struct {
	cfg *Config
	log *zap.Logger
}

// NewResolver creates a new identity resolver.
func NewResolver(cfg *Config, log *zap.Logger) *Resolver {
	return &Resolver{
		cfg: cfg,
		log: log,
	}
}

// Resolve returns the identity for the request and, when a new anonymous id
// had to be generated, the cookie that persists it. The returned cookie is
// nil whenever an existing identity was reused, so the anonymous id is
// written to the browser exactly once.
func (r *Resolver) Resolve(req *http.Request) (domain.Identity, *http.Cookie) {
	if c, err := req.Cookie(r.cfg.CredentialCookie); err == nil && c.Value != "" {
		profile, err := DecodeIDToken(c.Value)
		if err == nil {
			return domain.Identity{
				Kind:        domain.IdentityAuthenticated,
				ID:          profile.Subject,
				DisplayName: profile.DisplayName,
				PictureURL:  profile.PictureURL,
				Token:       c.Value,
			}, nil
		}
		// Malformed credential degrades to anonymous, never surfaces.
		r.log.Debug("failed to decode credential cookie", zap.Error(err))
	}

	if c, err := req.Cookie(r.cfg.AnonymousCookie); err == nil && c.Value != "" {
		return domain.Identity{
			Kind: domain.IdentityAnonymous,
			ID:   c.Value,
		}, nil
	}

	id := uuid.NewString()
	r.log.Debug("generated anonymous identity", zap.String("anonymous_id", id))

	return domain.Identity{
			Kind: domain.IdentityAnonymous,
			ID:   id,
		}, &http.Cookie{
			Name:     r.cfg.AnonymousCookie,
			Value:    id,
			Path:     "/",
			MaxAge:   int(r.cfg.AnonymousTTL.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		}
}
