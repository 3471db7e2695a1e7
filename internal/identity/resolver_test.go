package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Shortlink-Web/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestResolver() *Resolver {
	return NewResolver(&Config{
		AnonymousCookie:  "shortlink_uid",
		CredentialCookie: "shortlink_session",
		AnonymousTTL:     time.Hour,
	}, zap.NewNop())
}

func TestResolve_GeneratesAnonymousIDOnce(t *testing.T) {
	resolver := newTestResolver()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	id, setCookie := resolver.Resolve(req)

	assert.Equal(t, domain.IdentityAnonymous, id.Kind)
	require.NotNil(t, setCookie, "first resolution must persist the generated id")
	assert.Equal(t, "shortlink_uid", setCookie.Name)
	assert.Equal(t, id.ID, setCookie.Value)

	// The generated id is UUID-quality
	_, err := uuid.Parse(id.ID)
	assert.NoError(t, err)

	// The next request carries the cookie: same id, no regeneration
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.AddCookie(&http.Cookie{Name: "shortlink_uid", Value: id.ID})

	id2, setCookie2 := resolver.Resolve(req2)
	assert.Equal(t, id.ID, id2.ID)
	assert.Nil(t, setCookie2, "existing anonymous id must never be regenerated")
}

func TestResolve_SameRequestIsStable(t *testing.T) {
	resolver := newTestResolver()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "shortlink_uid", Value: "anon-abc"})

	first, _ := resolver.Resolve(req)
	second, _ := resolver.Resolve(req)

	assert.Equal(t, first.ID, second.ID)
}

func TestResolve_AuthenticatedWinsOverAnonymous(t *testing.T) {
	resolver := newTestResolver()

	token := makeIDToken(t, map[string]interface{}{
		"sub":     "google-user-123",
		"name":    "Test User",
		"picture": "https://example.com/avatar.png",
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "shortlink_uid", Value: "anon-abc"})
	req.AddCookie(&http.Cookie{Name: "shortlink_session", Value: token})

	id, setCookie := resolver.Resolve(req)

	assert.Nil(t, setCookie)
	assert.True(t, id.IsAuthenticated())
	assert.Equal(t, "google-user-123", id.ID)
	assert.Equal(t, "Test User", id.DisplayName)
	assert.Equal(t, "https://example.com/avatar.png", id.PictureURL)
	assert.Equal(t, token, id.Token)
}

func TestResolve_MalformedCredentialFallsBackToAnonymous(t *testing.T) {
	resolver := newTestResolver()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "shortlink_session", Value: "not-a-jwt"})
	req.AddCookie(&http.Cookie{Name: "shortlink_uid", Value: "anon-abc"})

	id, setCookie := resolver.Resolve(req)

	assert.Nil(t, setCookie)
	assert.Equal(t, domain.IdentityAnonymous, id.Kind)
	assert.Equal(t, "anon-abc", id.ID)
}

func TestResolve_MalformedCredentialWithoutAnonymousCookie(t *testing.T) {
	resolver := newTestResolver()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "shortlink_session", Value: "not-a-jwt"})

	id, setCookie := resolver.Resolve(req)

	assert.Equal(t, domain.IdentityAnonymous, id.Kind)
	require.NotNil(t, setCookie)
	assert.Equal(t, id.ID, setCookie.Value)
}
