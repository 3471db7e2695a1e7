package identity

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeIDToken builds an unsigned JWT with the given payload claims. The
// signature segment is arbitrary: decoding never verifies it.
func makeIDToken(t *testing.T, claims map[string]interface{}) string {
	t.Helper()

	header, err := json.Marshal(map[string]string{"alg": "RS256", "typ": "JWT"})
	require.NoError(t, err)
	payload, err := json.Marshal(claims)
	require.NoError(t, err)

	return base64.RawURLEncoding.EncodeToString(header) + "." +
		base64.RawURLEncoding.EncodeToString(payload) + "." +
		"signature"
}

func TestDecodeIDToken(t *testing.T) {
	token := makeIDToken(t, map[string]interface{}{
		"sub":     "google-user-123",
		"name":    "Test User",
		"picture": "https://example.com/avatar.png",
		"email":   "test@example.com",
	})

	profile, err := DecodeIDToken(token)
	require.NoError(t, err)

	assert.Equal(t, "google-user-123", profile.Subject)
	assert.Equal(t, "Test User", profile.DisplayName)
	assert.Equal(t, "https://example.com/avatar.png", profile.PictureURL)
}

func TestDecodeIDToken_MissingOptionalClaims(t *testing.T) {
	token := makeIDToken(t, map[string]interface{}{"sub": "google-user-456"})

	profile, err := DecodeIDToken(token)
	require.NoError(t, err)

	assert.Equal(t, "google-user-456", profile.Subject)
	assert.Empty(t, profile.DisplayName)
	assert.Empty(t, profile.PictureURL)
}

func TestDecodeIDToken_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty string", ""},
		{"not a token", "garbage"},
		{"two segments", "abc.def"},
		{"payload is not base64", "e30.!!!not-base64!!!.sig"},
		{"payload is not json", "e30." + base64.RawURLEncoding.EncodeToString([]byte("not json")) + ".sig"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeIDToken(tt.token)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedToken)
		})
	}
}

func TestDecodeIDToken_MissingSub(t *testing.T) {
	token := makeIDToken(t, map[string]interface{}{"name": "No Subject"})

	_, err := DecodeIDToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedToken)
}
