package domain

// IdentityKind distinguishes the two ways a visitor can be identified.
type IdentityKind string

const (
	IdentityAnonymous     IdentityKind = "anonymous"
	IdentityAuthenticated IdentityKind = "authenticated"
)

// Identity is the active identity for a single request. Exactly one kind is
// active at a time: either a generated anonymous id persisted in a browser
// cookie, or a Google-asserted subject carried by a signed-in session.
type Identity struct {
	Kind        IdentityKind
	ID          string // anonymous id, or the token's "sub" claim
	DisplayName string // authenticated only
	PictureURL  string // authenticated only
	Token       string // raw credential, authenticated only; never persisted server-side
}

// IsAuthenticated reports whether the identity comes from a signed-in session.
func (i Identity) IsAuthenticated() bool {
	return i.Kind == IdentityAuthenticated
}
