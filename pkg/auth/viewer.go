// Package auth carries the outcome of the authentication gate. A request is
// served either for an anonymous Viewer or for an authenticated Identity;
// the distinction is decided once by middleware and passed to handlers.
package auth

import (
	"context"
	"time"
)

// Identity is the public view of an account. It never holds credentials.
type Identity struct {
	ID        string
	Name      string
	Email     string
	Bio       string
	Avatar    string
	CreatedAt time.Time
}

type Viewer struct {
	identity *Identity
}

func Anonymous() Viewer {
	return Viewer{}
}

func Authenticated(identity Identity) Viewer {
	return Viewer{identity: &identity}
}

func (v Viewer) Identity() (Identity, bool) {
	if v.identity == nil {
		return Identity{}, false
	}
	return *v.identity, true
}

func (v Viewer) IsAuthenticated() bool {
	return v.identity != nil
}

// UserID returns the caller's id, or "" for anonymous viewers.
func (v Viewer) UserID() string {
	if v.identity == nil {
		return ""
	}
	return v.identity.ID
}

// Is reports whether the viewer is the given identity.
func (v Viewer) Is(userID string) bool {
	return v.identity != nil && userID != "" && v.identity.ID == userID
}

// Resolver maps a token subject to a live identity. Implementations return
// an apperror NotFound when the account no longer exists.
type Resolver interface {
	ResolveIdentity(ctx context.Context, userID string) (*Identity, error)
}
