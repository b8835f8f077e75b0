package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const identityKey contextKey = "identity"

// ErrNoIdentity is returned when no actor identity exists in the request
// context. Handlers should return 401 when this error occurs.
var ErrNoIdentity = errors.New("no actor identity in context")

// Identity is the authenticated actor attached to a request. Role is kept as
// a raw string here; each bounded context parses it into its own closed type
// before acting on it.
type Identity struct {
	ID         uuid.UUID
	Name       string
	Role       string
	SupplierID uuid.UUID // set only for supplier-role actors
}

// IdentityFromCtx extracts the authenticated actor from the request context.
// Returns ErrNoIdentity if none is set (unauthenticated request).
func IdentityFromCtx(ctx context.Context) (Identity, error) {
	id, ok := ctx.Value(identityKey).(Identity)
	if !ok || id.ID == uuid.Nil {
		return Identity{}, ErrNoIdentity
	}
	return id, nil
}

// WithIdentity returns a new context with the given identity attached.
// Used by the actor middleware after validating the session.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}
