// Package actor carries the acting user through request context. There is no
// authentication: the frontend picks any roster user and sends their id, and
// services re-check the resolved user's role on every mutation.
package actor

import (
	"context"

	"github.com/constructor-app/constructor-backend-go/internal/domain/user"
)

type contextKey struct{}

// WithUser returns a context carrying u as the acting user.
func WithUser(ctx context.Context, u user.User) context.Context {
	return context.WithValue(ctx, contextKey{}, u)
}

// FromContext extracts the acting user from ctx.
func FromContext(ctx context.Context) (user.User, error) {
	u, ok := ctx.Value(contextKey{}).(user.User)
	if !ok {
		return user.User{}, user.ErrActingUserRequired
	}
	return u, nil
}
