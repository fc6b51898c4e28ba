// Package authctx carries the per-request authenticated principal.
//
// The binding lives only in the request context: it is populated by the
// authentication middleware, read by handlers, and discarded when request
// processing ends. There is no global security holder.
package authctx

import (
	"context"

	"github.com/iudanet/jsonplaceholder-api/internal/models"
)

// Auth is the authenticated context bound to a single request
type Auth struct {
	User *models.User
}

type ctxKey struct{}

// WithAuth returns a context carrying the authenticated principal
func WithAuth(ctx context.Context, auth Auth) context.Context {
	return context.WithValue(ctx, ctxKey{}, auth)
}

// FromContext returns the authenticated principal bound to the request,
// if any
func FromContext(ctx context.Context) (Auth, bool) {
	auth, ok := ctx.Value(ctxKey{}).(Auth)
	return auth, ok
}
