package middleware

import (
	"context"

	"pasarku-be/internal/auth"
)

type contextKey string

const claimsKey contextKey = "claims"

// WithClaims sets verified token claims into context (called by the auth
// middleware after a successful Verify).
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFrom retrieves the verified claims safely.
func ClaimsFrom(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}
