package http

import (
	"context"

	"volunteer-portal-backend/internal/security"
)

type contextKey int

const (
	claimsKey contextKey = iota
	requestIDKey
)

func withClaims(ctx context.Context, claims *security.PersonClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the verified session claims, or nil on public routes.
func ClaimsFromContext(ctx context.Context) *security.PersonClaims {
	claims, _ := ctx.Value(claimsKey).(*security.PersonClaims)
	return claims
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
