package middleware

import "context"

type contextKey string

const (
	ctxAdminEmail  contextKey = "adminEmail"
	ctxCartSession contextKey = "cartSession"
)

// WithCartSession seeds the cart session id on the context.
func WithCartSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ctxCartSession, sessionID)
}

// WithAdminEmail seeds the authenticated admin email on the context.
func WithAdminEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, ctxAdminEmail, email)
}

// AdminEmailFromContext returns the authenticated admin email, if any.
func AdminEmailFromContext(ctx context.Context) string {
	if value, ok := ctx.Value(ctxAdminEmail).(string); ok {
		return value
	}
	return ""
}

// CartSessionFromContext returns the cart session id seeded by CartSession.
func CartSessionFromContext(ctx context.Context) string {
	if value, ok := ctx.Value(ctxCartSession).(string); ok {
		return value
	}
	return ""
}
