package httpapi

import "context"

// ContextKey is the type of the request-scoped values set by the middleware.
type ContextKey string

const (
	RequestIDCtxKey  = ContextKey("request_id")
	AdminEmailCtxKey = ContextKey("admin_email")
)

// RequestID returns the id assigned to the request, or "" outside a request.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDCtxKey).(string)
	return id
}

// AdminEmail returns the authenticated admin, or "" when auth is disabled.
func AdminEmail(ctx context.Context) string {
	email, _ := ctx.Value(AdminEmailCtxKey).(string)
	return email
}
