package middleware

import "context"

type contextKey string

const (
	ctxUserID        contextKey = "user_id"
	ctxAuthenticated contextKey = "authenticated"
	ctxSessionID     contextKey = "session_id"
)

func UserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxUserID).(string); ok {
		return v
	}
	return ""
}

// IsAuthenticated reports whether the request carried a valid access token.
func IsAuthenticated(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	v, ok := ctx.Value(ctxAuthenticated).(bool)
	return ok && v
}

// SessionIDFromContext returns the browsing session id seeded by
// RequireSession.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	v, ok := ctx.Value(ctxSessionID).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
