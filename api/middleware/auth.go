package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/JasonR4/london-outfast-sub003/api/responses"
	pkgAuth "github.com/JasonR4/london-outfast-sub003/pkg/auth"
	"github.com/JasonR4/london-outfast-sub003/pkg/config"
	pkgerrors "github.com/JasonR4/london-outfast-sub003/pkg/errors"
	"github.com/JasonR4/london-outfast-sub003/pkg/logger"
)

// PricingGate validates a bearer token when one is supplied and seeds the
// request context with the outcome. A request without credentials proceeds
// unauthenticated and sees masked pricing; a request with a bad token is
// rejected so a stale session never silently downgrades to masked values.
func PricingGate(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgAuth.ParseAccessToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			ctx := context.WithValue(r.Context(), ctxUserID, claims.UserID.String())
			ctx = context.WithValue(ctx, ctxAuthenticated, true)

			if logg != nil {
				ctx = logg.WithFields(ctx, map[string]any{"user_id": claims.UserID.String()})
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
