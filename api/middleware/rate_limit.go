package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/JasonR4/london-outfast-sub003/api/responses"
	"github.com/JasonR4/london-outfast-sub003/pkg/config"
	pkgerrors "github.com/JasonR4/london-outfast-sub003/pkg/errors"
	"github.com/JasonR4/london-outfast-sub003/pkg/logger"
)

type rateLimiterStore interface {
	IncrWithTTL(context.Context, string, time.Duration) (int64, error)
}

// SubmitRateLimit throttles quote submissions per client IP and per planning
// session. Submission is the only anonymous write path, so a runaway script
// would otherwise flood the quotes table and the CRM pipeline behind it.
func SubmitRateLimit(cfg config.RateLimitConfig, store rateLimiterStore, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if store == nil || cfg.SubmitWindow <= 0 || (cfg.SubmitIPLimit <= 0 && cfg.SubmitSessionLimit <= 0) {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if cfg.SubmitIPLimit > 0 {
				ip := clientIP(r)
				if ip != "" {
					key := fmt.Sprintf("rl:submit:ip:%s", ip)
					if blocked := enforce(ctx, logg, w, store, key, "ip", cfg.SubmitWindow, int64(cfg.SubmitIPLimit)); blocked {
						return
					}
				}
			}

			if cfg.SubmitSessionLimit > 0 {
				if sessionID, ok := SessionIDFromContext(ctx); ok {
					key := fmt.Sprintf("rl:submit:session:%s", sessionID)
					if blocked := enforce(ctx, logg, w, store, key, "session", cfg.SubmitWindow, int64(cfg.SubmitSessionLimit)); blocked {
						return
					}
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// enforce increments the counter and writes the response when the caller is
// over the limit. It reports true when the request must not proceed.
func enforce(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, store rateLimiterStore, key, scope string, window time.Duration, limit int64) bool {
	count, err := store.IncrWithTTL(ctx, key, window)
	if err != nil {
		responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rate limiting"))
		return true
	}
	if count <= limit {
		return false
	}

	if logg != nil {
		logCtx := logg.WithFields(ctx, map[string]any{
			"scope":          scope,
			"attempts":       count,
			"limit":          limit,
			"window_seconds": int(window.Seconds()),
		})
		logg.Warn(logCtx, "quote.submit.rate_limit.blocked")
	}
	responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeRateLimit, "rate limit exceeded"))
	return true
}

func clientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if header := r.Header.Get("X-Forwarded-For"); header != "" {
		for _, part := range strings.Split(header, ",") {
			if ip := strings.TrimSpace(part); ip != "" {
				return ip
			}
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}
