package controllers

import (
	"context"
	"net/http"

	"github.com/JasonR4/london-outfast-sub003/api/responses"
	"github.com/JasonR4/london-outfast-sub003/pkg/config"
	pkgerrors "github.com/JasonR4/london-outfast-sub003/pkg/errors"
	"github.com/JasonR4/london-outfast-sub003/pkg/logger"
)

type pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-OutFast-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady verifies the dependencies the pricing API needs to serve
// traffic. A nil pinger is skipped so deployments without redis still report
// ready.
func HealthReady(cfg *config.Config, logg *logger.Logger, db, cache pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-OutFast-Env", cfg.App.Env)

		checks := []struct {
			name string
			p    pinger
		}{
			{"postgres", db},
			{"redis", cache},
		}
		for _, check := range checks {
			if check.p == nil {
				continue
			}
			if err := check.p.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, check.name+" unavailable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
