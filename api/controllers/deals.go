package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/JasonR4/london-outfast-sub003/api/responses"
	pkgerrors "github.com/JasonR4/london-outfast-sub003/pkg/errors"
	"github.com/JasonR4/london-outfast-sub003/pkg/logger"

	"github.com/JasonR4/london-outfast-sub003/internal/deals"
)

// DealPricingHandler resolves a deal by id or by slug. Slugs let the
// marketing site link to packages without knowing database ids.
func DealPricingHandler(svc deals.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w,
				pkgerrors.New(pkgerrors.CodeInternal, "deal service unavailable"))
			return
		}

		ref := chi.URLParam(r, "dealRef")
		if ref == "" {
			responses.WriteError(ctx, logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "deal reference is required"))
			return
		}

		var calc *deals.DealCalc
		var err error
		if id, parseErr := uuid.Parse(ref); parseErr == nil {
			calc, err = svc.GetPricing(ctx, id)
		} else {
			calc, err = svc.GetPricingBySlug(ctx, ref)
		}
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, calc)
	}
}

func DealListHandler(svc deals.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w,
				pkgerrors.New(pkgerrors.CodeInternal, "deal service unavailable"))
			return
		}

		calcs, err := svc.ListActive(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, calcs)
	}
}
