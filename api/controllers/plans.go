package controllers

import (
	"net/http"

	"github.com/JasonR4/london-outfast-sub003/api/middleware"
	"github.com/JasonR4/london-outfast-sub003/api/responses"
	"github.com/JasonR4/london-outfast-sub003/api/validators"
	pkgerrors "github.com/JasonR4/london-outfast-sub003/pkg/errors"
	"github.com/JasonR4/london-outfast-sub003/pkg/logger"

	"github.com/JasonR4/london-outfast-sub003/internal/plans"
)

func PlanUpsertHandler(svc plans.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w,
				pkgerrors.New(pkgerrors.CodeInternal, "plan service unavailable"))
			return
		}

		sessionID, ok := middleware.SessionIDFromContext(ctx)
		if !ok {
			responses.WriteError(ctx, logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "session id is required"))
			return
		}

		var input plans.UpsertPlanInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		draft, err := svc.UpsertPlan(ctx, sessionID, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, draft)
	}
}

func PlanFetchHandler(svc plans.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w,
				pkgerrors.New(pkgerrors.CodeInternal, "plan service unavailable"))
			return
		}

		sessionID, ok := middleware.SessionIDFromContext(ctx)
		if !ok {
			responses.WriteError(ctx, logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "session id is required"))
			return
		}

		draft, err := svc.GetActivePlan(ctx, sessionID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, draft)
	}
}

func PlanClearHandler(svc plans.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w,
				pkgerrors.New(pkgerrors.CodeInternal, "plan service unavailable"))
			return
		}

		sessionID, ok := middleware.SessionIDFromContext(ctx)
		if !ok {
			responses.WriteError(ctx, logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "session id is required"))
			return
		}

		if err := svc.ClearPlan(ctx, sessionID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "cleared"})
	}
}
