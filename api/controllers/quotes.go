package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/JasonR4/london-outfast-sub003/api/middleware"
	"github.com/JasonR4/london-outfast-sub003/api/responses"
	"github.com/JasonR4/london-outfast-sub003/api/validators"
	pkgerrors "github.com/JasonR4/london-outfast-sub003/pkg/errors"
	"github.com/JasonR4/london-outfast-sub003/pkg/logger"

	"github.com/JasonR4/london-outfast-sub003/internal/quotes"
)

// QuotePreviewHandler prices a campaign selection without persisting anything.
// Unauthenticated callers still get a full structural breakdown with the
// monetary figures masked.
func QuotePreviewHandler(svc quotes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w,
				pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
			return
		}

		var input quotes.PreviewInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.Preview(ctx, input, middleware.IsAuthenticated(ctx))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

func QuoteSubmitHandler(svc quotes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w,
				pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
			return
		}

		sessionID, ok := middleware.SessionIDFromContext(ctx)
		if !ok {
			responses.WriteError(ctx, logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "session id is required"))
			return
		}

		var input quotes.SubmitInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		quote, err := svc.Submit(ctx, sessionID, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, quote)
	}
}

func QuoteFetchHandler(svc quotes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w,
				pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "quoteID"))
		if err != nil {
			responses.WriteError(ctx, logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "quote id must be a valid uuid"))
			return
		}

		quote, err := svc.GetByID(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, quote)
	}
}
