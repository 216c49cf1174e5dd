package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JasonR4/london-outfast-sub003/api/responses"
	"github.com/JasonR4/london-outfast-sub003/pkg/enums"
	pkgerrors "github.com/JasonR4/london-outfast-sub003/pkg/errors"
	"github.com/JasonR4/london-outfast-sub003/pkg/logger"

	"github.com/JasonR4/london-outfast-sub003/internal/ratecards"
)

func RateCardFetchHandler(svc ratecards.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w,
				pkgerrors.New(pkgerrors.CodeInternal, "rate card service unavailable"))
			return
		}

		formatName := chi.URLParam(r, "formatName")
		if formatName == "" {
			responses.WriteError(ctx, logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "format name is required"))
			return
		}

		card, err := svc.GetByFormatName(ctx, formatName)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, card)
	}
}

func RateCardListHandler(svc ratecards.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w,
				pkgerrors.New(pkgerrors.CodeInternal, "rate card service unavailable"))
			return
		}

		category := enums.FormatCategory(r.URL.Query().Get("category"))
		cards, err := svc.ListByCategory(ctx, category)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, cards)
	}
}
