package plans

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/JasonR4/london-outfast-sub003/internal/pricing"
	"github.com/JasonR4/london-outfast-sub003/pkg/db/models"
	"github.com/JasonR4/london-outfast-sub003/pkg/enums"
	pkgerrors "github.com/JasonR4/london-outfast-sub003/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes plan draft persistence operations.
type Service interface {
	UpsertPlan(ctx context.Context, sessionID string, input UpsertPlanInput) (*models.PlanDraft, error)
	GetActivePlan(ctx context.Context, sessionID string) (*models.PlanDraft, error)
	ClearPlan(ctx context.Context, sessionID string) error
}

type service struct {
	repo       PlanRepository
	tx         txRunner
	pricingCfg pricing.Config
}

// NewService builds a plan service backed by the provided stack.
func NewService(repo PlanRepository, tx txRunner, pricingCfg pricing.Config) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("plan repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx, pricingCfg: pricingCfg}, nil
}

// UpsertPlanInput captures the payload required to create or refresh a draft.
type UpsertPlanInput struct {
	Currency enums.Currency
	Lines    []PlanLineInput
}

// PlanLineInput mirrors the data stored for each plan line.
type PlanLineInput struct {
	FormatName       string
	Category         enums.FormatCategory
	SiteQuantity     int
	Periods          []int
	Areas            []string
	SaleRate         float64
	ProductionCost   float64
	CreativeCount    int
	CreativeUnitCost float64
}

// UpsertPlan validates the provided selections and persists the draft
// atomically, replacing the full line set. Only raw inputs are stored; priced
// values are recomputed on read.
func (s *service) UpsertPlan(ctx context.Context, sessionID string, input UpsertPlanInput) (*models.PlanDraft, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	if len(input.Lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "plan must contain at least one line")
	}
	currency := input.Currency
	if currency == "" {
		currency = enums.CurrencyGBP
	}
	if !currency.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unsupported currency")
	}

	lines := make([]models.PlanLine, 0, len(input.Lines))
	for _, payload := range input.Lines {
		if strings.TrimSpace(payload.FormatName) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "line format name is required")
		}
		if payload.Category != "" && !payload.Category.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown format category")
		}

		// a dry pricing pass rejects negative or non-finite values up front
		if _, err := pricing.PriceLine(s.pricingCfg, pricing.CampaignLine{
			FormatName:       payload.FormatName,
			Category:         payload.Category,
			Sites:            payload.SiteQuantity,
			Periods:          payload.Periods,
			SaleRate:         payload.SaleRate,
			ProductionCost:   payload.ProductionCost,
			CreativeCount:    payload.CreativeCount,
			CreativeUnitCost: payload.CreativeUnitCost,
		}); err != nil {
			return nil, err
		}

		lines = append(lines, buildPlanLine(payload))
	}

	var saved *models.PlanDraft
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		draft, err := repo.FindActiveBySession(ctx, sessionID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load plan draft")
			}
			draft = &models.PlanDraft{
				SessionID: sessionID,
				Status:    enums.PlanStatusDraft,
				Currency:  currency,
			}
			if err := repo.Create(ctx, draft); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create plan draft")
			}
		}

		if err := repo.ReplaceLines(ctx, draft.ID, lines); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "replace plan lines")
		}

		saved, err = repo.FindActiveBySession(ctx, sessionID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload plan draft")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// GetActivePlan returns the session's live draft.
func (s *service) GetActivePlan(ctx context.Context, sessionID string) (*models.PlanDraft, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	draft, err := s.repo.FindActiveBySession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no active plan for session")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load plan draft")
	}
	return draft, nil
}

// ClearPlan retires the session's live draft without deleting its history.
func (s *service) ClearPlan(ctx context.Context, sessionID string) error {
	draft, err := s.GetActivePlan(ctx, sessionID)
	if err != nil {
		return err
	}
	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).UpdateStatus(ctx, draft.ID, enums.PlanStatusCleared); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear plan draft")
		}
		return nil
	})
}

func buildPlanLine(payload PlanLineInput) models.PlanLine {
	line := models.PlanLine{
		FormatName:       strings.TrimSpace(payload.FormatName),
		Category:         payload.Category,
		SiteQuantity:     payload.SiteQuantity,
		SaleRate:         payload.SaleRate,
		ProductionCost:   payload.ProductionCost,
		CreativeCount:    payload.CreativeCount,
		CreativeUnitCost: payload.CreativeUnitCost,
	}
	line.Periods = make(pq.Int64Array, 0, len(payload.Periods))
	for _, p := range payload.Periods {
		line.Periods = append(line.Periods, int64(p))
	}
	line.Areas = append(pq.StringArray{}, payload.Areas...)
	return line
}
