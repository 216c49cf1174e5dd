package deals

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/JasonR4/london-outfast-sub003/pkg/db/models"
	pkgerrors "github.com/JasonR4/london-outfast-sub003/pkg/errors"
)

type dealLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Deal, error)
	FindBySlug(ctx context.Context, slug string) (*models.Deal, error)
	ListActive(ctx context.Context) ([]models.Deal, error)
}

// Service exposes deal lookup and pricing.
type Service interface {
	GetPricing(ctx context.Context, id uuid.UUID) (*DealCalc, error)
	GetPricingBySlug(ctx context.Context, slug string) (*DealCalc, error)
	ListActive(ctx context.Context) ([]DealCalc, error)
}

type service struct {
	repo           dealLoader
	vatRatePercent float64
}

// NewService builds a deal service backed by the provided repository.
func NewService(repo dealLoader, vatRatePercent float64) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("deal repository required")
	}
	if vatRatePercent < 0 {
		return nil, fmt.Errorf("vat rate cannot be negative")
	}
	return &service{repo: repo, vatRatePercent: vatRatePercent}, nil
}

func (s *service) GetPricing(ctx context.Context, id uuid.UUID) (*DealCalc, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "deal id is required")
	}
	deal, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, dealLookupError(err)
	}
	return s.price(deal)
}

func (s *service) GetPricingBySlug(ctx context.Context, slug string) (*DealCalc, error) {
	if slug == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "deal slug is required")
	}
	deal, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, dealLookupError(err)
	}
	return s.price(deal)
}

func (s *service) ListActive(ctx context.Context) ([]DealCalc, error) {
	rows, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list deals")
	}
	calcs := make([]DealCalc, 0, len(rows))
	for _, deal := range rows {
		calc, err := Calculate(deal, s.vatRatePercent)
		if err != nil {
			return nil, err
		}
		calcs = append(calcs, calc)
	}
	return calcs, nil
}

func (s *service) price(deal *models.Deal) (*DealCalc, error) {
	if !deal.Active {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "deal is no longer offered")
	}
	calc, err := Calculate(*deal, s.vatRatePercent)
	if err != nil {
		return nil, err
	}
	return &calc, nil
}

func dealLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "deal not found")
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load deal")
}
