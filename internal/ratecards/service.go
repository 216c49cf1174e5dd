package ratecards

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/JasonR4/london-outfast-sub003/pkg/db/models"
	"github.com/JasonR4/london-outfast-sub003/pkg/enums"
	pkgerrors "github.com/JasonR4/london-outfast-sub003/pkg/errors"
	"github.com/JasonR4/london-outfast-sub003/pkg/logger"
	"github.com/JasonR4/london-outfast-sub003/pkg/periods"
)

const cacheScope = "ratecards"

type cardLoader interface {
	FindByFormatName(ctx context.Context, formatName string) (*models.RateCard, error)
	ListByCategory(ctx context.Context, category enums.FormatCategory) ([]models.RateCard, error)
}

type cacheStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	CacheKey(scope string, parts ...string) string
}

// Service exposes rate card lookup with a read-through cache. Rate cards are
// externally curated and change rarely; a short TTL keeps edits visible
// without hitting Postgres on every pricing call.
type Service interface {
	GetByFormatName(ctx context.Context, formatName string) (*models.RateCard, error)
	ListByCategory(ctx context.Context, category enums.FormatCategory) ([]models.RateCard, error)
}

type service struct {
	repo  cardLoader
	cache cacheStore
	ttl   time.Duration
	logg  *logger.Logger
}

// NewService builds a rate card service. The cache is optional; without it
// every lookup goes straight to the repository.
func NewService(repo cardLoader, cache cacheStore, ttl time.Duration, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("rate card repository required")
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &service{repo: repo, cache: cache, ttl: ttl, logg: logg}, nil
}

func (s *service) GetByFormatName(ctx context.Context, formatName string) (*models.RateCard, error) {
	if formatName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "format name is required")
	}

	if card, ok := s.fromCache(ctx, formatName); ok {
		return card, nil
	}

	card, err := s.repo.FindByFormatName(ctx, formatName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "rate card not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load rate card")
	}

	s.toCache(ctx, formatName, card)
	return card, nil
}

func (s *service) ListByCategory(ctx context.Context, category enums.FormatCategory) ([]models.RateCard, error) {
	if !category.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown format category")
	}
	rows, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list rate cards")
	}
	return rows, nil
}

func (s *service) fromCache(ctx context.Context, formatName string) (*models.RateCard, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, s.cache.CacheKey(cacheScope, formatName))
	if err != nil || raw == "" {
		return nil, false
	}
	var card models.RateCard
	if err := json.Unmarshal([]byte(raw), &card); err != nil {
		return nil, false
	}
	return &card, true
}

func (s *service) toCache(ctx context.Context, formatName string, card *models.RateCard) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(card)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, s.cache.CacheKey(cacheScope, formatName), string(raw), s.ttl); err != nil && s.logg != nil {
		s.logg.Warn(ctx, fmt.Sprintf("rate card cache write failed: %v", err))
	}
}

// ResolveProductionCost computes the line-level production cost: the
// applicable tier's unit cost times site quantity times the number of print
// runs the period selection requires. The applicable tier is the one with the
// highest MinQuantity not exceeding the site quantity.
func ResolveProductionCost(card *models.RateCard, siteQuantity int, periodIDs []int) float64 {
	if card == nil || siteQuantity <= 0 {
		return 0
	}
	tier := selectProductionTier(siteQuantity, card.ProductionTiers)
	if tier == nil {
		return 0
	}
	printRuns := periods.CountPrintRuns(periodIDs)
	if printRuns == 0 {
		printRuns = 1
	}
	return tier.UnitCost * float64(siteQuantity) * float64(printRuns)
}

func selectProductionTier(quantity int, tiers []models.ProductionCostTier) *models.ProductionCostTier {
	var selected *models.ProductionCostTier
	for i := range tiers {
		tier := &tiers[i]
		if tier.MinQuantity > quantity {
			continue
		}
		if selected == nil || tier.MinQuantity > selected.MinQuantity {
			selected = tier
		}
	}
	return selected
}
