package ratecards

import (
	"context"

	"gorm.io/gorm"

	"github.com/JasonR4/london-outfast-sub003/pkg/db/models"
	"github.com/JasonR4/london-outfast-sub003/pkg/enums"
)

// Repository encapsulates rate card persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds the repository to the provided GORM handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByFormatName returns the rate card with its production tiers loaded.
func (r *Repository) FindByFormatName(ctx context.Context, formatName string) (*models.RateCard, error) {
	var card models.RateCard
	err := r.db.WithContext(ctx).
		Preload("ProductionTiers", func(db *gorm.DB) *gorm.DB {
			return db.Order("min_quantity ASC")
		}).
		Where("format_name = ?", formatName).
		First(&card).Error
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// ListByCategory returns every rate card in a category, alphabetical.
func (r *Repository) ListByCategory(ctx context.Context, category enums.FormatCategory) ([]models.RateCard, error) {
	var rows []models.RateCard
	err := r.db.WithContext(ctx).
		Preload("ProductionTiers").
		Where("category = ?", category).
		Order("format_name ASC").
		Find(&rows).Error
	return rows, err
}

// Upsert creates or refreshes a rate card keyed by format name.
func (r *Repository) Upsert(ctx context.Context, card *models.RateCard) error {
	return r.db.WithContext(ctx).Save(card).Error
}
