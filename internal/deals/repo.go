package deals

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/JasonR4/london-outfast-sub003/pkg/db/models"
)

// Repository encapsulates deal persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds the repository to the provided GORM handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID returns the deal with its items loaded.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Deal, error) {
	var deal models.Deal
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&deal).Error
	if err != nil {
		return nil, err
	}
	return &deal, nil
}

// FindBySlug returns the deal with the given slug.
func (r *Repository) FindBySlug(ctx context.Context, slug string) (*models.Deal, error) {
	var deal models.Deal
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("slug = ?", slug).
		First(&deal).Error
	if err != nil {
		return nil, err
	}
	return &deal, nil
}

// ListActive returns every deal currently offered, newest first.
func (r *Repository) ListActive(ctx context.Context) ([]models.Deal, error) {
	var rows []models.Deal
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("active = ?", true).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}
