package plans

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/JasonR4/london-outfast-sub003/pkg/db/models"
	"github.com/JasonR4/london-outfast-sub003/pkg/enums"
)

// Repository encapsulates plan draft persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds the repository to the provided GORM handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx scopes the repository to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) PlanRepository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// FindActiveBySession returns the session's live draft with lines loaded.
func (r *Repository) FindActiveBySession(ctx context.Context, sessionID string) (*models.PlanDraft, error) {
	var draft models.PlanDraft
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("session_id = ? AND status = ?", sessionID, enums.PlanStatusDraft).
		First(&draft).Error
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

// Create inserts a new draft.
func (r *Repository) Create(ctx context.Context, draft *models.PlanDraft) error {
	if draft.Status == "" {
		draft.Status = enums.PlanStatusDraft
	}
	return r.db.WithContext(ctx).Create(draft).Error
}

// ReplaceLines swaps the draft's full line set atomically with the caller's
// transaction scope.
func (r *Repository) ReplaceLines(ctx context.Context, planID uuid.UUID, lines []models.PlanLine) error {
	if err := r.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Delete(&models.PlanLine{}).Error; err != nil {
		return err
	}
	if len(lines) == 0 {
		return nil
	}
	for i := range lines {
		lines[i].PlanID = planID
	}
	return r.db.WithContext(ctx).Create(&lines).Error
}

// UpdateStatus moves a draft through its lifecycle.
func (r *Repository) UpdateStatus(ctx context.Context, planID uuid.UUID, status enums.PlanStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.PlanDraft{}).
		Where("id = ?", planID).
		Update("status", status).Error
}
