package plans

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/JasonR4/london-outfast-sub003/pkg/db/models"
	"github.com/JasonR4/london-outfast-sub003/pkg/enums"
)

// PlanRepository defines the persistence surface required by the plan service.
type PlanRepository interface {
	WithTx(tx *gorm.DB) PlanRepository
	FindActiveBySession(ctx context.Context, sessionID string) (*models.PlanDraft, error)
	Create(ctx context.Context, draft *models.PlanDraft) error
	ReplaceLines(ctx context.Context, planID uuid.UUID, lines []models.PlanLine) error
	UpdateStatus(ctx context.Context, planID uuid.UUID, status enums.PlanStatus) error
}
