package quotes

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/JasonR4/london-outfast-sub003/pkg/db/models"
)

// QuoteRepository defines the persistence surface required by the quote
// service.
type QuoteRepository interface {
	WithTx(tx *gorm.DB) QuoteRepository
	Create(ctx context.Context, quote *models.Quote) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Quote, error)
	ListBySession(ctx context.Context, sessionID string) ([]models.Quote, error)
}

type outboxAppender interface {
	Insert(tx *gorm.DB, event models.OutboxEvent) error
}
