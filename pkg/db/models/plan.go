package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/JasonR4/london-outfast-sub003/pkg/enums"
)

// PlanDraft is the session-scoped campaign draft a visitor builds before
// requesting a quote. Only inputs are stored; priced values are always
// recomputed from the lines, never persisted.
type PlanDraft struct {
	ID        uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SessionID string           `gorm:"column:session_id;not null;uniqueIndex:idx_plan_session_active,where:status = 'draft'"`
	Status    enums.PlanStatus `gorm:"column:status;not null;default:'draft'"`
	Currency  enums.Currency   `gorm:"column:currency;not null;default:'GBP'"`
	Lines     []PlanLine       `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

// PlanLine captures one format's raw selections within a draft.
type PlanLine struct {
	ID               uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	PlanID           uuid.UUID            `gorm:"column:plan_id;type:uuid;not null"`
	FormatName       string               `gorm:"column:format_name;not null"`
	Category         enums.FormatCategory `gorm:"column:category;not null"`
	SiteQuantity     int                  `gorm:"column:site_quantity;not null"`
	Periods          pq.Int64Array        `gorm:"column:periods;type:integer[]"`
	Areas            pq.StringArray       `gorm:"column:areas;type:text[]"`
	SaleRate         float64              `gorm:"column:sale_rate;not null"`
	ProductionCost   float64              `gorm:"column:production_cost;not null;default:0"`
	CreativeCount    int                  `gorm:"column:creative_count;not null;default:0"`
	CreativeUnitCost float64              `gorm:"column:creative_unit_cost;not null;default:0"`
	CreatedAt        time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}

// PeriodNumbers converts the stored array to the pricing core's int form.
func (l PlanLine) PeriodNumbers() []int {
	out := make([]int, 0, len(l.Periods))
	for _, p := range l.Periods {
		out = append(out, int(p))
	}
	return out
}
