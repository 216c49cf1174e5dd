package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/JasonR4/london-outfast-sub003/pkg/enums"
	"github.com/JasonR4/london-outfast-sub003/pkg/periods"
)

// Deal is a pre-packaged campaign template with its own discount semantics:
// an explicit percentage off the rate card plus an optional production
// uplift, applied uniformly to every item. Deals never use the volume rule.
type Deal struct {
	ID                  uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Slug                string         `gorm:"column:slug;not null;uniqueIndex"`
	Name                string         `gorm:"column:name;not null"`
	DiscountPct         float64        `gorm:"column:discount_pct;not null"`
	ProductionUpliftPct float64        `gorm:"column:production_uplift_pct;not null;default:0"`
	Periods             pq.Int64Array  `gorm:"column:periods;type:integer[]"`
	Currency            enums.Currency `gorm:"column:currency;not null;default:'GBP'"`
	Active              bool           `gorm:"column:active;not null;default:true"`
	Items               []DealItem     `gorm:"foreignKey:DealID;constraint:OnDelete:CASCADE"`
	CreatedAt           time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

// DealItem is one format bundle inside a deal.
type DealItem struct {
	ID                uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	DealID            uuid.UUID `gorm:"column:deal_id;type:uuid;not null"`
	FormatName        string    `gorm:"column:format_name;not null"`
	Quantity          int       `gorm:"column:quantity;not null"`
	UnitRateCard      float64   `gorm:"column:unit_rate_card;not null"`
	UnitProduction    float64   `gorm:"column:unit_production;not null;default:0"`
	UpliftPctOverride *float64  `gorm:"column:uplift_pct_override"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime"`
}

// PeriodNumbers converts the stored array to the pricing core's int form.
func (d Deal) PeriodNumbers() []int {
	out := make([]int, 0, len(d.Periods))
	for _, p := range d.Periods {
		out = append(out, int(p))
	}
	return out
}

// PeriodCount returns the number of distinct in-charge periods covered by
// the deal. A duplicated period in the stored row counts once.
func (d Deal) PeriodCount() int {
	return periods.UniqueCount(d.PeriodNumbers())
}
