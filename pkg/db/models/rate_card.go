package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/JasonR4/london-outfast-sub003/pkg/enums"
)

// RateCard holds the externally curated commercial terms for one OOH format.
// SaleRate is per site per in-charge period.
type RateCard struct {
	ID               uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	FormatName       string               `gorm:"column:format_name;not null;uniqueIndex"`
	Category         enums.FormatCategory `gorm:"column:category;not null"`
	SaleRate         float64              `gorm:"column:sale_rate;not null"`
	CreativeUnitCost float64              `gorm:"column:creative_unit_cost;not null;default:85"`
	Currency         enums.Currency       `gorm:"column:currency;not null;default:'GBP'"`
	ProductionTiers  []ProductionCostTier `gorm:"foreignKey:RateCardID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}

// ProductionCostTier is a quantity-banded production unit cost for a format.
// The applicable tier is the highest MinQuantity not exceeding the line's
// site quantity.
type ProductionCostTier struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	RateCardID  uuid.UUID `gorm:"column:rate_card_id;type:uuid;not null"`
	MinQuantity int       `gorm:"column:min_quantity;not null"`
	UnitCost    float64   `gorm:"column:unit_cost;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}
