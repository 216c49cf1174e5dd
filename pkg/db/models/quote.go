package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/JasonR4/london-outfast-sub003/pkg/enums"
)

// Quote is a submitted brief with its server-computed monetary snapshot. The
// snapshot fields feed the CRM payload; the full priced breakdown is kept as
// jsonb for audit.
type Quote struct {
	ID          uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SessionID   string            `gorm:"column:session_id;not null;index"`
	Email       string            `gorm:"column:email;not null"`
	Name        string            `gorm:"column:name;not null"`
	Company     *string           `gorm:"column:company"`
	Phone       *string           `gorm:"column:phone"`
	Status      enums.QuoteStatus `gorm:"column:status;not null;default:'submitted'"`
	Currency    enums.Currency    `gorm:"column:currency;not null;default:'GBP'"`
	LineCount   int               `gorm:"column:line_count;not null"`
	TotalCost   float64           `gorm:"column:total_cost;not null"`
	VATAmount   float64           `gorm:"column:vat_amount;not null"`
	TotalIncVAT float64           `gorm:"column:total_inc_vat;not null"`
	Breakdown   json.RawMessage   `gorm:"column:breakdown;type:jsonb"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
