package quotes

import (
	"github.com/JasonR4/london-outfast-sub003/internal/advisors"
	"github.com/JasonR4/london-outfast-sub003/internal/pricing"
	"github.com/JasonR4/london-outfast-sub003/pkg/enums"
	"github.com/JasonR4/london-outfast-sub003/pkg/periods"
	"github.com/JasonR4/london-outfast-sub003/pkg/types"
)

// Visibility of monetary values in a preview.
const (
	VisibilityFull   = "full"
	VisibilityMasked = "masked"
)

// LineInput is one campaign line as submitted by the client. Periods accepts
// mixed numeric and string identifiers.
type LineInput struct {
	FormatName       string               `json:"format_name" validate:"required"`
	Category         enums.FormatCategory `json:"category,omitempty"`
	Sites            int                  `json:"sites" validate:"min=0"`
	Periods          periods.List         `json:"periods"`
	Areas            []string             `json:"areas,omitempty"`
	SaleRate         float64              `json:"sale_rate" validate:"min=0"`
	ProductionCost   float64              `json:"production_cost" validate:"min=0"`
	CreativeCount    int                  `json:"creative_count" validate:"min=0"`
	CreativeUnitCost float64              `json:"creative_unit_cost" validate:"min=0"`
}

// PreviewInput is the payload for a priced campaign preview.
type PreviewInput struct {
	Currency enums.Currency `json:"currency,omitempty"`
	Lines    []LineInput    `json:"lines" validate:"required,min=1,dive"`
}

// SubmitInput is the payload for submitting a brief.
type SubmitInput struct {
	Email    string         `json:"email" validate:"required,email"`
	Name     string         `json:"name" validate:"required"`
	Company  *string        `json:"company,omitempty"`
	Phone    *string        `json:"phone,omitempty"`
	Currency enums.Currency `json:"currency,omitempty"`
	Lines    []LineInput    `json:"lines" validate:"required,min=1,dive"`
}

// LineDisplay carries the formatted monetary strings for one line. Every
// field renders as the mask when pricing is gated.
type LineDisplay struct {
	MediaBeforeDiscount string `json:"media_before_discount"`
	DiscountAmount      string `json:"discount_amount"`
	MediaAfterDiscount  string `json:"media_after_discount"`
	ProductionCost      string `json:"production_cost"`
	CreativeCost        string `json:"creative_cost"`
	Subtotal            string `json:"subtotal"`
}

// TotalsDisplay carries the formatted campaign totals.
type TotalsDisplay struct {
	SubtotalExVAT string `json:"subtotal_ex_vat"`
	VATAmount     string `json:"vat_amount"`
	TotalIncVAT   string `json:"total_inc_vat"`
}

// PreviewLine pairs one priced line with its advisory reports and display
// strings.
type PreviewLine struct {
	Priced   pricing.PricedLine      `json:"priced"`
	Display  LineDisplay             `json:"display"`
	Capacity advisors.CapacityReport `json:"capacity"`
	Creative advisors.CreativeReport `json:"creative"`
}

// PreviewResult is the full priced campaign projection.
type PreviewResult struct {
	Visibility string                 `json:"visibility"`
	Currency   enums.Currency         `json:"currency"`
	Lines      []PreviewLine          `json:"lines"`
	Groups     []pricing.FormatGroup  `json:"groups"`
	Totals     pricing.CampaignTotals `json:"totals"`
	Display    TotalsDisplay          `json:"display"`
	Warnings   types.LineWarnings     `json:"warnings,omitempty"`
}
