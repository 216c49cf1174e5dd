package deals

import (
	"github.com/JasonR4/london-outfast-sub003/pkg/db/models"
	pkgerrors "github.com/JasonR4/london-outfast-sub003/pkg/errors"
	"github.com/JasonR4/london-outfast-sub003/pkg/money"
)

// ItemCalc is one deal item priced at the deal's terms.
type ItemCalc struct {
	FormatName         string  `json:"formatName"`
	Quantity           int     `json:"quantity"`
	UnitRateCard       float64 `json:"unitRateCard"`
	PerPanelDeal       float64 `json:"perPanelDeal"`
	PerPanelProduction float64 `json:"perPanelProduction"`
	MediaRateCard      float64 `json:"mediaRateCard"`
	MediaDeal          float64 `json:"mediaDeal"`
	ProductionTotal    float64 `json:"productionTotal"`
	Subtotal           float64 `json:"subtotal"`
}

// DealCalc is the priced projection of a whole deal. Deals carry their own
// explicit discount percentage; the volume-threshold rule never applies here.
type DealCalc struct {
	Slug          string            `json:"slug"`
	Name          string            `json:"name"`
	DiscountPct   float64           `json:"discountPct"`
	PeriodCount   int               `json:"periodCount"`
	Items         []ItemCalc        `json:"items"`
	MediaRateCard float64           `json:"mediaRateCard"`
	MediaDeal     float64           `json:"mediaDeal"`
	DiscountValue float64           `json:"discountValue"`
	SavingPct     float64           `json:"savingPct"`
	Production    float64           `json:"production"`
	SubtotalExVAT float64           `json:"subtotalExVat"`
	VAT           money.VATBreakdown `json:"vat"`
}

// Calculate prices every item of a deal at the deal's discount and production
// uplift. Per-item uplift overrides replace the deal-level uplift.
func Calculate(deal models.Deal, vatRatePercent float64) (DealCalc, error) {
	if deal.DiscountPct < 0 || deal.DiscountPct > 100 {
		return DealCalc{}, pkgerrors.New(pkgerrors.CodeValidation, "deal discount must be between 0 and 100 percent")
	}

	calc := DealCalc{
		Slug:        deal.Slug,
		Name:        deal.Name,
		DiscountPct: deal.DiscountPct,
		PeriodCount: deal.PeriodCount(),
		Items:       make([]ItemCalc, 0, len(deal.Items)),
	}

	for _, item := range deal.Items {
		if item.Quantity < 0 || item.UnitRateCard < 0 || item.UnitProduction < 0 {
			return DealCalc{}, pkgerrors.New(pkgerrors.CodeValidation, "deal item values cannot be negative")
		}

		uplift := deal.ProductionUpliftPct
		if item.UpliftPctOverride != nil {
			uplift = *item.UpliftPctOverride
		}

		ic := ItemCalc{
			FormatName:         item.FormatName,
			Quantity:           item.Quantity,
			UnitRateCard:       item.UnitRateCard,
			PerPanelDeal:       item.UnitRateCard * (1 - deal.DiscountPct/100),
			PerPanelProduction: item.UnitProduction * (1 + uplift/100),
		}
		ic.MediaRateCard = float64(item.Quantity) * item.UnitRateCard * float64(calc.PeriodCount)
		ic.MediaDeal = float64(item.Quantity) * ic.PerPanelDeal * float64(calc.PeriodCount)
		ic.ProductionTotal = float64(item.Quantity) * ic.PerPanelProduction
		ic.Subtotal = ic.MediaDeal + ic.ProductionTotal

		calc.MediaRateCard += ic.MediaRateCard
		calc.MediaDeal += ic.MediaDeal
		calc.Production += ic.ProductionTotal
		calc.Items = append(calc.Items, ic)
	}

	calc.DiscountValue = calc.MediaRateCard - calc.MediaDeal
	if calc.MediaRateCard > 0 {
		calc.SavingPct = calc.DiscountValue / calc.MediaRateCard
	}
	calc.SubtotalExVAT = calc.MediaDeal + calc.Production
	calc.VAT = money.CalculateVAT(calc.SubtotalExVAT, vatRatePercent)
	return calc, nil
}
