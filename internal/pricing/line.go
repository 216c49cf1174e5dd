package pricing

import (
	"fmt"
	"math"

	"github.com/JasonR4/london-outfast-sub003/pkg/enums"
	pkgerrors "github.com/JasonR4/london-outfast-sub003/pkg/errors"
	"github.com/JasonR4/london-outfast-sub003/pkg/periods"
)

// CampaignLine is one format's raw contribution to a campaign. Period IDs may
// arrive duplicated or unsorted; PriceLine canonicalizes them.
type CampaignLine struct {
	FormatName       string
	Category         enums.FormatCategory
	Sites            int
	Periods          []int
	SaleRate         float64
	ProductionCost   float64
	CreativeCount    int
	CreativeUnitCost float64
}

// PricedLine is the computed projection of a CampaignLine. It is never stored;
// callers recompute it whenever a source attribute changes.
type PricedLine struct {
	FormatName          string               `json:"formatName"`
	Category            enums.FormatCategory `json:"category"`
	Sites               int                  `json:"sites"`
	Periods             []int                `json:"periods"`
	UniquePeriods       int                  `json:"uniquePeriods"`
	InCharges           int                  `json:"inCharges"`
	PrintRuns           int                  `json:"printRuns"`
	MediaBeforeDiscount float64              `json:"mediaBeforeDiscount"`
	DiscountApplied     bool                 `json:"discountApplied"`
	DiscountAmount      float64              `json:"discountAmount"`
	MediaAfterDiscount  float64              `json:"mediaAfterDiscount"`
	ProductionCost      float64              `json:"productionCost"`
	CreativeCost        float64              `json:"creativeCost"`
	Subtotal            float64              `json:"subtotal"`
}

// PriceLine computes one line's costs. A line with zero sites or no periods
// selected is a valid "not yet priced" draft and yields an all-zero result.
// Negative or non-finite inputs are rejected so a single bad line cannot
// corrupt campaign totals downstream.
func PriceLine(cfg Config, line CampaignLine) (PricedLine, error) {
	if err := validateLine(line); err != nil {
		return PricedLine{}, err
	}

	canonical := periods.Canonical(line.Periods)
	priced := PricedLine{
		FormatName: line.FormatName,
		Category:   line.Category,
		Sites:      line.Sites,
		Periods:    canonical,
	}

	if line.Sites == 0 || len(canonical) == 0 {
		return priced, nil
	}

	priced.UniquePeriods = len(canonical)
	priced.InCharges = line.Sites * priced.UniquePeriods
	priced.PrintRuns = periods.CountPrintRuns(line.Periods)
	priced.MediaBeforeDiscount = line.SaleRate * float64(priced.InCharges)

	if priced.UniquePeriods >= cfg.VolumeDiscountPeriodThreshold {
		priced.DiscountApplied = true
		priced.DiscountAmount = priced.MediaBeforeDiscount * cfg.VolumeDiscountRate
	}
	priced.MediaAfterDiscount = priced.MediaBeforeDiscount - priced.DiscountAmount

	priced.ProductionCost = line.ProductionCost

	if line.CreativeCount > 0 {
		unit := line.CreativeUnitCost
		if unit == 0 {
			unit = cfg.DefaultCreativeUnitCost
		}
		priced.CreativeCost = float64(line.CreativeCount) * unit
	}

	priced.Subtotal = priced.MediaAfterDiscount + priced.ProductionCost + priced.CreativeCost
	return priced, nil
}

func validateLine(line CampaignLine) error {
	if line.Sites < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "site quantity cannot be negative")
	}
	if line.CreativeCount < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "creative count cannot be negative")
	}
	checks := []struct {
		name string
		v    float64
	}{
		{"sale rate", line.SaleRate},
		{"production cost", line.ProductionCost},
		{"creative unit cost", line.CreativeUnitCost},
	}
	for _, c := range checks {
		name, v := c.name, c.v
		if v < 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s cannot be negative", name))
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s must be a finite number", name))
		}
	}
	return nil
}
