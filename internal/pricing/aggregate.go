package pricing

import (
	"sort"

	"github.com/JasonR4/london-outfast-sub003/pkg/money"
)

// FormatGroup is the per-format aggregation bucket. Periods holds the union of
// the member lines' distinct periods, not their sum.
type FormatGroup struct {
	FormatName          string  `json:"formatName"`
	Sites               int     `json:"sites"`
	Periods             []int   `json:"periods"`
	InCharges           int     `json:"inCharges"`
	MediaBeforeDiscount float64 `json:"mediaBeforeDiscount"`
	DiscountAmount      float64 `json:"discountAmount"`
	MediaAfterDiscount  float64 `json:"mediaAfterDiscount"`
	ProductionCost      float64 `json:"productionCost"`
	CreativeCost        float64 `json:"creativeCost"`
	Subtotal            float64 `json:"subtotal"`
	SharePercent        float64 `json:"sharePercent"`
}

// CampaignTotals is the campaign-wide sum across every priced line.
type CampaignTotals struct {
	MediaBeforeDiscount float64 `json:"mediaBeforeDiscount"`
	DiscountAmount      float64 `json:"discountAmount"`
	MediaAfterDiscount  float64 `json:"mediaAfterDiscount"`
	ProductionCost      float64 `json:"productionCost"`
	CreativeCost        float64 `json:"creativeCost"`
	SubtotalExVAT       float64 `json:"subtotalExVat"`
	VATRatePercent      float64 `json:"vatRatePercent"`
	VATAmount           float64 `json:"vatAmount"`
	TotalIncVAT         float64 `json:"totalIncVat"`
}

// AggregateByFormat groups priced lines by exact format name and computes each
// group's share of the campaign total. Groups are returned largest spend first;
// that ordering is part of the display contract.
func AggregateByFormat(lines []PricedLine) []FormatGroup {
	byName := map[string]*FormatGroup{}
	periodSets := map[string]map[int]struct{}{}
	order := []string{}

	for _, line := range lines {
		group, ok := byName[line.FormatName]
		if !ok {
			group = &FormatGroup{FormatName: line.FormatName}
			byName[line.FormatName] = group
			periodSets[line.FormatName] = map[int]struct{}{}
			order = append(order, line.FormatName)
		}
		group.Sites += line.Sites
		group.InCharges += line.InCharges
		group.MediaBeforeDiscount += line.MediaBeforeDiscount
		group.DiscountAmount += line.DiscountAmount
		group.MediaAfterDiscount += line.MediaAfterDiscount
		group.ProductionCost += line.ProductionCost
		group.CreativeCost += line.CreativeCost
		group.Subtotal += line.Subtotal
		for _, p := range line.Periods {
			periodSets[line.FormatName][p] = struct{}{}
		}
	}

	var grandTotal float64
	groups := make([]FormatGroup, 0, len(order))
	for _, name := range order {
		group := byName[name]
		set := periodSets[name]
		group.Periods = make([]int, 0, len(set))
		for p := range set {
			group.Periods = append(group.Periods, p)
		}
		sort.Ints(group.Periods)
		grandTotal += group.Subtotal
		groups = append(groups, *group)
	}

	if grandTotal > 0 {
		for i := range groups {
			groups[i].SharePercent = groups[i].Subtotal / grandTotal * 100
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Subtotal != groups[j].Subtotal {
			return groups[i].Subtotal > groups[j].Subtotal
		}
		return groups[i].FormatName < groups[j].FormatName
	})
	return groups
}

// Totals sums every cost component across lines and derives VAT from the
// ex-VAT subtotal.
func Totals(cfg Config, lines []PricedLine) CampaignTotals {
	t := CampaignTotals{VATRatePercent: cfg.VATRatePercent}
	for _, line := range lines {
		t.MediaBeforeDiscount += line.MediaBeforeDiscount
		t.DiscountAmount += line.DiscountAmount
		t.MediaAfterDiscount += line.MediaAfterDiscount
		t.ProductionCost += line.ProductionCost
		t.CreativeCost += line.CreativeCost
	}
	t.SubtotalExVAT = t.MediaAfterDiscount + t.ProductionCost + t.CreativeCost

	vat := money.CalculateVAT(t.SubtotalExVAT, cfg.VATRatePercent)
	t.VATAmount = vat.VATAmount
	t.TotalIncVAT = vat.TotalIncVAT
	return t
}
