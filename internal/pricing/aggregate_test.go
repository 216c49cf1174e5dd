package pricing

import (
	"math"
	"reflect"
	"testing"
)

func mustPrice(t *testing.T, line CampaignLine) PricedLine {
	t.Helper()
	priced, err := PriceLine(DefaultConfig(), line)
	if err != nil {
		t.Fatalf("PriceLine(%s): %v", line.FormatName, err)
	}
	return priced
}

func sampleLines(t *testing.T) []PricedLine {
	t.Helper()
	return []PricedLine{
		mustPrice(t, CampaignLine{FormatName: "48 Sheet Billboard", Sites: 3, Periods: []int{17, 18, 19}, SaleRate: 500, ProductionCost: 300}),
		mustPrice(t, CampaignLine{FormatName: "Bus Rear", Sites: 2, Periods: []int{17, 19}, SaleRate: 1000, CreativeCount: 2}),
		mustPrice(t, CampaignLine{FormatName: "48 Sheet Billboard", Sites: 1, Periods: []int{19, 20}, SaleRate: 500}),
	}
}

func TestAggregateByFormatGroupsAndSorts(t *testing.T) {
	t.Parallel()

	groups := AggregateByFormat(sampleLines(t))
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}

	// 48 Sheet: 4350 + 1000 = 5350; Bus Rear: 4170. Largest spend first.
	if groups[0].FormatName != "48 Sheet Billboard" {
		t.Fatalf("first group = %q, want 48 Sheet Billboard", groups[0].FormatName)
	}
	if !almostEqual(groups[0].Subtotal, 5350) {
		t.Fatalf("billboard subtotal = %v, want 5350", groups[0].Subtotal)
	}
	if groups[0].Sites != 4 {
		t.Fatalf("billboard sites = %d, want 4", groups[0].Sites)
	}
	if groups[0].InCharges != 11 {
		t.Fatalf("billboard in charges = %d, want 11", groups[0].InCharges)
	}
	// period 19 appears on both billboard lines; the union keeps it once
	if want := []int{17, 18, 19, 20}; !reflect.DeepEqual(groups[0].Periods, want) {
		t.Fatalf("billboard periods = %v, want %v", groups[0].Periods, want)
	}
	if groups[1].FormatName != "Bus Rear" || !almostEqual(groups[1].Subtotal, 4170) {
		t.Fatalf("second group = %+v", groups[1])
	}
}

func TestAggregateSharesSumToHundred(t *testing.T) {
	t.Parallel()

	groups := AggregateByFormat(sampleLines(t))
	var shareSum float64
	for _, g := range groups {
		shareSum += g.SharePercent
	}
	if math.Abs(shareSum-100) > 1e-9 {
		t.Fatalf("share sum = %v, want 100", shareSum)
	}
}

func TestAggregateZeroGrandTotalHasZeroShares(t *testing.T) {
	t.Parallel()

	groups := AggregateByFormat([]PricedLine{
		mustPrice(t, CampaignLine{FormatName: "a", Sites: 0, Periods: []int{17}, SaleRate: 500}),
		mustPrice(t, CampaignLine{FormatName: "b", Sites: 2, SaleRate: 500}),
	})
	for _, g := range groups {
		if g.SharePercent != 0 {
			t.Fatalf("share for %q = %v, want 0", g.FormatName, g.SharePercent)
		}
	}
}

func TestAggregateConservation(t *testing.T) {
	t.Parallel()

	lines := sampleLines(t)
	groups := AggregateByFormat(lines)
	totals := Totals(DefaultConfig(), lines)

	var groupSum float64
	for _, g := range groups {
		groupSum += g.Subtotal
	}
	if math.Abs(groupSum-totals.SubtotalExVAT) > 1e-9 {
		t.Fatalf("group sum %v != campaign subtotal %v", groupSum, totals.SubtotalExVAT)
	}
}

func TestTotalsEndToEnd(t *testing.T) {
	t.Parallel()

	totals := Totals(DefaultConfig(), []PricedLine{
		mustPrice(t, CampaignLine{FormatName: "48 Sheet Billboard", Sites: 3, Periods: []int{17, 18, 19}, SaleRate: 500, ProductionCost: 300}),
	})

	if !almostEqual(totals.MediaBeforeDiscount, 4500) {
		t.Fatalf("media before = %v, want 4500", totals.MediaBeforeDiscount)
	}
	if !almostEqual(totals.DiscountAmount, 450) {
		t.Fatalf("discount = %v, want 450", totals.DiscountAmount)
	}
	if !almostEqual(totals.SubtotalExVAT, 4350) {
		t.Fatalf("subtotal = %v, want 4350", totals.SubtotalExVAT)
	}
	if !almostEqual(totals.VATAmount, 870) {
		t.Fatalf("vat = %v, want 870", totals.VATAmount)
	}
	if !almostEqual(totals.TotalIncVAT, 5220) {
		t.Fatalf("total inc vat = %v, want 5220", totals.TotalIncVAT)
	}
}

func TestTotalsVATInvariant(t *testing.T) {
	t.Parallel()

	totals := Totals(DefaultConfig(), sampleLines(t))
	if math.Abs(totals.TotalIncVAT-totals.SubtotalExVAT*1.20) > 0.01 {
		t.Fatalf("total inc vat %v != subtotal*1.20 %v", totals.TotalIncVAT, totals.SubtotalExVAT*1.20)
	}
}

func TestTotalsEmptyLines(t *testing.T) {
	t.Parallel()

	totals := Totals(DefaultConfig(), nil)
	if totals.SubtotalExVAT != 0 || totals.VATAmount != 0 || totals.TotalIncVAT != 0 {
		t.Fatalf("empty totals = %+v, want zeros", totals)
	}
}
