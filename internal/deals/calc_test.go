package deals

import (
	"context"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/JasonR4/london-outfast-sub003/pkg/db/models"
	pkgerrors "github.com/JasonR4/london-outfast-sub003/pkg/errors"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func TestCalculateDealScenario(t *testing.T) {
	t.Parallel()

	deal := models.Deal{
		Slug:        "summer-billboards",
		Name:        "Summer Billboards",
		DiscountPct: 45,
		Periods:     pq.Int64Array{17, 18},
		Items: []models.DealItem{
			{FormatName: "48 Sheet Billboard", Quantity: 3, UnitRateCard: 1500},
		},
	}

	calc, err := Calculate(deal, 20)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	item := calc.Items[0]
	if !almostEqual(item.PerPanelDeal, 825) {
		t.Fatalf("per panel deal = %v, want 825", item.PerPanelDeal)
	}
	if !almostEqual(calc.MediaDeal, 4950) {
		t.Fatalf("media deal = %v, want 4950", calc.MediaDeal)
	}
	if !almostEqual(calc.MediaRateCard, 9000) {
		t.Fatalf("media rate card = %v, want 9000", calc.MediaRateCard)
	}
	if !almostEqual(calc.SavingPct, 0.45) {
		t.Fatalf("saving pct = %v, want 0.45", calc.SavingPct)
	}
	if !almostEqual(calc.DiscountValue, 4050) {
		t.Fatalf("discount value = %v, want 4050", calc.DiscountValue)
	}
}

func TestCalculateProductionUplift(t *testing.T) {
	t.Parallel()

	override := 25.0
	deal := models.Deal{
		Slug:                "bus-bundle",
		DiscountPct:         10,
		ProductionUpliftPct: 10,
		Periods:             pq.Int64Array{17},
		Items: []models.DealItem{
			{FormatName: "a", Quantity: 2, UnitRateCard: 100, UnitProduction: 50},
			{FormatName: "b", Quantity: 1, UnitRateCard: 100, UnitProduction: 40, UpliftPctOverride: &override},
		},
	}

	calc, err := Calculate(deal, 20)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	// deal-level 10% uplift
	if !almostEqual(calc.Items[0].PerPanelProduction, 55) {
		t.Fatalf("item a production = %v, want 55", calc.Items[0].PerPanelProduction)
	}
	// per-item 25% override
	if !almostEqual(calc.Items[1].PerPanelProduction, 50) {
		t.Fatalf("item b production = %v, want 50", calc.Items[1].PerPanelProduction)
	}
	if !almostEqual(calc.Production, 160) {
		t.Fatalf("production total = %v, want 160", calc.Production)
	}
	if !almostEqual(calc.SubtotalExVAT, calc.MediaDeal+calc.Production) {
		t.Fatalf("subtotal = %v, want media %v + production %v", calc.SubtotalExVAT, calc.MediaDeal, calc.Production)
	}
	if !almostEqual(calc.VAT.TotalIncVAT, calc.SubtotalExVAT*1.20) {
		t.Fatalf("total inc vat = %v, want %v", calc.VAT.TotalIncVAT, calc.SubtotalExVAT*1.20)
	}
}

func TestCalculateDedupesDealPeriods(t *testing.T) {
	t.Parallel()

	deal := models.Deal{
		Slug:        "summer-billboards",
		DiscountPct: 45,
		Periods:     pq.Int64Array{17, 18, 18, 17},
		Items: []models.DealItem{
			{FormatName: "48 Sheet Billboard", Quantity: 3, UnitRateCard: 1500},
		},
	}

	calc, err := Calculate(deal, 20)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if calc.PeriodCount != 2 {
		t.Fatalf("period count = %d, want 2", calc.PeriodCount)
	}
	// duplicated rows must not inflate the media totals
	if !almostEqual(calc.MediaDeal, 4950) {
		t.Fatalf("media deal = %v, want 4950", calc.MediaDeal)
	}
	if !almostEqual(calc.MediaRateCard, 9000) {
		t.Fatalf("media rate card = %v, want 9000", calc.MediaRateCard)
	}
}

func TestCalculateZeroRateCardHasZeroSaving(t *testing.T) {
	t.Parallel()

	calc, err := Calculate(models.Deal{Slug: "empty", DiscountPct: 45}, 20)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if calc.SavingPct != 0 {
		t.Fatalf("saving pct = %v, want 0", calc.SavingPct)
	}
}

func TestCalculateRejectsInvalid(t *testing.T) {
	t.Parallel()

	if _, err := Calculate(models.Deal{DiscountPct: 120}, 20); err == nil {
		t.Fatal("expected error for discount over 100")
	}
	deal := models.Deal{
		DiscountPct: 10,
		Items:       []models.DealItem{{Quantity: -1, UnitRateCard: 100}},
	}
	if _, err := Calculate(deal, 20); err == nil {
		t.Fatal("expected error for negative quantity")
	}
}

type stubDealRepo struct {
	deal *models.Deal
	err  error
}

func (s *stubDealRepo) FindByID(context.Context, uuid.UUID) (*models.Deal, error) {
	return s.deal, s.err
}

func (s *stubDealRepo) FindBySlug(context.Context, string) (*models.Deal, error) {
	return s.deal, s.err
}

func (s *stubDealRepo) ListActive(context.Context) ([]models.Deal, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.deal == nil {
		return nil, nil
	}
	return []models.Deal{*s.deal}, nil
}

func TestServiceGetPricing(t *testing.T) {
	t.Parallel()

	svc, err := NewService(&stubDealRepo{deal: &models.Deal{
		Slug:        "summer-billboards",
		DiscountPct: 45,
		Active:      true,
		Periods:     pq.Int64Array{17, 18},
		Items:       []models.DealItem{{FormatName: "f", Quantity: 3, UnitRateCard: 1500}},
	}}, 20)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	calc, err := svc.GetPricing(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("GetPricing: %v", err)
	}
	if !almostEqual(calc.MediaDeal, 4950) {
		t.Fatalf("media deal = %v, want 4950", calc.MediaDeal)
	}
}

func TestServiceGetPricingNotFound(t *testing.T) {
	t.Parallel()

	svc, err := NewService(&stubDealRepo{err: gorm.ErrRecordNotFound}, 20)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, err = svc.GetPricing(context.Background(), uuid.New())
	if tagged := pkgerrors.As(err); tagged == nil || tagged.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestServiceInactiveDealHidden(t *testing.T) {
	t.Parallel()

	svc, err := NewService(&stubDealRepo{deal: &models.Deal{Slug: "old", Active: false}}, 20)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, err = svc.GetPricing(context.Background(), uuid.New())
	if tagged := pkgerrors.As(err); tagged == nil || tagged.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("err = %v, want not found", err)
	}
}
