package advisors

import (
	"testing"

	"github.com/JasonR4/london-outfast-sub003/pkg/enums"
)

func TestLocationCapacityStatusBands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		sites int
		areas int
		want  enums.CapacityStatus
	}{
		{"well under", 5, 3, enums.CapacityStatusAvailable},       // 3/10 = 30%
		{"just under warning", 10, 7, enums.CapacityStatusAvailable}, // 7/20 = 35%
		{"warning band", 5, 8, enums.CapacityStatusWarning},       // 8/10 = 80%
		{"upper warning", 5, 9, enums.CapacityStatusWarning},      // 9/10 = 90%
		{"at limit", 5, 10, enums.CapacityStatusAtLimit},          // 10/10
		{"over limit", 5, 12, enums.CapacityStatusOverLimit},      // 12/10
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			report := LocationCapacity(CapacityInput{
				Sites:    tc.sites,
				Periods:  []int{17, 18},
				Areas:    makeAreas(tc.areas),
				SaleRate: 500,
			})
			if report.Status != tc.want {
				t.Fatalf("status = %s, want %s (utilization %v)", report.Status, tc.want, report.UtilizationPct)
			}
		})
	}
}

func makeAreas(n int) []string {
	areas := make([]string, 0, n)
	for i := 0; i < n; i++ {
		areas = append(areas, string(rune('A'+i)))
	}
	return areas
}

func TestLocationCapacityDeduplicatesAreas(t *testing.T) {
	t.Parallel()

	report := LocationCapacity(CapacityInput{
		Sites:   2,
		Periods: []int{17, 18},
		Areas:   []string{"Camden", "Camden", " Camden ", "Soho", ""},
	})
	if report.UsedLocations != 2 {
		t.Fatalf("used = %d, want 2", report.UsedLocations)
	}
}

func TestLocationCapacityOverLimitOptions(t *testing.T) {
	t.Parallel()

	// capacity 2x2=4, 6 areas selected
	report := LocationCapacity(CapacityInput{
		Sites:    2,
		Periods:  []int{17, 18},
		Areas:    makeAreas(6),
		SaleRate: 500,
	})
	if report.Status != enums.CapacityStatusOverLimit {
		t.Fatalf("status = %s, want over_limit", report.Status)
	}
	if len(report.Options) != 2 {
		t.Fatalf("options = %d, want 2", len(report.Options))
	}

	for i, opt := range report.Options {
		if opt.SuggestedValue <= opt.CurrentValue {
			t.Fatalf("option %d suggests %d from %d, must only increase", i, opt.SuggestedValue, opt.CurrentValue)
		}
		if opt.CostIncrease <= 0 {
			t.Fatalf("option %d cost increase = %v, want positive", i, opt.CostIncrease)
		}
	}
	// both paths need 3 of the other axis here, so pct ties at 50% each
	if report.Options[0].CostIncreasePct > report.Options[1].CostIncreasePct {
		t.Fatalf("options not ranked cheapest first: %+v", report.Options)
	}

	for _, opt := range report.Options {
		switch opt.Action {
		case enums.UpsellActionIncreaseSites:
			if opt.SuggestedValue != 3 {
				t.Fatalf("suggested sites = %d, want 3", opt.SuggestedValue)
			}
		case enums.UpsellActionIncreasePeriods:
			if opt.SuggestedValue != 3 {
				t.Fatalf("suggested periods = %d, want 3", opt.SuggestedValue)
			}
		default:
			t.Fatalf("unexpected action %s", opt.Action)
		}
	}
}

func TestLocationCapacityZeroCapacity(t *testing.T) {
	t.Parallel()

	empty := LocationCapacity(CapacityInput{})
	if empty.Status != enums.CapacityStatusAvailable {
		t.Fatalf("status = %s, want available for empty selection", empty.Status)
	}

	withAreas := LocationCapacity(CapacityInput{Areas: []string{"Camden"}})
	if withAreas.Status != enums.CapacityStatusOverLimit {
		t.Fatalf("status = %s, want over_limit when areas exceed zero capacity", withAreas.Status)
	}
}

func TestCreativeCapacityBands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		creatives int
		sites     int
		want      enums.CreativeBand
	}{
		{"under", 1, 4, enums.CreativeBandUnder},        // 0.25
		{"optimal lower", 2, 4, enums.CreativeBandOptimal}, // 0.5
		{"optimal upper", 4, 4, enums.CreativeBandOptimal}, // 1.0
		{"acceptable", 6, 4, enums.CreativeBandAcceptable}, // 1.5
		{"acceptable upper", 8, 4, enums.CreativeBandAcceptable}, // 2.0
		{"over", 9, 4, enums.CreativeBandOver},          // 2.25
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			report := CreativeCapacity(CreativeInput{CreativeAssets: tc.creatives, Sites: tc.sites})
			if report.Band != tc.want {
				t.Fatalf("band = %s, want %s (ratio %v)", report.Band, tc.want, report.Ratio)
			}
		})
	}
}

func TestCreativeCapacityOptionsOnlyIncrease(t *testing.T) {
	t.Parallel()

	under := CreativeCapacity(CreativeInput{CreativeAssets: 1, Sites: 10})
	if len(under.Options) != 1 || under.Options[0].Action != enums.UpsellActionIncreaseCreatives {
		t.Fatalf("under options = %+v, want one increase_creatives", under.Options)
	}
	if under.Options[0].SuggestedValue != 5 {
		t.Fatalf("suggested creatives = %d, want 5", under.Options[0].SuggestedValue)
	}

	over := CreativeCapacity(CreativeInput{CreativeAssets: 12, Sites: 4})
	if len(over.Options) != 1 || over.Options[0].Action != enums.UpsellActionIncreaseSites {
		t.Fatalf("over options = %+v, want one increase_sites", over.Options)
	}
	if over.Options[0].SuggestedValue != 6 {
		t.Fatalf("suggested sites = %d, want 6", over.Options[0].SuggestedValue)
	}

	for _, report := range []CreativeReport{under, over} {
		for _, opt := range report.Options {
			if opt.SuggestedValue <= opt.CurrentValue {
				t.Fatalf("option %+v must only increase", opt)
			}
		}
	}
}
