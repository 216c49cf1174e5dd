package advisors

import (
	"math"
	"sort"
	"strings"

	"github.com/JasonR4/london-outfast-sub003/pkg/enums"
	"github.com/JasonR4/london-outfast-sub003/pkg/periods"
)

// CapacityInput is the raw selection an advisor reads. SaleRate is the
// per-site per-period rate, used only to cost the upsell options.
type CapacityInput struct {
	Sites    int
	Periods  []int
	Areas    []string
	SaleRate float64
}

// CapacityOption proposes one adjustment that closes a capacity shortfall.
// Options only ever increase a value.
type CapacityOption struct {
	Action          enums.UpsellAction `json:"action"`
	CurrentValue    int                `json:"currentValue"`
	SuggestedValue  int                `json:"suggestedValue"`
	CostIncrease    float64            `json:"costIncrease"`
	CostIncreasePct float64            `json:"costIncreasePct"`
}

// CapacityReport grades selected areas against the sites × periods capacity.
type CapacityReport struct {
	MaxCapacity    int                  `json:"maxCapacity"`
	UsedLocations  int                  `json:"usedLocations"`
	UtilizationPct float64              `json:"utilizationPct"`
	Status         enums.CapacityStatus `json:"status"`
	Options        []CapacityOption     `json:"options,omitempty"`
}

// LocationCapacity reports how many distinct areas the selection covers
// against the booked capacity, with upsell options when it overflows.
// Options are ranked cheapest relative increase first.
func LocationCapacity(input CapacityInput) CapacityReport {
	periodCount := periods.UniqueCount(input.Periods)
	used := distinctAreas(input.Areas)

	report := CapacityReport{
		MaxCapacity:   input.Sites * periodCount,
		UsedLocations: used,
	}
	if report.MaxCapacity <= 0 {
		if used > 0 {
			report.Status = enums.CapacityStatusOverLimit
		} else {
			report.Status = enums.CapacityStatusAvailable
		}
		return report
	}

	report.UtilizationPct = float64(used) / float64(report.MaxCapacity) * 100

	switch {
	case report.UtilizationPct < 80:
		report.Status = enums.CapacityStatusAvailable
	case report.UtilizationPct < 100:
		report.Status = enums.CapacityStatusWarning
	case report.UtilizationPct == 100:
		report.Status = enums.CapacityStatusAtLimit
	default:
		report.Status = enums.CapacityStatusOverLimit
		report.Options = capacityOptions(input.Sites, periodCount, used, input.SaleRate)
	}
	return report
}

func capacityOptions(sites, periodCount, used int, saleRate float64) []CapacityOption {
	currentCost := float64(sites) * float64(periodCount) * saleRate
	options := []CapacityOption{}

	if periodCount > 0 {
		suggested := ceilDiv(used, periodCount)
		if suggested > sites {
			options = append(options, costOption(
				enums.UpsellActionIncreaseSites,
				sites, suggested,
				currentCost,
				float64(suggested)*float64(periodCount)*saleRate,
			))
		}
	}
	if sites > 0 {
		suggested := ceilDiv(used, sites)
		if suggested > periodCount {
			options = append(options, costOption(
				enums.UpsellActionIncreasePeriods,
				periodCount, suggested,
				currentCost,
				float64(sites)*float64(suggested)*saleRate,
			))
		}
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].CostIncreasePct < options[j].CostIncreasePct
	})
	return options
}

func costOption(action enums.UpsellAction, current, suggested int, currentCost, suggestedCost float64) CapacityOption {
	opt := CapacityOption{
		Action:         action,
		CurrentValue:   current,
		SuggestedValue: suggested,
		CostIncrease:   suggestedCost - currentCost,
	}
	if currentCost > 0 {
		opt.CostIncreasePct = opt.CostIncrease / currentCost * 100
	}
	return opt
}

func distinctAreas(areas []string) int {
	seen := map[string]struct{}{}
	for _, area := range areas {
		trimmed := strings.TrimSpace(area)
		if trimmed == "" {
			continue
		}
		seen[trimmed] = struct{}{}
	}
	return len(seen)
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return int(math.Ceil(float64(a) / float64(b)))
}
