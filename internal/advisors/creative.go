package advisors

import "github.com/JasonR4/london-outfast-sub003/pkg/enums"

// CreativeInput is the creative coverage selection for one campaign.
type CreativeInput struct {
	CreativeAssets int
	Sites          int
}

// CreativeReport grades creative coverage per site. Options only propose
// increases; this advisory path never suggests reducing spend.
type CreativeReport struct {
	Ratio   float64            `json:"ratio"`
	Band    enums.CreativeBand `json:"band"`
	Options []CapacityOption   `json:"options,omitempty"`
}

// CreativeCapacity classifies the creatives-per-site ratio and proposes the
// increase that returns the campaign to a healthy band.
func CreativeCapacity(input CreativeInput) CreativeReport {
	if input.Sites <= 0 {
		report := CreativeReport{Band: enums.CreativeBandUnder}
		if input.CreativeAssets > 0 {
			// creatives with no sites booked: the only upward fix is sites
			report.Band = enums.CreativeBandOver
			report.Options = []CapacityOption{{
				Action:         enums.UpsellActionIncreaseSites,
				CurrentValue:   0,
				SuggestedValue: ceilDiv(input.CreativeAssets, 2),
			}}
		}
		return report
	}

	report := CreativeReport{
		Ratio: float64(input.CreativeAssets) / float64(input.Sites),
	}

	switch {
	case report.Ratio < 0.5:
		report.Band = enums.CreativeBandUnder
		suggested := ceilDiv(input.Sites, 2)
		if suggested > input.CreativeAssets {
			report.Options = []CapacityOption{{
				Action:         enums.UpsellActionIncreaseCreatives,
				CurrentValue:   input.CreativeAssets,
				SuggestedValue: suggested,
			}}
		}
	case report.Ratio <= 1.0:
		report.Band = enums.CreativeBandOptimal
	case report.Ratio <= 2.0:
		report.Band = enums.CreativeBandAcceptable
	default:
		report.Band = enums.CreativeBandOver
		suggested := ceilDiv(input.CreativeAssets, 2)
		if suggested > input.Sites {
			report.Options = []CapacityOption{{
				Action:         enums.UpsellActionIncreaseSites,
				CurrentValue:   input.Sites,
				SuggestedValue: suggested,
			}}
		}
	}
	return report
}
