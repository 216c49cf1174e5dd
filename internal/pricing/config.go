package pricing

import "github.com/JasonR4/london-outfast-sub003/pkg/config"

// Config carries the business-rule constants the pricing functions depend on.
// Every surface that prices a campaign receives the same Config value, so a
// rule change is a single edit with no risk of partial application.
type Config struct {
	// VolumeDiscountPeriodThreshold is the minimum number of distinct
	// in-charge periods a line must span to earn the volume discount.
	VolumeDiscountPeriodThreshold int

	// VolumeDiscountRate is the fraction removed from media cost when a
	// line qualifies.
	VolumeDiscountRate float64

	// VATRatePercent is the VAT percentage applied to the ex-VAT subtotal.
	VATRatePercent float64

	// DefaultCreativeUnitCost is used when a line carries creatives but no
	// explicit unit cost.
	DefaultCreativeUnitCost float64
}

// DefaultConfig returns the standard UK commercial terms.
func DefaultConfig() Config {
	return Config{
		VolumeDiscountPeriodThreshold: 3,
		VolumeDiscountRate:            0.10,
		VATRatePercent:                20,
		DefaultCreativeUnitCost:       85,
	}
}

// FromAppConfig maps the environment-driven settings onto a pricing Config.
func FromAppConfig(pc config.PricingConfig) Config {
	return Config{
		VolumeDiscountPeriodThreshold: pc.VolumeDiscountPeriodThreshold,
		VolumeDiscountRate:            pc.VolumeDiscountRate,
		VATRatePercent:                pc.VATRatePercent,
		DefaultCreativeUnitCost:       pc.DefaultCreativeUnitCost,
	}
}
