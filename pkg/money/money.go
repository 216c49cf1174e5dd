package money

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/JasonR4/london-outfast-sub003/pkg/enums"
)

// Masked is the placeholder rendered in place of gated monetary values for
// unauthenticated visitors. The computation still runs; only display is hidden.
const Masked = "—"

// DefaultVATRatePercent is the UK standard VAT rate.
const DefaultVATRatePercent = 20.0

// VATBreakdown carries an ex-VAT subtotal with its derived VAT figures,
// every amount rounded half-up at the cent.
type VATBreakdown struct {
	Subtotal    float64 `json:"subtotal"`
	VATRate     float64 `json:"vat_rate"`
	VATAmount   float64 `json:"vat_amount"`
	TotalIncVAT float64 `json:"total_inc_vat"`
}

// Round2 rounds an amount half-up at the cent boundary.
func Round2(amount float64) float64 {
	if !isFinite(amount) {
		return 0
	}
	rounded, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return rounded
}

// CalculateVAT derives VAT from an ex-VAT subtotal. Rounding is applied after
// the multiplication so per-line errors do not compound.
func CalculateVAT(subtotalExVAT, ratePercent float64) VATBreakdown {
	if !isFinite(subtotalExVAT) {
		subtotalExVAT = 0
	}
	if !isFinite(ratePercent) || ratePercent < 0 {
		ratePercent = DefaultVATRatePercent
	}

	subtotal := decimal.NewFromFloat(subtotalExVAT)
	rate := decimal.NewFromFloat(ratePercent)
	vat := subtotal.Mul(rate).Div(decimal.NewFromInt(100)).Round(2)
	total := subtotal.Add(vat).Round(2)

	subtotalF, _ := subtotal.Round(2).Float64()
	vatF, _ := vat.Float64()
	totalF, _ := total.Float64()
	return VATBreakdown{
		Subtotal:    subtotalF,
		VATRate:     ratePercent,
		VATAmount:   vatF,
		TotalIncVAT: totalF,
	}
}

// Format renders an amount with the currency symbol, thousands grouping and
// exactly two decimal places. Non-finite amounts render as zero.
func Format(amount float64, currency enums.Currency) string {
	if !currency.IsValid() {
		currency = enums.CurrencyGBP
	}
	if !isFinite(amount) {
		amount = 0
	}

	value := decimal.NewFromFloat(amount).Round(2)
	negative := value.IsNegative()
	fixed := value.Abs().StringFixed(2)

	whole, frac, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	b.WriteString(currency.Symbol())
	b.WriteString(groupThousands(whole))
	b.WriteString(".")
	b.WriteString(frac)
	return b.String()
}

// FormatWithVAT renders an amount and optionally appends the inc-VAT suffix.
func FormatWithVAT(amount float64, currency enums.Currency, showVATSuffix bool) string {
	formatted := Format(amount, currency)
	if showVATSuffix {
		return formatted + " inc VAT"
	}
	return formatted
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
