package enums

// CreativeBand classifies the creative-assets-to-sites efficiency ratio.
type CreativeBand string

const (
	CreativeBandUnder      CreativeBand = "under_creative"
	CreativeBandOptimal    CreativeBand = "optimal"
	CreativeBandAcceptable CreativeBand = "acceptable"
	CreativeBandOver       CreativeBand = "over_creative"
)

var validCreativeBands = []CreativeBand{
	CreativeBandUnder,
	CreativeBandOptimal,
	CreativeBandAcceptable,
	CreativeBandOver,
}

// String implements fmt.Stringer.
func (c CreativeBand) String() string {
	return string(c)
}

// IsValid reports whether the value is known.
func (c CreativeBand) IsValid() bool {
	for _, candidate := range validCreativeBands {
		if candidate == c {
			return true
		}
	}
	return false
}
