package enums

import "fmt"

// FormatCategory groups OOH media formats for production-cost tiering.
type FormatCategory string

const (
	FormatCategoryBillboard   FormatCategory = "billboard"
	FormatCategoryBus         FormatCategory = "bus"
	FormatCategoryUnderground FormatCategory = "underground"
	FormatCategoryRail        FormatCategory = "rail"
	FormatCategoryTaxi        FormatCategory = "taxi"
	FormatCategoryStreet      FormatCategory = "street"
	FormatCategoryDigital     FormatCategory = "digital"
)

var validFormatCategories = []FormatCategory{
	FormatCategoryBillboard,
	FormatCategoryBus,
	FormatCategoryUnderground,
	FormatCategoryRail,
	FormatCategoryTaxi,
	FormatCategoryStreet,
	FormatCategoryDigital,
}

// String implements fmt.Stringer.
func (f FormatCategory) String() string {
	return string(f)
}

// IsValid reports whether the category is known.
func (f FormatCategory) IsValid() bool {
	for _, candidate := range validFormatCategories {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseFormatCategory converts raw input into a FormatCategory.
func ParseFormatCategory(value string) (FormatCategory, error) {
	for _, candidate := range validFormatCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid format category %q", value)
}
