package types

// LineWarning explains why a submitted campaign line was adjusted or excluded
// from the priced totals. A malformed line degrades to a warning; it never
// fails the whole quote.
type LineWarning struct {
	FormatName string `json:"format_name,omitempty"`
	Type       string `json:"type"`
	Message    string `json:"message"`
}

// LineWarnings is an ordered warning collection for one preview.
type LineWarnings []LineWarning
