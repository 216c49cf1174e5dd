package periods

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Period describes one two-week in-charge window from the external calendar.
// Only the number is required; the date range is reference data.
type Period struct {
	Number    int        `json:"number"`
	Label     string     `json:"label,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// List is a collection of period numbers. UI state and legacy rate-card
// payloads carry period identifiers as either numbers or strings, so List
// canonicalizes both forms to int on decode. "17" and 17 are the same period.
type List []int

// UnmarshalJSON accepts mixed numeric and string identifiers.
func (l *List) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make([]int, 0, len(raw))
	for _, entry := range raw {
		id, err := coerce(entry)
		if err != nil {
			return err
		}
		out = append(out, id)
	}
	*l = out
	return nil
}

func coerce(raw json.RawMessage) (int, error) {
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, err
		}
		id, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, fmt.Errorf("invalid period identifier %q", s)
		}
		return id, nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, fmt.Errorf("invalid period identifier %s", trimmed)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("invalid period identifier %v", f)
	}
	return int(f), nil
}

// Canonical returns the identifiers deduplicated and sorted ascending.
func Canonical(ids []int) []int {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// UniqueCount reports the number of distinct periods. Discount eligibility
// counts distinct periods, not contiguity.
func UniqueCount(ids []int) int {
	return len(Canonical(ids))
}

// CountPrintRuns returns the number of maximal contiguous runs after
// deduplication and ascending sort. Non-contiguous bookings need separate
// physical production, so [17,19,21] is three runs while [17,18,19] is one.
func CountPrintRuns(ids []int) int {
	canonical := Canonical(ids)
	if len(canonical) == 0 {
		return 0
	}
	runs := 1
	for i := 1; i < len(canonical); i++ {
		if canonical[i] != canonical[i-1]+1 {
			runs++
		}
	}
	return runs
}
