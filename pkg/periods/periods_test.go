package periods

import (
	"encoding/json"
	"math/rand"
	"testing"
)

func TestCountPrintRuns(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ids  []int
		want int
	}{
		{"empty", nil, 0},
		{"single", []int{17}, 1},
		{"consecutive", []int{17, 18, 19}, 1},
		{"all gaps", []int{17, 19, 21}, 3},
		{"unsorted consecutive", []int{20, 18, 17, 19}, 1},
		{"duplicates", []int{17, 17, 18, 19, 19}, 1},
		{"two runs", []int{1, 2, 5, 6}, 2},
	}

	for _, tc := range cases {
		if got := CountPrintRuns(tc.ids); got != tc.want {
			t.Fatalf("%s: CountPrintRuns(%v) = %d, want %d", tc.name, tc.ids, got, tc.want)
		}
	}
}

func TestCountPrintRunsPermutationInvariant(t *testing.T) {
	t.Parallel()

	base := []int{3, 7, 8, 9, 14, 15, 22}
	want := CountPrintRuns(base)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		shuffled := append([]int(nil), base...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		// duplicating an element must not change the run count either
		shuffled = append(shuffled, shuffled[rng.Intn(len(shuffled))])
		if got := CountPrintRuns(shuffled); got != want {
			t.Fatalf("permutation %v changed run count: got %d, want %d", shuffled, got, want)
		}
	}
}

func TestUniqueCount(t *testing.T) {
	t.Parallel()

	if got := UniqueCount([]int{17, 17, 18}); got != 2 {
		t.Fatalf("UniqueCount = %d, want 2", got)
	}
	if got := UniqueCount(nil); got != 0 {
		t.Fatalf("UniqueCount(nil) = %d, want 0", got)
	}
}

func TestListUnmarshalMixedRepresentations(t *testing.T) {
	t.Parallel()

	var list List
	if err := json.Unmarshal([]byte(`[17, "17", "18", 19.0]`), &list); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := UniqueCount(list); got != 3 {
		t.Fatalf("expected 3 distinct periods from mixed input, got %d (%v)", got, list)
	}

	if err := json.Unmarshal([]byte(`["seventeen"]`), &list); err == nil {
		t.Fatal("expected error for non-numeric identifier")
	}
	if err := json.Unmarshal([]byte(`[17.5]`), &list); err == nil {
		t.Fatal("expected error for fractional identifier")
	}
}

func TestCanonicalSortsAndDedupes(t *testing.T) {
	t.Parallel()

	got := Canonical([]int{19, 17, 19, 18})
	want := []int{17, 18, 19}
	if len(got) != len(want) {
		t.Fatalf("Canonical = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Canonical = %v, want %v", got, want)
		}
	}
}
