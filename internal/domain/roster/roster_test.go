package roster

import (
	"slices"
	"testing"
)

func TestRoster_SetKeepsInsertionOrder(t *testing.T) {
	r := New()
	r.Set(30, 5)
	r.Set(4, 9)
	r.Set(30, 7)

	got := r.Entries()
	want := []Entry{{JerseyNumber: 30, Rating: 7}, {JerseyNumber: 4, Rating: 9}}
	if !slices.Equal(got, want) {
		t.Fatalf("unexpected entries: got=%v want=%v", got, want)
	}
}

func TestRoster_DeleteThenReaddMovesToEnd(t *testing.T) {
	r := FromEntries([]Entry{{1, 1}, {2, 2}, {3, 3}})
	if !r.Delete(1) {
		t.Fatalf("expected delete of present player to report true")
	}
	if r.Delete(1) {
		t.Fatalf("expected delete of absent player to report false")
	}
	r.Set(1, 4)

	got := r.Entries()
	want := []Entry{{2, 2}, {3, 3}, {1, 4}}
	if !slices.Equal(got, want) {
		t.Fatalf("unexpected entries: got=%v want=%v", got, want)
	}
}

func TestRoster_Sorted(t *testing.T) {
	r := FromEntries([]Entry{{42, 3}, {7, 10}, {19, 6}})

	got := r.Sorted()
	want := []Entry{{7, 10}, {19, 6}, {42, 3}}
	if !slices.Equal(got, want) {
		t.Fatalf("unexpected sorted entries: got=%v want=%v", got, want)
	}
	if r.Entries()[0].JerseyNumber != 42 {
		t.Fatalf("sorting must not change insertion order")
	}
}

func TestRoster_TopRated(t *testing.T) {
	t.Run("reports every tie ascending", func(t *testing.T) {
		r := FromEntries([]Entry{{9, 10}, {1, 8}, {5, 10}})

		maxRating, top := r.TopRated()
		if maxRating != 10 {
			t.Fatalf("unexpected max rating: %d", maxRating)
		}
		if !slices.Equal(top, []int{5, 9}) {
			t.Fatalf("unexpected top rated: %v", top)
		}
	})

	t.Run("empty roster", func(t *testing.T) {
		maxRating, top := New().TopRated()
		if maxRating != 0 || top != nil {
			t.Fatalf("expected zero result, got %d %v", maxRating, top)
		}
	})
}

func TestRoster_Cut(t *testing.T) {
	r := FromEntries([]Entry{{10, 3}, {20, 9}, {15, 4}, {30, 5}})

	cut := r.Cut(5)
	if !slices.Equal(cut, []int{10, 15}) {
		t.Fatalf("unexpected cut list: %v", cut)
	}
	for _, e := range r.Entries() {
		if e.Rating < 5 {
			t.Fatalf("player %d rated %d survived cut", e.JerseyNumber, e.Rating)
		}
	}
	if r.Len() != 2 {
		t.Fatalf("expected 2 players left, got %d", r.Len())
	}

	if cut := r.Cut(1); len(cut) != 0 {
		t.Fatalf("expected nothing cut at threshold 1, got %v", cut)
	}
}

func TestFromEntries_DuplicateKeepsFirstPosition(t *testing.T) {
	r := FromEntries([]Entry{{8, 2}, {3, 3}, {8, 6}})

	want := []Entry{{8, 6}, {3, 3}}
	if got := r.Entries(); !slices.Equal(got, want) {
		t.Fatalf("unexpected entries: got=%v want=%v", got, want)
	}
	if rating, ok := r.Rating(8); !ok || rating != 6 {
		t.Fatalf("unexpected rating for 8: %d %t", rating, ok)
	}
}
