package roster

import (
	"cmp"
	"slices"
)

const (
	MinJerseyNumber = 1
	MaxJerseyNumber = 99
	MinRating       = 1
	MaxRating       = 10
)

// Entry is one player on the roster.
type Entry struct {
	JerseyNumber int `json:"jersey_number" validate:"min=1,max=99"`
	Rating       int `json:"rating" validate:"min=1,max=10"`
}

// Roster maps jersey numbers to ratings and remembers insertion order.
// It trusts its inputs; bounds are checked by callers.
type Roster struct {
	order   []int
	ratings map[int]int
}

func New() *Roster {
	return &Roster{ratings: make(map[int]int)}
}

// FromEntries builds a roster in entry order. A repeated jersey number keeps
// its first position and takes the last rating.
func FromEntries(entries []Entry) *Roster {
	r := New()
	for _, e := range entries {
		r.Set(e.JerseyNumber, e.Rating)
	}
	return r
}

func (r *Roster) Len() int {
	return len(r.order)
}

func (r *Roster) Contains(jerseyNumber int) bool {
	_, ok := r.ratings[jerseyNumber]
	return ok
}

func (r *Roster) Rating(jerseyNumber int) (int, bool) {
	rating, ok := r.ratings[jerseyNumber]
	return rating, ok
}

// Set inserts a new player at the end or overwrites the rating in place.
func (r *Roster) Set(jerseyNumber, rating int) {
	if _, ok := r.ratings[jerseyNumber]; !ok {
		r.order = append(r.order, jerseyNumber)
	}
	r.ratings[jerseyNumber] = rating
}

// Delete reports whether the player was present.
func (r *Roster) Delete(jerseyNumber int) bool {
	if _, ok := r.ratings[jerseyNumber]; !ok {
		return false
	}
	delete(r.ratings, jerseyNumber)
	if idx := slices.Index(r.order, jerseyNumber); idx >= 0 {
		r.order = slices.Delete(r.order, idx, idx+1)
	}
	return true
}

// Entries returns players in insertion order.
func (r *Roster) Entries() []Entry {
	out := make([]Entry, 0, len(r.order))
	for _, n := range r.order {
		out = append(out, Entry{JerseyNumber: n, Rating: r.ratings[n]})
	}
	return out
}

// Sorted returns players ascending by jersey number.
func (r *Roster) Sorted() []Entry {
	out := r.Entries()
	slices.SortFunc(out, func(a, b Entry) int {
		return cmp.Compare(a.JerseyNumber, b.JerseyNumber)
	})
	return out
}

// TopRated returns the highest rating and every jersey number holding it,
// ascending. It returns zero and nil for an empty roster.
func (r *Roster) TopRated() (int, []int) {
	if len(r.order) == 0 {
		return 0, nil
	}

	maxRating := 0
	for _, rating := range r.ratings {
		maxRating = max(maxRating, rating)
	}

	top := make([]int, 0, 1)
	for _, n := range r.order {
		if r.ratings[n] == maxRating {
			top = append(top, n)
		}
	}
	slices.Sort(top)

	return maxRating, top
}

// Below returns, in insertion order, the jersey numbers rated strictly lower
// than threshold.
func (r *Roster) Below(threshold int) []int {
	var out []int
	for _, n := range r.order {
		if r.ratings[n] < threshold {
			out = append(out, n)
		}
	}
	return out
}

// Cut removes every player rated lower than threshold. The selection is
// taken before any deletion.
func (r *Roster) Cut(threshold int) []int {
	cut := r.Below(threshold)
	for _, n := range cut {
		r.Delete(n)
	}
	return cut
}
