package evolve

import "sort"

// CompareUnits orders units best first. It returns -1 if a ranks above b,
// 1 if b ranks above a and 0 on a tie. Ties are left to the caller's sort
// stability.
func CompareUnits[T any](a, b *Unit[T]) int {
	switch {
	case a.Score > b.Score:
		return -1
	case a.Score < b.Score:
		return 1
	}
	return 0
}

// rank returns a freshly allocated copy of units sorted by score descending.
// Equal scores keep their relative input order, which makes the ordering
// reproducible for a fixed assembly order.
func rank[T any](units []Unit[T]) []Unit[T] {
	ranked := make([]Unit[T], len(units))
	copy(ranked, units)
	sort.SliceStable(ranked, func(i, j int) bool {
		return CompareUnits(&ranked[i], &ranked[j]) < 0
	})
	return ranked
}
