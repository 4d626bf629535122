package search

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Filter returns the restaurants matching every set filter. The input slice
// is never mutated and relative order is preserved.
func Filter(restaurants []Restaurant, opts *FilterOptions) []Restaurant {
	if opts == nil {
		out := make([]Restaurant, len(restaurants))
		copy(out, restaurants)
		return out
	}

	out := make([]Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if matchesFilters(r, opts) {
			out = append(out, r)
		}
	}
	return out
}

func matchesFilters(r Restaurant, opts *FilterOptions) bool {
	if opts.MinRating > 0 && r.Rating < opts.MinRating {
		return false
	}
	// Unknown open state never matches an open-now filter.
	if opts.OpenNow != nil {
		if r.IsOpen == nil || *r.IsOpen != *opts.OpenNow {
			return false
		}
	}
	if len(opts.PriceLevel) > 0 && !containsPrice(opts.PriceLevel, r.PriceLevel) {
		return false
	}
	if len(opts.CuisineType) > 0 && !intersects(r.CuisineType, opts.CuisineType) {
		return false
	}
	return true
}

func containsPrice(levels []PriceLevel, level PriceLevel) bool {
	for _, l := range levels {
		if l == level {
			return true
		}
	}
	return false
}

func intersects(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

// Sort returns the restaurants ordered by the given key: distance ascending,
// rating descending, price ascending (unpriced last), or name ascending with
// locale-aware comparison. The sort is stable, so ties keep their relative
// order, and the input slice is left untouched.
func Sort(restaurants []Restaurant, key SortKey) []Restaurant {
	out := make([]Restaurant, len(restaurants))
	copy(out, restaurants)

	switch key {
	case SortByDistance:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	case SortByRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortByPrice:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PriceLevel.Rank() < out[j].PriceLevel.Rank() })
	case SortByName:
		// Collators carry mutable iterator state, so each sort gets its own.
		c := collate.New(language.English)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Name, out[j].Name) < 0
		})
	}
	return out
}

// Process applies filters then the requested sort. Filtering first keeps
// the sort working on the smaller set.
func Process(restaurants []Restaurant, opts *FilterOptions, key SortKey) []Restaurant {
	return Sort(Filter(restaurants, opts), key)
}
