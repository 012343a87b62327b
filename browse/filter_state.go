package browse

import "nearby-restaurants/models/restaurant"

// SortBy selects the ordering of the visible list.
type SortBy string

const (
	SortDefault  SortBy = ""
	SortDistance SortBy = "distance"
	SortRating   SortBy = "rating"
	SortName     SortBy = "name"
)

// FilterState is the client-owned narrowing of the base set. Values are
// treated as immutable: the toggles return a modified copy.
type FilterState struct {
	Cuisine    []restaurant.Cuisine
	PriceRange restaurant.PriceRange
	MinRating  *float64
	Features   []restaurant.Feature
	SortBy     SortBy
	SearchText string
}

// ToggleCuisine adds c to the selection, or removes it if already selected.
func (f FilterState) ToggleCuisine(c restaurant.Cuisine) FilterState {
	f.Cuisine = toggle(f.Cuisine, c)
	return f
}

// ToggleFeature adds or removes a required feature.
func (f FilterState) ToggleFeature(feature restaurant.Feature) FilterState {
	f.Features = toggle(f.Features, feature)
	return f
}

// TogglePriceRange selects p, or clears the price facet when p is already selected.
func (f FilterState) TogglePriceRange(p restaurant.PriceRange) FilterState {
	if f.PriceRange == p {
		f.PriceRange = ""
	} else {
		f.PriceRange = p
	}
	return f
}

func (f FilterState) ToggleMinRating(rating float64) FilterState {
	if f.MinRating != nil && *f.MinRating == rating {
		f.MinRating = nil
	} else {
		f.MinRating = &rating
	}
	return f
}

func (f FilterState) ToggleSort(s SortBy) FilterState {
	if f.SortBy == s {
		f.SortBy = SortDefault
	} else {
		f.SortBy = s
	}
	return f
}

// WithSearchText replaces the free-text query.
func (f FilterState) WithSearchText(text string) FilterState {
	f.SearchText = text
	return f
}

// Clear resets every facet and the sort, keeping the search text.
func (f FilterState) Clear() FilterState {
	return FilterState{SearchText: f.SearchText}
}

// ActiveCount is the number of facets in use, shown on the filter badge.
// Search text is not a facet.
func (f FilterState) ActiveCount() int {
	count := 0
	if len(f.Cuisine) > 0 {
		count++
	}
	if f.PriceRange != "" {
		count++
	}
	if f.MinRating != nil {
		count++
	}
	if len(f.Features) > 0 {
		count++
	}
	if f.SortBy != SortDefault {
		count++
	}
	return count
}

func toggle[T comparable](selected []T, v T) []T {
	out := make([]T, 0, len(selected)+1)
	removed := false
	for _, s := range selected {
		if s == v {
			removed = true
			continue
		}
		out = append(out, s)
	}
	if !removed {
		out = append(out, v)
	}
	return out
}
