package browse

import (
	"sort"
	"strings"

	"nearby-restaurants/models/restaurant"
)

// stage is one filter step; a nil stage means the facet is unset.
type stage func(r *restaurant.Result) bool

// Apply narrows and orders base according to f. It never modifies base and
// returns a fresh slice, so repeated application with the same inputs gives
// the same result.
func Apply(base []restaurant.Result, f FilterState) []restaurant.Result {
	var stages []stage
	for _, s := range []stage{
		matchText(f.SearchText),
		matchCuisine(f.Cuisine),
		matchPrice(f.PriceRange),
		matchMinRating(f.MinRating),
		matchFeatures(f.Features),
	} {
		if s != nil {
			stages = append(stages, s)
		}
	}

	out := make([]restaurant.Result, 0, len(base))
next:
	for i := range base {
		for _, keep := range stages {
			if !keep(&base[i]) {
				continue next
			}
		}
		out = append(out, base[i])
	}

	sort.SliceStable(out, less(out, f.SortBy))
	return out
}

// matchText is a case-insensitive substring match against name, any
// cuisine, address area and description. Blank text matches everything.
func matchText(text string) stage {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return nil
	}
	return func(r *restaurant.Result) bool {
		if strings.Contains(strings.ToLower(r.Name), needle) ||
			strings.Contains(strings.ToLower(r.Address.Area), needle) ||
			strings.Contains(strings.ToLower(r.Description), needle) {
			return true
		}
		for _, c := range r.Cuisine {
			if strings.Contains(strings.ToLower(string(c)), needle) {
				return true
			}
		}
		return false
	}
}

// matchCuisine keeps restaurants serving any selected cuisine.
func matchCuisine(selected []restaurant.Cuisine) stage {
	if len(selected) == 0 {
		return nil
	}
	return func(r *restaurant.Result) bool {
		return restaurant.HasAnyCuisine(&r.Restaurant, selected)
	}
}

func matchPrice(p restaurant.PriceRange) stage {
	if p == "" {
		return nil
	}
	return func(r *restaurant.Result) bool { return r.PriceRange == p }
}

func matchMinRating(min *float64) stage {
	if min == nil {
		return nil
	}
	threshold := *min
	return func(r *restaurant.Result) bool { return r.Rating.Average >= threshold }
}

// matchFeatures keeps restaurants offering every selected feature.
func matchFeatures(selected []restaurant.Feature) stage {
	if len(selected) == 0 {
		return nil
	}
	return func(r *restaurant.Result) bool {
		return restaurant.HasAllFeatures(&r.Restaurant, selected)
	}
}

func less(items []restaurant.Result, by SortBy) func(i, j int) bool {
	switch by {
	case SortRating:
		return func(i, j int) bool { return items[i].Rating.Average > items[j].Rating.Average }
	case SortName:
		return func(i, j int) bool { return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name) }
	default:
		return func(i, j int) bool { return items[i].Distance < items[j].Distance }
	}
}
