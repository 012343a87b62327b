package restaurant

// Facets are the server-side filter dimensions shared by nearby and list queries.
// Zero values mean "no constraint".
type Facets struct {
	Cuisine    []Cuisine
	PriceRange PriceRange
	MinRating  *float64
}

// Matches reports whether r satisfies every supplied facet. Cuisine is OR-matched.
func (f Facets) Matches(r *Restaurant) bool {
	if len(f.Cuisine) > 0 && !HasAnyCuisine(r, f.Cuisine) {
		return false
	}
	if f.PriceRange != "" && r.PriceRange != f.PriceRange {
		return false
	}
	if f.MinRating != nil && r.Rating.Average < *f.MinRating {
		return false
	}
	return true
}

// HasAnyCuisine reports whether r serves at least one of the wanted cuisines.
func HasAnyCuisine(r *Restaurant, wanted []Cuisine) bool {
	for _, w := range wanted {
		for _, c := range r.Cuisine {
			if c == w {
				return true
			}
		}
	}
	return false
}

// HasAllFeatures reports whether r offers every wanted feature.
func HasAllFeatures(r *Restaurant, wanted []Feature) bool {
	for _, w := range wanted {
		found := false
		for _, f := range r.Features {
			if f == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
