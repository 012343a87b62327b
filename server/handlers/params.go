package handlers

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"nearby-restaurants/apperrors"
	"nearby-restaurants/models"
	"nearby-restaurants/models/restaurant"
)

const (
	LATITUDE_QUERY_ARG    = "latitude"
	LONGITUDE_QUERY_ARG   = "longitude"
	RADIUS_QUERY_ARG      = "radius"
	CUISINE_QUERY_ARG     = "cuisine"
	PRICE_RANGE_QUERY_ARG = "priceRange"
	MIN_RATING_QUERY_ARG  = "minRating"
	LIMIT_QUERY_ARG       = "limit"
	SKIP_QUERY_ARG        = "skip"
	PAGE_QUERY_ARG        = "page"
)

// fieldErrors collects every violation so one response can report them all.
type fieldErrors []apperrors.FieldError

func (f *fieldErrors) add(field, format string, args ...interface{}) {
	*f = append(*f, apperrors.FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return apperrors.NewValidationError(apperrors.MsgValidation, f...)
}

// parseFloatArg reads a finite float; present is false when the arg is
// absent or unusable, the latter also recording a field error.
func parseFloatArg(vals url.Values, name string, errs *fieldErrors) (v float64, present bool) {
	s := strings.TrimSpace(vals.Get(name))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		errs.add(name, "%q must be a number", name)
		return 0, false
	}
	return v, true
}

func parseIntArg(vals url.Values, name string, errs *fieldErrors) (v int, present bool) {
	s := strings.TrimSpace(vals.Get(name))
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		if _, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			errs.add(name, "%q must be an integer", name)
		} else {
			errs.add(name, "%q must be a number", name)
		}
		return 0, false
	}
	return v, true
}

func checkRange(name string, v, min, max float64, errs *fieldErrors) {
	if v < min {
		errs.add(name, "%q must be greater than or equal to %s", name, formatBound(min))
	} else if v > max {
		errs.add(name, "%q must be less than or equal to %s", name, formatBound(max))
	}
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseFacets reads cuisine, priceRange and minRating. cuisine may be
// repeated and each occurrence may hold a comma separated list.
func parseFacets(vals url.Values, errs *fieldErrors) restaurant.Facets {
	var facets restaurant.Facets

	for _, raw := range vals[CUISINE_QUERY_ARG] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			c := restaurant.Cuisine(part)
			if !c.IsValid() {
				errs.add(CUISINE_QUERY_ARG, "%q must be one of %v", CUISINE_QUERY_ARG, restaurant.Cuisines)
				continue
			}
			facets.Cuisine = append(facets.Cuisine, c)
		}
	}

	if s := strings.TrimSpace(vals.Get(PRICE_RANGE_QUERY_ARG)); s != "" {
		p := restaurant.PriceRange(s)
		if p.IsValid() {
			facets.PriceRange = p
		} else {
			errs.add(PRICE_RANGE_QUERY_ARG, "%q must be one of %v", PRICE_RANGE_QUERY_ARG, restaurant.PriceRanges)
		}
	}

	if v, ok := parseFloatArg(vals, MIN_RATING_QUERY_ARG, errs); ok {
		checkRange(MIN_RATING_QUERY_ARG, v, 0, 5, errs)
		facets.MinRating = &v
	}
	return facets
}

// ParseSearchQuery validates the nearby-search query string. Unknown
// parameters are ignored.
func ParseSearchQuery(vals url.Values) (models.SearchQuery, error) {
	var errs fieldErrors
	q := models.SearchQuery{
		RadiusKm: models.DefaultRadiusKm,
		Limit:    models.DefaultNearbyLimit,
	}

	if v, ok := parseFloatArg(vals, LATITUDE_QUERY_ARG, &errs); ok {
		checkRange(LATITUDE_QUERY_ARG, v, -90, 90, &errs)
		q.Latitude = v
	} else if strings.TrimSpace(vals.Get(LATITUDE_QUERY_ARG)) == "" {
		errs.add(LATITUDE_QUERY_ARG, "%q is required", LATITUDE_QUERY_ARG)
	}

	if v, ok := parseFloatArg(vals, LONGITUDE_QUERY_ARG, &errs); ok {
		checkRange(LONGITUDE_QUERY_ARG, v, -180, 180, &errs)
		q.Longitude = v
	} else if strings.TrimSpace(vals.Get(LONGITUDE_QUERY_ARG)) == "" {
		errs.add(LONGITUDE_QUERY_ARG, "%q is required", LONGITUDE_QUERY_ARG)
	}

	if v, ok := parseFloatArg(vals, RADIUS_QUERY_ARG, &errs); ok {
		checkRange(RADIUS_QUERY_ARG, v, models.MinRadiusKm, models.MaxRadiusKm, &errs)
		q.RadiusKm = v
	}

	q.Facets = parseFacets(vals, &errs)

	if v, ok := parseIntArg(vals, LIMIT_QUERY_ARG, &errs); ok {
		checkRange(LIMIT_QUERY_ARG, float64(v), 1, models.MaxLimit, &errs)
		q.Limit = v
	}
	if v, ok := parseIntArg(vals, SKIP_QUERY_ARG, &errs); ok {
		checkRange(SKIP_QUERY_ARG, float64(v), 0, models.MaxSkip, &errs)
		q.Skip = v
	}

	return q, errs.err()
}

// ParseListQuery reads page and limit leniently, falling back to the
// defaults on anything unusable, and validates the facets strictly.
func ParseListQuery(vals url.Values) (models.ListQuery, error) {
	var errs fieldErrors
	q := models.ListQuery{
		Page:  lenientPositiveInt(vals.Get(PAGE_QUERY_ARG), models.DefaultListPage),
		Limit: lenientPositiveInt(vals.Get(LIMIT_QUERY_ARG), models.DefaultListLimit),
	}
	if q.Limit > models.MaxLimit {
		q.Limit = models.MaxLimit
	}
	if last := models.MaxPage(q.Limit); q.Page > last {
		q.Page = last
	}
	q.Facets = parseFacets(vals, &errs)
	return q, errs.err()
}

func lenientPositiveInt(s string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
