package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nearby-restaurants/browse"
	"nearby-restaurants/models/restaurant"
)

func TestFiltersFrom(t *testing.T) {
	f, err := filtersFrom(options{
		search:    "curry",
		cuisines:  "Thai, Indian,",
		features:  "WiFi",
		price:     "$$",
		minRating: 4,
		sortBy:    "rating",
	})
	require.NoError(t, err)

	assert.Equal(t, "curry", f.SearchText)
	assert.Equal(t, []restaurant.Cuisine{restaurant.CuisineThai, restaurant.CuisineIndian}, f.Cuisine)
	assert.Equal(t, []restaurant.Feature{restaurant.FeatureWiFi}, f.Features)
	assert.Equal(t, restaurant.PriceModerate, f.PriceRange)
	require.NotNil(t, f.MinRating)
	assert.Equal(t, 4.0, *f.MinRating)
	assert.Equal(t, browse.SortRating, f.SortBy)
	assert.Equal(t, 5, f.ActiveCount())
}

func TestFiltersFrom_RejectsUnknownValues(t *testing.T) {
	for _, o := range []options{
		{cuisines: "Martian"},
		{features: "Jetpack Parking"},
		{price: "cheap"},
		{sortBy: "popularity"},
	} {
		_, err := filtersFrom(o)
		assert.Error(t, err)
	}
}
