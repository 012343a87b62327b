package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"nearby-restaurants/models"
	"nearby-restaurants/models/restaurant"
)

func TestNearbyFilter_NoFacets(t *testing.T) {
	q := models.SearchQuery{Latitude: 24.876535, Longitude: 90.724821, RadiusKm: 2}

	expected := bson.D{
		{Key: "location", Value: bson.D{{Key: "$near", Value: bson.D{
			{Key: "$geometry", Value: bson.D{
				{Key: "type", Value: "Point"},
				{Key: "coordinates", Value: bson.A{90.724821, 24.876535}},
			}},
			{Key: "$maxDistance", Value: 2000.0},
		}}}},
		{Key: "isActive", Value: true},
	}
	assert.Equal(t, expected, NearbyFilter(q))
}

func TestNearbyFilter_AllFacets(t *testing.T) {
	minRating := 4.0
	q := models.SearchQuery{
		Latitude: 1, Longitude: 2, RadiusKm: 0.5,
		Facets: restaurant.Facets{
			Cuisine:    []restaurant.Cuisine{restaurant.CuisineThai, restaurant.CuisineItalian},
			PriceRange: restaurant.PriceModerate,
			MinRating:  &minRating,
		},
	}

	filter := NearbyFilter(q)
	require.Len(t, filter, 5)
	assert.Equal(t, "location", filter[0].Key)
	assert.Equal(t, bson.E{Key: "isActive", Value: true}, filter[1])
	assert.Equal(t, bson.E{Key: "cuisine", Value: bson.D{{Key: "$in", Value: q.Facets.Cuisine}}}, filter[2])
	assert.Equal(t, bson.E{Key: "priceRange", Value: restaurant.PriceModerate}, filter[3])
	assert.Equal(t, bson.E{Key: "rating.average", Value: bson.D{{Key: "$gte", Value: 4.0}}}, filter[4])

	near := filter[0].Value.(bson.D)[0].Value.(bson.D)
	assert.Equal(t, 500.0, near[1].Value)
}

func TestFacetFilter_ListQuery(t *testing.T) {
	filter := FacetFilter(bson.D{}, restaurant.Facets{PriceRange: restaurant.PriceBudget})
	assert.Equal(t, bson.D{
		{Key: "isActive", Value: true},
		{Key: "priceRange", Value: restaurant.PriceBudget},
	}, filter)
}

func TestFilters_MarshalToBSON(t *testing.T) {
	minRating := 3.5
	q := models.SearchQuery{Latitude: 1, Longitude: 2, RadiusKm: 1, Facets: restaurant.Facets{
		Cuisine: []restaurant.Cuisine{restaurant.CuisineCafe}, MinRating: &minRating,
	}}

	raw, err := bson.Marshal(NearbyFilter(q))
	require.NoError(t, err)

	var decoded bson.M
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	assert.Equal(t, true, decoded["isActive"])
	assert.Contains(t, decoded, "location")
	assert.Contains(t, decoded, "rating.average")
}

func TestIndexModels(t *testing.T) {
	indexes := IndexModels()
	require.Len(t, indexes, 4)
	assert.Equal(t, bson.D{{Key: "location", Value: "2dsphere"}}, indexes[0].Keys)
}

func TestCuisinesFromDistinct_SortsAndSkipsNonStrings(t *testing.T) {
	got := cuisinesFromDistinct([]interface{}{"Thai", "Bangladeshi", 42, "Cafe"})
	assert.Equal(t, []restaurant.Cuisine{"Bangladeshi", "Cafe", "Thai"}, got)

	assert.Empty(t, cuisinesFromDistinct(nil))
}
