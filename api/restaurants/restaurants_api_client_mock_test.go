package restaurants

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nearby-restaurants/models"
	"nearby-restaurants/models/restaurant"
)

const fixture = "../../resources/nearby_response.json"

func TestRestaurantsApiClientMock_NearbyFiltersRecordedHits(t *testing.T) {
	client := NewRestaurantsApiClientMock(fixture)
	ctx := context.Background()

	response, err := client.Nearby(ctx, models.SearchQuery{Latitude: 24.876535, Longitude: 90.724821, RadiusKm: 2})
	require.NoError(t, err)
	require.Equal(t, 3, response.Count)
	assert.Equal(t, "Spice Garden", response.Data.Restaurants[0].Name)
	assert.Equal(t, "Thai Orchid", response.Data.Restaurants[1].Name)
	assert.Equal(t, "Pizza Paradise", response.Data.Restaurants[2].Name)
	assert.Equal(t, 2.0, response.Data.SearchParams.Radius)

	response, err = client.Nearby(ctx, models.SearchQuery{
		RadiusKm: 10,
		Facets:   restaurant.Facets{Cuisine: []restaurant.Cuisine{restaurant.CuisineCafe}},
	})
	require.NoError(t, err)
	require.Equal(t, 1, response.Count)
	assert.Equal(t, "Cafe Mocha", response.Data.Restaurants[0].Name)
}

func TestRestaurantsApiClientMock_GetByID(t *testing.T) {
	client := NewRestaurantsApiClientMock(fixture)

	detail, err := client.GetByID(context.Background(), "65f1a2b3c4d5e6f708192a03")
	require.NoError(t, err)
	assert.Equal(t, "Thai Orchid", detail.Data.Restaurant.Name)

	_, err = client.GetByID(context.Background(), "65f1a2b3c4d5e6f708192aff")
	require.Error(t, err)
	assert.Equal(t, "Restaurant not found", err.Error())
}

func TestRestaurantsApiClientMock_ListAndCuisines(t *testing.T) {
	client := NewRestaurantsApiClientMock(fixture)

	list, err := client.List(context.Background(), 1, 2, restaurant.Facets{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), list.Pagination.Total)
	assert.Equal(t, 2, list.Pagination.Pages)
	require.Len(t, list.Data.Restaurants, 2)
	assert.Equal(t, "Thai Orchid", list.Data.Restaurants[0].Name)
	assert.Equal(t, "Spice Garden", list.Data.Restaurants[1].Name)

	cuisines, err := client.Cuisines(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []restaurant.Cuisine{"Bangladeshi", "Cafe", "Desserts", "Fast Food", "Indian", "Italian", "Thai"}, cuisines.Data.Cuisines)
}

func TestRestaurantsApiClientMock_MissingFixture(t *testing.T) {
	_, err := NewRestaurantsApiClientMock("does-not-exist.json").Cuisines(context.Background())
	assert.Error(t, err)
}
