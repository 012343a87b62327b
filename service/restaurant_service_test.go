package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"nearby-restaurants/apperrors"
	"nearby-restaurants/dao"
	daoredis "nearby-restaurants/dao/redis"
	"nearby-restaurants/db"
	"nearby-restaurants/models"
	"nearby-restaurants/models/restaurant"
	services "nearby-restaurants/service"
	"nearby-restaurants/util"
)

// 2026-10-12 is a Monday.
func mondayAt(hour, minute int) func() time.Time {
	return func() time.Time { return time.Date(2026, 10, 12, hour, minute, 0, 0, time.UTC) }
}

func seededService(t *testing.T) (*services.RestaurantService, *daoredis.RedisRestaurantDAO) {
	t.Helper()
	restaurantDao := daoredis.NewRedisRestaurantDAO(db.NewMockRedisClient())
	n, err := services.NewSeederService(restaurantDao).Seed(context.Background(), services.SeedBaseLatitude, services.SeedBaseLongitude)
	require.NoError(t, err)
	require.Equal(t, 10, n)

	svc := services.NewRestaurantService(restaurantDao, time.UTC).WithClock(mondayAt(14, 0))
	return svc, restaurantDao
}

func nearbyQuery(radiusKm float64) models.SearchQuery {
	return models.SearchQuery{
		Latitude:  services.SeedBaseLatitude,
		Longitude: services.SeedBaseLongitude,
		RadiusKm:  radiusKm,
		Limit:     models.DefaultNearbyLimit,
	}
}

func names(results []restaurant.Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Name
	}
	return out
}

func TestFindNearby_SeededTwoKilometreExample(t *testing.T) {
	svc, _ := seededService(t)

	results, err := svc.FindNearby(context.Background(), nearbyQuery(2))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"Spice Garden", "Pizza Paradise", "Thai Orchid", "Burger Buzz", "Sushi Station", "Veggie Delight",
	}, names(results))
	for _, outside := range []string{"Ocean Breeze Seafood", "Dragon Wok", "Cafe Mocha", "Taco Fiesta"} {
		assert.NotContains(t, names(results), outside)
	}
}

func TestFindNearby_EveryResultWithinRadius(t *testing.T) {
	svc, _ := seededService(t)

	for _, radius := range []float64{0.1, 0.6, 1, 2, 4, 6, 8.5, 50} {
		results, err := svc.FindNearby(context.Background(), nearbyQuery(radius))
		require.NoError(t, err)

		for _, r := range results {
			trueDistance := util.HaversineKm(services.SeedBaseLatitude, services.SeedBaseLongitude,
				r.Location.Latitude(), r.Location.Longitude())
			assert.LessOrEqual(t, trueDistance, radius+1e-9, "%s at radius %.1f", r.Name, radius)
			assert.Equal(t, util.Round2(trueDistance), r.Distance)
		}
	}
}

func TestFindNearby_NearestFirstWithDistances(t *testing.T) {
	svc, _ := seededService(t)

	results, err := svc.FindNearby(context.Background(), nearbyQuery(2))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Spice Garden", "Thai Orchid", "Veggie Delight", "Pizza Paradise", "Burger Buzz", "Sushi Station",
	}, names(results))
	assert.InDelta(t, 0.5, results[0].Distance, 0.011)
	assert.InDelta(t, 1.8, results[5].Distance, 0.011)
}

func TestFindNearby_FacetsAndPagination(t *testing.T) {
	svc, _ := seededService(t)
	ctx := context.Background()

	q := nearbyQuery(2)
	q.Facets = restaurant.Facets{Cuisine: []restaurant.Cuisine{restaurant.CuisineFastFood, restaurant.CuisineThai}}
	results, err := svc.FindNearby(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, []string{"Thai Orchid", "Pizza Paradise", "Burger Buzz"}, names(results))

	q = nearbyQuery(10)
	q.Facets = restaurant.Facets{PriceRange: restaurant.PriceLuxury}
	results, err = svc.FindNearby(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sushi Station", "Ocean Breeze Seafood"}, names(results))

	minRating := 4.5
	q = nearbyQuery(10)
	q.Facets = restaurant.Facets{MinRating: &minRating}
	q.Skip = 1
	q.Limit = 2
	results, err = svc.FindNearby(ctx, q)
	require.NoError(t, err)
	// >= 4.5 nearest first: Spice Garden, Thai Orchid, Sushi Station, Ocean Breeze
	assert.Equal(t, []string{"Thai Orchid", "Sushi Station"}, names(results))
}

func TestFindNearby_IsOpenNowUsesServiceClock(t *testing.T) {
	svc, _ := seededService(t)

	svc.WithClock(mondayAt(9, 0))
	results, err := svc.FindNearby(context.Background(), nearbyQuery(4))
	require.NoError(t, err)

	open := map[string]bool{}
	for _, r := range results {
		open[r.Name] = r.IsOpenNow
	}
	assert.True(t, open["Cafe Mocha"])
	assert.False(t, open["Spice Garden"])

	svc.WithClock(mondayAt(14, 0))
	results, err = svc.FindNearby(context.Background(), nearbyQuery(4))
	require.NoError(t, err)
	for _, r := range results {
		assert.True(t, r.IsOpenNow, r.Name)
	}
}

func TestFindNearby_EvaluatesHoursInConfiguredZone(t *testing.T) {
	restaurantDao := daoredis.NewRedisRestaurantDAO(db.NewMockRedisClient())
	_, err := services.NewSeederService(restaurantDao).Seed(context.Background(), services.SeedBaseLatitude, services.SeedBaseLongitude)
	require.NoError(t, err)

	dhaka := time.FixedZone("BST", 6*60*60)
	// 05:00 UTC is 11:00 in Dhaka, when Spice Garden opens.
	svc := services.NewRestaurantService(restaurantDao, dhaka).WithClock(mondayAt(5, 0))

	results, err := svc.FindNearby(context.Background(), nearbyQuery(0.6))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].IsOpenNow)
}

func TestFindNearby_EmptyResultIsNotNil(t *testing.T) {
	svc := services.NewRestaurantService(daoredis.NewRedisRestaurantDAO(db.NewMockRedisClient()), time.UTC)

	results, err := svc.FindNearby(context.Background(), nearbyQuery(2))
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestFindNearby_StoreErrorPropagates(t *testing.T) {
	mockDao := new(dao.MockRestaurantDAO)
	mockDao.On("FindNearby", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := services.NewRestaurantService(mockDao, time.UTC).FindNearby(context.Background(), nearbyQuery(2))
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeInternal, apperrors.As(err).Type)
	mockDao.AssertExpectations(t)
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	activeID := primitive.NewObjectID()
	inactiveID := primitive.NewObjectID()
	missingID := primitive.NewObjectID()

	active := &restaurant.Restaurant{ID: activeID, Name: "Thai Orchid", IsActive: true,
		OpeningHours: restaurant.EveryDay("12:00", "22:00")}
	inactive := &restaurant.Restaurant{ID: inactiveID, Name: "Closed Down", IsActive: false}

	mockDao := new(dao.MockRestaurantDAO)
	mockDao.On("FindByID", mock.Anything, activeID).Return(active, nil)
	mockDao.On("FindByID", mock.Anything, inactiveID).Return(inactive, nil)
	mockDao.On("FindByID", mock.Anything, missingID).Return(nil, apperrors.NewNotFoundError(dao.NotFoundMessage))

	svc := services.NewRestaurantService(mockDao, time.UTC).WithClock(mondayAt(14, 0))

	detail, err := svc.GetByID(ctx, activeID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Thai Orchid", detail.Name)
	assert.True(t, detail.IsOpenNow)

	_, err = svc.GetByID(ctx, inactiveID.Hex())
	assert.True(t, apperrors.Is(err, apperrors.ErrorTypeNotFound))
	assert.Equal(t, "Restaurant not found", apperrors.As(err).Message)

	_, err = svc.GetByID(ctx, missingID.Hex())
	assert.True(t, apperrors.Is(err, apperrors.ErrorTypeNotFound))

	for _, bad := range []string{"", "123", "zzzzzzzzzzzzzzzzzzzzzzzz", activeID.Hex() + "0"} {
		_, err = svc.GetByID(ctx, bad)
		assert.True(t, apperrors.Is(err, apperrors.ErrorTypeValidation), bad)
	}
	mockDao.AssertExpectations(t)
}

func TestGetByID_NoHoursForTodayReadsClosed(t *testing.T) {
	id := primitive.NewObjectID()
	mockDao := new(dao.MockRestaurantDAO)
	mockDao.On("FindByID", mock.Anything, id).Return(&restaurant.Restaurant{
		ID: id, IsActive: true,
		OpeningHours: restaurant.OpeningHours{Tuesday: &restaurant.DayHours{Open: "00:00", Close: "23:59"}},
	}, nil)

	detail, err := services.NewRestaurantService(mockDao, time.UTC).WithClock(mondayAt(12, 0)).
		GetByID(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.False(t, detail.IsOpenNow)
}

func TestGetByID_SeededInactiveRestaurantIsNotFound(t *testing.T) {
	ctx := context.Background()
	restaurantDao := daoredis.NewRedisRestaurantDAO(db.NewMockRedisClient())
	list := services.ReferenceRestaurants(services.SeedBaseLatitude, services.SeedBaseLongitude)
	list[0].IsActive = false
	_, err := services.NewSeederService(restaurantDao).SeedRestaurants(ctx, list[:2])
	require.NoError(t, err)

	svc := services.NewRestaurantService(restaurantDao, time.UTC)
	all, _, err := svc.ListAll(ctx, models.ListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Pizza Paradise", all[0].Name)

	results, err := svc.FindNearby(ctx, nearbyQuery(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"Pizza Paradise"}, names(results))
}

func TestListAll_RatingOrderAndPagination(t *testing.T) {
	svc, _ := seededService(t)
	ctx := context.Background()

	items, pagination, err := svc.ListAll(ctx, models.ListQuery{Page: 1, Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, models.Pagination{Page: 1, Limit: 3, Total: 10, Pages: 4}, pagination)
	require.Len(t, items, 3)
	assert.Equal(t, "Ocean Breeze Seafood", items[0].Name)
	assert.Equal(t, "Thai Orchid", items[1].Name)
	assert.Equal(t, "Sushi Station", items[2].Name)

	items, _, err = svc.ListAll(ctx, models.ListQuery{Page: 4, Limit: 3})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Taco Fiesta", items[0].Name)

	items, pagination, err = svc.ListAll(ctx, models.ListQuery{Page: 9, Limit: 3})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.Equal(t, 4, pagination.Pages)

	items, pagination, err = svc.ListAll(ctx, models.ListQuery{Page: 1, Limit: 20,
		Facets: restaurant.Facets{Cuisine: []restaurant.Cuisine{restaurant.CuisineIndian}}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), pagination.Total)
	assert.Equal(t, 1, pagination.Pages)
	assert.Equal(t, "Spice Garden", items[0].Name)
	assert.Equal(t, "Veggie Delight", items[1].Name)
}

func TestListCuisines_SortedDistinct(t *testing.T) {
	svc, _ := seededService(t)

	cuisines, err := svc.ListCuisines(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []restaurant.Cuisine{
		"American", "Bangladeshi", "Cafe", "Chinese", "Continental", "Desserts", "Fast Food",
		"Indian", "Italian", "Japanese", "Mexican", "Seafood", "Thai", "Vegetarian",
	}, cuisines)
}

func TestListCuisines_EmptyStore(t *testing.T) {
	mockDao := new(dao.MockRestaurantDAO)
	mockDao.On("DistinctCuisines", mock.Anything).Return(nil, nil)

	cuisines, err := services.NewRestaurantService(mockDao, time.UTC).ListCuisines(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, cuisines)
	assert.Empty(t, cuisines)
}
