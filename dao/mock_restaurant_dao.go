package dao

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"nearby-restaurants/models"
	"nearby-restaurants/models/restaurant"
)

// MockRestaurantDAO is a testify mock of RestaurantDAO.
type MockRestaurantDAO struct {
	mock.Mock
}

var _ RestaurantDAO = (*MockRestaurantDAO)(nil)

func (m *MockRestaurantDAO) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockRestaurantDAO) Insert(ctx context.Context, r *restaurant.Restaurant) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRestaurantDAO) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockRestaurantDAO) FindNearby(ctx context.Context, q models.SearchQuery) ([]restaurant.Restaurant, error) {
	args := m.Called(ctx, q)
	list, _ := args.Get(0).([]restaurant.Restaurant)
	return list, args.Error(1)
}

func (m *MockRestaurantDAO) FindByID(ctx context.Context, id primitive.ObjectID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*restaurant.Restaurant)
	return r, args.Error(1)
}

func (m *MockRestaurantDAO) List(ctx context.Context, q models.ListQuery) ([]restaurant.Restaurant, int64, error) {
	args := m.Called(ctx, q)
	list, _ := args.Get(0).([]restaurant.Restaurant)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *MockRestaurantDAO) DistinctCuisines(ctx context.Context) ([]restaurant.Cuisine, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]restaurant.Cuisine)
	return list, args.Error(1)
}
