package dao

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"nearby-restaurants/models"
	"nearby-restaurants/models/restaurant"
)

// RestaurantDAO is the persistence contract shared by the Redis and Mongo
// backends. Every read excludes inactive restaurants except FindByID, which
// returns the stored document and leaves the active check to the caller.
type RestaurantDAO interface {
	EnsureIndexes(ctx context.Context) error
	Insert(ctx context.Context, r *restaurant.Restaurant) error
	DeleteAll(ctx context.Context) error

	// FindNearby returns active restaurants within q.RadiusKm of the query
	// point matching q.Facets, nearest first, after q.Skip and capped at q.Limit.
	FindNearby(ctx context.Context, q models.SearchQuery) ([]restaurant.Restaurant, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*restaurant.Restaurant, error)
	// List returns one page of active restaurants by descending rating, and
	// the total number of matches.
	List(ctx context.Context, q models.ListQuery) ([]restaurant.Restaurant, int64, error)
	DistinctCuisines(ctx context.Context) ([]restaurant.Cuisine, error)
}

// NotFoundMessage is the message every backend uses for a missing restaurant.
const NotFoundMessage = "Restaurant not found"
