package restaurants

import (
	"context"

	"nearby-restaurants/models"
	"nearby-restaurants/models/restaurant"
)

// RestaurantsAPI defines the interface for interacting with the restaurant service
type RestaurantsAPI interface {
	Nearby(ctx context.Context, q models.SearchQuery) (*models.NearbyResponse, error)
	GetByID(ctx context.Context, id string) (*models.DetailResponse, error)
	List(ctx context.Context, page, limit int, facets restaurant.Facets) (*models.ListResponse, error)
	Cuisines(ctx context.Context) (*models.CuisinesResponse, error)
}
