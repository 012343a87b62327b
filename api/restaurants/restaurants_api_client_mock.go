package restaurants

import (
	"context"
	"net/http"
	"sort"

	"github.com/rs/zerolog"

	"nearby-restaurants/api"
	"nearby-restaurants/config"
	"nearby-restaurants/logging"
	"nearby-restaurants/models"
	"nearby-restaurants/models/restaurant"
	"nearby-restaurants/util"
)

// RestaurantsApiClientMock answers from a recorded nearby response instead
// of the network. Nearby keeps the recorded hits within the requested radius
// that match the facets, nearest first.
type RestaurantsApiClientMock struct {
	fixturePath string
	logger      zerolog.Logger
}

var _ RestaurantsAPI = (*RestaurantsApiClientMock)(nil)

// NewRestaurantsApiClientMock reads fixturePath on every call; an empty path
// means the bundled resources/nearby_response.json.
func NewRestaurantsApiClientMock(fixturePath string) *RestaurantsApiClientMock {
	if fixturePath == "" {
		fixturePath = config.GetResourcePath(config.NEARBY_RESPONSE_RESOURCE)
	}
	return &RestaurantsApiClientMock{fixturePath: fixturePath, logger: logging.For("RestaurantsApiClientMock")}
}

func (c *RestaurantsApiClientMock) load(ctx context.Context) ([]restaurant.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	response, err := util.ReadNearbyResponseFromJSON(c.fixturePath)
	if err != nil {
		c.logger.Error().Err(err).Str("path", c.fixturePath).Msg("could not read nearby response fixture")
		return nil, err
	}
	return response.Data.Restaurants, nil
}

func (c *RestaurantsApiClientMock) Nearby(ctx context.Context, q models.SearchQuery) (*models.NearbyResponse, error) {
	recorded, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	radius := q.RadiusKm
	if radius <= 0 {
		radius = models.DefaultRadiusKm
	}
	hits := make([]restaurant.Result, 0, len(recorded))
	for _, r := range recorded {
		if r.IsActive && r.Distance <= radius && q.Facets.Matches(&r.Restaurant) {
			hits = append(hits, r)
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	hits = window(hits, q.Skip, q.Limit)

	q.RadiusKm = radius
	return &models.NearbyResponse{
		Success: true,
		Count:   len(hits),
		Data:    models.NearbyData{Restaurants: hits, SearchParams: models.NewSearchParams(q)},
	}, nil
}

func (c *RestaurantsApiClientMock) GetByID(ctx context.Context, id string) (*models.DetailResponse, error) {
	recorded, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range recorded {
		if r.ID.Hex() == id && r.IsActive {
			return &models.DetailResponse{
				Success: true,
				Data:    models.DetailData{Restaurant: restaurant.Detail{Restaurant: r.Restaurant, IsOpenNow: r.IsOpenNow}},
			}, nil
		}
	}
	return nil, &api.Error{StatusCode: http.StatusNotFound, Message: "Restaurant not found"}
}

func (c *RestaurantsApiClientMock) List(ctx context.Context, page, limit int, facets restaurant.Facets) (*models.ListResponse, error) {
	recorded, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = models.DefaultListPage
	}
	if limit < 1 {
		limit = models.DefaultListLimit
	}

	all := make([]restaurant.Restaurant, 0, len(recorded))
	for _, r := range recorded {
		if r.IsActive && facets.Matches(&r.Restaurant) {
			all = append(all, r.Restaurant)
		}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Rating.Average > all[j].Rating.Average })
	items := window(all, (page-1)*limit, limit)

	return &models.ListResponse{
		Success: true,
		Count:   len(items),
		Pagination: models.Pagination{
			Page:  page,
			Limit: limit,
			Total: int64(len(all)),
			Pages: (len(all) + limit - 1) / limit,
		},
		Data: models.ListData{Restaurants: items},
	}, nil
}

func (c *RestaurantsApiClientMock) Cuisines(ctx context.Context) (*models.CuisinesResponse, error) {
	recorded, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	seen := map[restaurant.Cuisine]bool{}
	cuisines := []restaurant.Cuisine{}
	for _, r := range recorded {
		if !r.IsActive {
			continue
		}
		for _, cu := range r.Cuisine {
			if !seen[cu] {
				seen[cu] = true
				cuisines = append(cuisines, cu)
			}
		}
	}
	sort.Slice(cuisines, func(i, j int) bool { return cuisines[i] < cuisines[j] })
	return &models.CuisinesResponse{Success: true, Count: len(cuisines), Data: models.CuisinesData{Cuisines: cuisines}}, nil
}

func window[T any](items []T, skip, limit int) []T {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(items) {
		return items[:0]
	}
	items = items[skip:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
