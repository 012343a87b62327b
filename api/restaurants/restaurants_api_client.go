package restaurants

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"nearby-restaurants/api"
	"nearby-restaurants/models"
	"nearby-restaurants/models/restaurant"
)

const RESTAURANTS_ENDPOINT = "/restaurants"

// RestaurantsApiClient embeds the common HTTPClient. BaseURL includes the
// API prefix, e.g. http://localhost:8080/api/v1.
type RestaurantsApiClient struct {
	*api.HTTPClient
}

var _ RestaurantsAPI = (*RestaurantsApiClient)(nil)

func NewRestaurantsApiClient(httpClient *api.HTTPClient) *RestaurantsApiClient {
	return &RestaurantsApiClient{HTTPClient: httpClient}
}

// Nearby calls GET /restaurants/nearby. Zero Limit and Skip are left to the
// server defaults.
func (c *RestaurantsApiClient) Nearby(ctx context.Context, q models.SearchQuery) (*models.NearbyResponse, error) {
	vals := url.Values{}
	vals.Set("latitude", formatFloat(q.Latitude))
	vals.Set("longitude", formatFloat(q.Longitude))
	if q.RadiusKm > 0 {
		vals.Set("radius", formatFloat(q.RadiusKm))
	}
	if q.Limit > 0 {
		vals.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Skip > 0 {
		vals.Set("skip", strconv.Itoa(q.Skip))
	}
	encodeFacets(vals, q.Facets)

	var response models.NearbyResponse
	if err := c.Request(ctx, "GET", RESTAURANTS_ENDPOINT+"/nearby", vals, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *RestaurantsApiClient) GetByID(ctx context.Context, id string) (*models.DetailResponse, error) {
	var response models.DetailResponse
	if err := c.Request(ctx, "GET", RESTAURANTS_ENDPOINT+"/"+url.PathEscape(id), nil, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *RestaurantsApiClient) List(ctx context.Context, page, limit int, facets restaurant.Facets) (*models.ListResponse, error) {
	vals := url.Values{}
	if page > 0 {
		vals.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		vals.Set("limit", strconv.Itoa(limit))
	}
	encodeFacets(vals, facets)

	var response models.ListResponse
	if err := c.Request(ctx, "GET", RESTAURANTS_ENDPOINT, vals, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *RestaurantsApiClient) Cuisines(ctx context.Context) (*models.CuisinesResponse, error) {
	var response models.CuisinesResponse
	if err := c.Request(ctx, "GET", RESTAURANTS_ENDPOINT+"/cuisines", nil, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func encodeFacets(vals url.Values, facets restaurant.Facets) {
	if len(facets.Cuisine) > 0 {
		names := make([]string, len(facets.Cuisine))
		for i, c := range facets.Cuisine {
			names[i] = string(c)
		}
		vals.Set("cuisine", strings.Join(names, ","))
	}
	if facets.PriceRange != "" {
		vals.Set("priceRange", string(facets.PriceRange))
	}
	if facets.MinRating != nil {
		vals.Set("minRating", formatFloat(*facets.MinRating))
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
