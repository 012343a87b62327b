package models

import (
	"nearby-restaurants/apperrors"
	"nearby-restaurants/models/restaurant"
)

// NearbyResponse is returned by GET /restaurants/nearby.
type NearbyResponse struct {
	Success bool       `json:"success"`
	Count   int        `json:"count"`
	Data    NearbyData `json:"data"`
}

type NearbyData struct {
	Restaurants  []restaurant.Result `json:"restaurants"`
	SearchParams SearchParams        `json:"searchParams"`
}

// SearchParams echoes the accepted search back to the caller.
type SearchParams struct {
	Location Point         `json:"location"`
	Radius   float64       `json:"radius"`
	Filters  SearchFilters `json:"filters"`
}

type SearchFilters struct {
	Cuisine    []restaurant.Cuisine `json:"cuisine"`
	PriceRange restaurant.PriceRange `json:"priceRange,omitempty"`
	MinRating  *float64             `json:"minRating"`
}

// NewSearchParams builds the echo block for q.
func NewSearchParams(q SearchQuery) SearchParams {
	return SearchParams{
		Location: Point{Latitude: q.Latitude, Longitude: q.Longitude},
		Radius:   q.RadiusKm,
		Filters: SearchFilters{
			Cuisine:    q.Facets.Cuisine,
			PriceRange: q.Facets.PriceRange,
			MinRating:  q.Facets.MinRating,
		},
	}
}

// DetailResponse is returned by GET /restaurants/{id}.
type DetailResponse struct {
	Success bool       `json:"success"`
	Data    DetailData `json:"data"`
}

type DetailData struct {
	Restaurant restaurant.Detail `json:"restaurant"`
}

// ListResponse is returned by GET /restaurants.
type ListResponse struct {
	Success    bool       `json:"success"`
	Count      int        `json:"count"`
	Pagination Pagination `json:"pagination"`
	Data       ListData   `json:"data"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type ListData struct {
	Restaurants []restaurant.Restaurant `json:"restaurants"`
}

// CuisinesResponse is returned by GET /restaurants/cuisines.
type CuisinesResponse struct {
	Success bool         `json:"success"`
	Count   int          `json:"count"`
	Data    CuisinesData `json:"data"`
}

type CuisinesData struct {
	Cuisines []restaurant.Cuisine `json:"cuisines"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

// ErrorResponse is the uniform error envelope. Error and Stack are only
// populated in development mode.
type ErrorResponse struct {
	Success bool                   `json:"success"`
	Status  string                 `json:"status"`
	Message string                 `json:"message"`
	Errors  []apperrors.FieldError `json:"errors,omitempty"`
	Error   string                 `json:"error,omitempty"`
	Stack   string                 `json:"stack,omitempty"`
}

// IndexResponse is returned by GET / and lists the available endpoints.
type IndexResponse struct {
	Success   bool           `json:"success"`
	Message   string         `json:"message"`
	Version   string         `json:"version"`
	Endpoints IndexEndpoints `json:"endpoints"`
}

type IndexEndpoints struct {
	Health      string              `json:"health"`
	Restaurants RestaurantEndpoints `json:"restaurants"`
}

type RestaurantEndpoints struct {
	Nearby   string `json:"nearby"`
	All      string `json:"all"`
	ByID     string `json:"byId"`
	Cuisines string `json:"cuisines"`
}
