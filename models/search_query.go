package models

import (
	"math"

	"nearby-restaurants/models/restaurant"
)

const (
	DefaultRadiusKm = 2.0
	MinRadiusKm     = 0.1
	MaxRadiusKm     = 50.0

	DefaultNearbyLimit = 50
	MaxLimit           = 100

	DefaultListPage  = 1
	DefaultListLimit = 20

	// MaxSkip bounds every offset so page arithmetic stays in range.
	MaxSkip = math.MaxInt32
)

// SearchQuery is a validated nearby search request.
type SearchQuery struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	Facets    restaurant.Facets
	Limit     int
	Skip      int
}

// ListQuery is a validated "list all" request.
type ListQuery struct {
	Page   int
	Limit  int
	Facets restaurant.Facets
}

// Skip is the offset implied by Page and Limit.
func (q ListQuery) Skip() int {
	if q.Page < 1 || q.Limit < 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

// MaxPage is the last page whose offset does not exceed MaxSkip.
func MaxPage(limit int) int {
	if limit < 1 {
		limit = 1
	}
	return MaxSkip/limit + 1
}

// Point is a plain latitude/longitude pair.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
