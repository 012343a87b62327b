package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"nearby-restaurants/apperrors"
	"nearby-restaurants/dao"
	"nearby-restaurants/logging"
	"nearby-restaurants/models"
	"nearby-restaurants/models/restaurant"
	"nearby-restaurants/util"
)

// RestaurantService answers the read-side restaurant queries.
type RestaurantService struct {
	dao      dao.RestaurantDAO
	location *time.Location
	now      func() time.Time
	logger   zerolog.Logger
}

// NewRestaurantService constructs a RestaurantService. Opening hours are
// evaluated in loc; a nil loc means time.Local.
func NewRestaurantService(restaurantDao dao.RestaurantDAO, loc *time.Location) *RestaurantService {
	if loc == nil {
		loc = time.Local
	}
	return &RestaurantService{
		dao:      restaurantDao,
		location: loc,
		now:      time.Now,
		logger:   logging.For("RestaurantService"),
	}
}

// WithClock replaces the wall clock, mainly for tests.
func (s *RestaurantService) WithClock(now func() time.Time) *RestaurantService {
	s.now = now
	return s
}

func (s *RestaurantService) localNow() time.Time {
	return s.now().In(s.location)
}

// FindNearby runs the spatial query and annotates each hit with its
// great-circle distance from the query point and its open status.
func (s *RestaurantService) FindNearby(ctx context.Context, q models.SearchQuery) ([]restaurant.Result, error) {
	found, err := s.dao.FindNearby(ctx, q)
	if err != nil {
		s.logger.Error().Err(err).
			Float64("lat", q.Latitude).Float64("lon", q.Longitude).Float64("radiusKm", q.RadiusKm).
			Msg("nearby query failed")
		return nil, err
	}

	now := s.localNow()
	results := make([]restaurant.Result, 0, len(found))
	for i := range found {
		r := &found[i]
		distance := util.HaversineKm(q.Latitude, q.Longitude, r.Location.Latitude(), r.Location.Longitude())
		results = append(results, restaurant.Result{
			Restaurant: *r,
			Distance:   util.Round2(distance),
			IsOpenNow:  r.IsOpenAt(now),
		})
	}

	s.logger.Debug().Int("count", len(results)).Float64("radiusKm", q.RadiusKm).Msg("nearby search")
	return results, nil
}

// ParseID converts a 24-character hex string into an ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.NewValidationError(apperrors.MsgValidation,
			apperrors.FieldError{Field: "id", Message: `"id" must be a 24 character hex string`})
	}
	return oid, nil
}

// GetByID returns an active restaurant. Inactive ones read as not found.
func (s *RestaurantService) GetByID(ctx context.Context, id string) (*restaurant.Detail, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	r, err := s.dao.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if !r.IsActive {
		return nil, apperrors.NewNotFoundError(dao.NotFoundMessage)
	}
	return &restaurant.Detail{Restaurant: *r, IsOpenNow: r.IsOpenAt(s.localNow())}, nil
}

// ListAll returns one page of active restaurants by descending rating.
func (s *RestaurantService) ListAll(ctx context.Context, q models.ListQuery) ([]restaurant.Restaurant, models.Pagination, error) {
	items, total, err := s.dao.List(ctx, q)
	if err != nil {
		s.logger.Error().Err(err).Int("page", q.Page).Msg("list failed")
		return nil, models.Pagination{}, err
	}
	if items == nil {
		items = []restaurant.Restaurant{}
	}

	pages := 0
	if q.Limit > 0 {
		pages = int((total + int64(q.Limit) - 1) / int64(q.Limit))
	}
	return items, models.Pagination{Page: q.Page, Limit: q.Limit, Total: total, Pages: pages}, nil
}

// ListCuisines returns the sorted distinct cuisines offered by active restaurants.
func (s *RestaurantService) ListCuisines(ctx context.Context) ([]restaurant.Cuisine, error) {
	cuisines, err := s.dao.DistinctCuisines(ctx)
	if err != nil {
		return nil, err
	}
	if cuisines == nil {
		cuisines = []restaurant.Cuisine{}
	}
	return cuisines, nil
}
