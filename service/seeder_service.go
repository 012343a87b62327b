package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"nearby-restaurants/dao"
	"nearby-restaurants/logging"
	"nearby-restaurants/models/restaurant"
	"nearby-restaurants/util"
)

// SeederService replaces the store contents with a known restaurant set.
type SeederService struct {
	dao    dao.RestaurantDAO
	now    func() time.Time
	logger zerolog.Logger
}

func NewSeederService(restaurantDao dao.RestaurantDAO) *SeederService {
	return &SeederService{
		dao:    restaurantDao,
		now:    time.Now,
		logger: logging.For("SeederService"),
	}
}

// Seed loads the reference restaurants laid out around (baseLat, baseLon).
func (s *SeederService) Seed(ctx context.Context, baseLat, baseLon float64) (int, error) {
	return s.SeedRestaurants(ctx, ReferenceRestaurants(baseLat, baseLon))
}

// SeedFromFile loads restaurants from a JSON array on disk.
func (s *SeederService) SeedFromFile(ctx context.Context, path string) (int, error) {
	list, err := util.ReadRestaurantsFromJSON(path)
	if err != nil {
		return 0, err
	}
	return s.SeedRestaurants(ctx, list)
}

// SeedRestaurants clears the store and inserts list. Every restaurant is
// validated before anything is deleted.
func (s *SeederService) SeedRestaurants(ctx context.Context, list []restaurant.Restaurant) (int, error) {
	now := s.now().UTC()
	prepared := make([]restaurant.Restaurant, len(list))
	for i, r := range list {
		if r.ID.IsZero() {
			r.ID = primitive.NewObjectID()
		}
		if r.CreatedAt.IsZero() {
			r.CreatedAt = now
		}
		r.UpdatedAt = now
		r.Normalize()
		if err := r.Validate(); err != nil {
			return 0, errors.WithMessagef(err, "seed restaurant %q", r.Name)
		}
		prepared[i] = r
	}

	if err := s.dao.EnsureIndexes(ctx); err != nil {
		return 0, errors.Wrap(err, "failed to ensure indexes")
	}
	if err := s.dao.DeleteAll(ctx); err != nil {
		return 0, err
	}
	s.logger.Info().Msg("cleared existing restaurants")

	for i := range prepared {
		if err := s.dao.Insert(ctx, &prepared[i]); err != nil {
			return i, err
		}
		s.logger.Debug().Str("name", prepared[i].Name).Str("id", prepared[i].ID.Hex()).Msg("seeded restaurant")
	}

	s.logger.Info().Int("count", len(prepared)).Msg("seeded restaurants")
	return len(prepared), nil
}
