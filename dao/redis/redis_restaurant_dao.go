package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"nearby-restaurants/apperrors"
	"nearby-restaurants/dao"
	"nearby-restaurants/db"
	"nearby-restaurants/logging"
	"nearby-restaurants/models"
	"nearby-restaurants/models/restaurant"
)

const RESTAURANTS_GEO_KEY_V1 = "restaurants_geo_v1"
const RESTAURANT_MEMBER_FORMAT_V1 = "restaurant_v1:%s"

// RedisRestaurantDAO stores each restaurant as a member of one GEO set, with
// the document JSON kept under the member key.
type RedisRestaurantDAO struct {
	client db.RedisClient
	logger zerolog.Logger
}

var _ dao.RestaurantDAO = (*RedisRestaurantDAO)(nil)

// NewRedisRestaurantDAO initializes a RedisRestaurantDAO with the Redis client.
func NewRedisRestaurantDAO(client db.RedisClient) *RedisRestaurantDAO {
	return &RedisRestaurantDAO{client: client, logger: logging.For("RedisRestaurantDAO")}
}

func memberKey(id primitive.ObjectID) string {
	return fmt.Sprintf(RESTAURANT_MEMBER_FORMAT_V1, id.Hex())
}

// EnsureIndexes is a no-op: the GEO set is the spatial index.
func (d *RedisRestaurantDAO) EnsureIndexes(context.Context) error {
	return nil
}

// Insert stores r, refusing to overwrite an existing id.
func (d *RedisRestaurantDAO) Insert(ctx context.Context, r *restaurant.Restaurant) error {
	key := memberKey(r.ID)
	exists, err := d.client.Exists(ctx, key)
	if err != nil {
		return errors.Wrapf(err, "failed to check restaurant %s", key)
	}
	if exists {
		return apperrors.NewDuplicateError(r.ID.Hex())
	}
	return d.client.AddLocationWithJSON(ctx, RESTAURANTS_GEO_KEY_V1, key,
		r.Location.Latitude(), r.Location.Longitude(), r)
}

// DeleteAll removes every restaurant document and the GEO set itself.
func (d *RedisRestaurantDAO) DeleteAll(ctx context.Context) error {
	members, err := d.client.Members(ctx, RESTAURANTS_GEO_KEY_V1)
	if err != nil {
		return err
	}
	if err := d.client.Del(ctx, append(members, RESTAURANTS_GEO_KEY_V1)...); err != nil {
		return errors.Wrap(err, "failed to delete restaurants")
	}
	d.logger.Info().Int("deleted", len(members)).Msg("cleared restaurants")
	return nil
}

func (d *RedisRestaurantDAO) FindNearby(ctx context.Context, q models.SearchQuery) ([]restaurant.Restaurant, error) {
	raw, err := d.client.GetLocationsWithinRadius(ctx, RESTAURANTS_GEO_KEY_V1, q.Latitude, q.Longitude, q.RadiusKm)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query nearby restaurants")
	}
	matches, err := decodeMatching(raw, q.Facets)
	if err != nil {
		return nil, err
	}
	d.logger.Debug().Int("inRadius", len(raw)).Int("matched", len(matches)).Msg("nearby query")
	return page(matches, q.Skip, q.Limit), nil
}

func (d *RedisRestaurantDAO) FindByID(ctx context.Context, id primitive.ObjectID) (*restaurant.Restaurant, error) {
	raw, err := d.client.Get(ctx, memberKey(id))
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil, apperrors.NewNotFoundError(dao.NotFoundMessage)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load restaurant %s", id.Hex())
	}
	var r restaurant.Restaurant
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal restaurant JSON")
	}
	return &r, nil
}

func (d *RedisRestaurantDAO) List(ctx context.Context, q models.ListQuery) ([]restaurant.Restaurant, int64, error) {
	all, err := d.loadActive(ctx, q.Facets)
	if err != nil {
		return nil, 0, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Rating.Average > all[j].Rating.Average
	})
	return page(all, q.Skip(), q.Limit), int64(len(all)), nil
}

func (d *RedisRestaurantDAO) DistinctCuisines(ctx context.Context) ([]restaurant.Cuisine, error) {
	all, err := d.loadActive(ctx, restaurant.Facets{})
	if err != nil {
		return nil, err
	}
	seen := map[restaurant.Cuisine]bool{}
	var cuisines []restaurant.Cuisine
	for _, r := range all {
		for _, c := range r.Cuisine {
			if !seen[c] {
				seen[c] = true
				cuisines = append(cuisines, c)
			}
		}
	}
	sort.Slice(cuisines, func(i, j int) bool { return cuisines[i] < cuisines[j] })
	return cuisines, nil
}

func (d *RedisRestaurantDAO) loadActive(ctx context.Context, facets restaurant.Facets) ([]restaurant.Restaurant, error) {
	members, err := d.client.Members(ctx, RESTAURANTS_GEO_KEY_V1)
	if err != nil {
		return nil, err
	}
	raw, err := d.client.GetMany(ctx, members...)
	if err != nil {
		return nil, err
	}
	return decodeMatching(raw, facets)
}

// decodeMatching keeps active restaurants that satisfy facets, preserving order.
func decodeMatching(raw []string, facets restaurant.Facets) ([]restaurant.Restaurant, error) {
	out := make([]restaurant.Restaurant, 0, len(raw))
	for _, s := range raw {
		var r restaurant.Restaurant
		if err := json.Unmarshal([]byte(s), &r); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal restaurant JSON")
		}
		if r.IsActive && facets.Matches(&r) {
			out = append(out, r)
		}
	}
	return out, nil
}

func page(items []restaurant.Restaurant, skip, limit int) []restaurant.Restaurant {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(items) {
		return []restaurant.Restaurant{}
	}
	items = items[skip:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
