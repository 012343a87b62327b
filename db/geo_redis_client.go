package db

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"nearby-restaurants/logging"
)

// GeoRedisClient implements RedisClient on top of go-redis GEO commands.
type GeoRedisClient struct {
	client *redis.Client
	logger zerolog.Logger
}

// NewGeoRedisClient wraps client and verifies the connection.
func NewGeoRedisClient(ctx context.Context, client *redis.Client) (*GeoRedisClient, error) {
	r := &GeoRedisClient{
		client: client,
		logger: logging.For("GeoRedisClient"),
	}
	if err := r.Ping(ctx); err != nil {
		return nil, errors.Wrap(err, "could not connect to redis")
	}
	r.logger.Info().Str("addr", client.Options().Addr).Msg("connected to redis")
	return r, nil
}

// Set sets a key-value pair in Redis
func (r *GeoRedisClient) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis
func (r *GeoRedisClient) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrKeyNotFound
	}
	return val, err
}

// GetMany fetches several keys at once, silently dropping missing ones.
func (r *GeoRedisClient) GetMany(ctx context.Context, keys ...string) ([]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to mget")
	}
	out := make([]string, 0, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			r.logger.Warn().Str("key", keys[i]).Msg("skipping missing member data")
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *GeoRedisClient) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *GeoRedisClient) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

// AddLocationWithJSON stores geolocation along with associated JSON data.
func (r *GeoRedisClient) AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "failed to marshal JSON")
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.GeoAdd(ctx, geoKey, &redis.GeoLocation{
			Name:      memberKey,
			Latitude:  lat,
			Longitude: lon,
		})
		pipe.Set(ctx, memberKey, jsonData, 0)
		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "failed to add geolocation for %s", memberKey)
	}

	r.logger.Debug().Str("member", memberKey).Msg("added geolocation and JSON")
	return nil
}

// GetLocationsWithinRadius finds all members within the given radius and returns their JSON data.
func (r *GeoRedisClient) GetLocationsWithinRadius(ctx context.Context, geoKey string, lat, lon, radiusKm float64) ([]string, error) {
	results, err := r.client.GeoRadius(ctx, geoKey, lon, lat, &redis.GeoRadiusQuery{
		Radius: radiusKm,
		Unit:   "km",
		Sort:   "ASC",
	}).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get nearby locations")
	}

	keys := make([]string, len(results))
	for i, loc := range results {
		keys[i] = loc.Name
	}
	return r.GetMany(ctx, keys...)
}

// Members lists every member key of a geo set.
func (r *GeoRedisClient) Members(ctx context.Context, geoKey string) ([]string, error) {
	members, err := r.client.ZRange(ctx, geoKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list geo members")
	}
	return members, nil
}

// IncrWindow runs INCR and sets the expiry on the first hit of a window.
func (r *GeoRedisClient) IncrWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, 0, errors.Wrapf(err, "failed to increment %s", key)
	}
	if count == 1 {
		if err := r.client.PExpire(ctx, key, window).Err(); err != nil {
			return 0, 0, errors.Wrapf(err, "failed to expire %s", key)
		}
		return count, window, nil
	}

	ttl, err := r.client.PTTL(ctx, key).Result()
	if err != nil {
		return 0, 0, errors.Wrapf(err, "failed to read ttl of %s", key)
	}
	if ttl < 0 {
		// a counter left without expiry restarts its window
		if err := r.client.PExpire(ctx, key, window).Err(); err != nil {
			return 0, 0, errors.Wrapf(err, "failed to expire %s", key)
		}
		ttl = window
	}
	return count, ttl, nil
}

func (r *GeoRedisClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *GeoRedisClient) Close() error {
	return r.client.Close()
}
