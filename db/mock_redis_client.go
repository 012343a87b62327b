package db

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"nearby-restaurants/util"
)

// MockRedisClient simulates a Redis client for testing purposes.
type MockRedisClient struct {
	data    map[string]string            // Key-value store
	geoData map[string]map[string]GeoLoc // Geolocation data
	windows map[string]*counterWindow   // Fixed-window counters
	mu      sync.RWMutex

	// Now is the clock used for counter expiry.
	Now func() time.Time

	// PingErr, when set, is returned by Ping.
	PingErr error
}

// GeoLoc represents a geolocation with latitude and longitude.
type GeoLoc struct {
	Latitude  float64
	Longitude float64
}

type counterWindow struct {
	count   int64
	resetAt time.Time
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{
		data:    make(map[string]string),
		geoData: make(map[string]map[string]GeoLoc),
		windows: make(map[string]*counterWindow),
		Now:     time.Now,
	}
}

// Set stores a key-value pair in the mock Redis.
func (m *MockRedisClient) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Get retrieves a value for a given key from the mock Redis.
func (m *MockRedisClient) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	if !exists {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (m *MockRedisClient) GetMany(_ context.Context, keys ...string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []string
	for _, k := range keys {
		if v, ok := m.data[k]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *MockRedisClient) Exists(_ context.Context, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, inData := m.data[key]
	_, inGeo := m.geoData[key]
	return inData || inGeo, nil
}

// Del removes plain keys and whole geo sets.
func (m *MockRedisClient) Del(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
		delete(m.geoData, k)
		delete(m.windows, k)
	}
	return nil
}

// AddLocationWithJSON adds geolocation with JSON data in the mock Redis.
func (m *MockRedisClient) AddLocationWithJSON(_ context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.geoData[geoKey]; !exists {
		m.geoData[geoKey] = make(map[string]GeoLoc)
	}
	m.geoData[geoKey][memberKey] = GeoLoc{Latitude: lat, Longitude: lon}
	m.data[memberKey] = string(jsonData)
	return nil
}

// GetLocationsWithinRadius applies a great-circle radius filter and returns
// the JSON data nearest first, like GEORADIUS ... ASC.
func (m *MockRedisClient) GetLocationsWithinRadius(_ context.Context, geoKey string, lat, lon, radiusKm float64) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	type hit struct {
		member string
		dist   float64
	}
	var hits []hit
	for member, loc := range m.geoData[geoKey] {
		d := util.HaversineKm(lat, lon, loc.Latitude, loc.Longitude)
		if d <= radiusKm {
			hits = append(hits, hit{member, d})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].dist == hits[j].dist {
			return hits[i].member < hits[j].member
		}
		return hits[i].dist < hits[j].dist
	})

	var results []string
	for _, h := range hits {
		if data, exists := m.data[h.member]; exists {
			results = append(results, data)
		}
	}
	return results, nil
}

// Members returns the geo set's members in lexical order.
func (m *MockRedisClient) Members(_ context.Context, geoKey string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	members := make([]string, 0, len(m.geoData[geoKey]))
	for member := range m.geoData[geoKey] {
		members = append(members, member)
	}
	sort.Strings(members)
	return members, nil
}

// IncrWindow behaves like INCR followed by EXPIRE on the first hit.
func (m *MockRedisClient) IncrWindow(_ context.Context, key string, d time.Duration) (int64, time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.Now()
	w, ok := m.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &counterWindow{resetAt: now.Add(d)}
		m.windows[key] = w
	}
	w.count++
	return w.count, w.resetAt.Sub(now), nil
}

func (m *MockRedisClient) Ping(_ context.Context) error {
	return m.PingErr
}

func (m *MockRedisClient) Close() error {
	return nil
}
