package server

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nearby-restaurants/apperrors"
	"nearby-restaurants/db"
	"nearby-restaurants/models"
	"nearby-restaurants/server/handlers"
)

type panickingRestaurantHandler struct {
	MockRestaurantHandler
}

func (h *panickingRestaurantHandler) GetNearby(w http.ResponseWriter, r *http.Request) {
	panic("boom")
}

type deadlineRestaurantHandler struct {
	MockRestaurantHandler
	hasDeadline chan bool
}

func (h *deadlineRestaurantHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	_, ok := r.Context().Deadline()
	h.hasDeadline <- ok
	w.WriteHeader(http.StatusOK)
}

func newTestServer(restaurants RestaurantRoutes, opts Options) *RestaurantHttpServer {
	responder := handlers.NewResponder(false)
	muxRouter := mux.NewRouter()
	system := handlers.NewSystemHandler("test", "/api/v1", responder)
	router := NewRouter(restaurants, system, muxRouter, "/api/v1")
	return NewRestaurantHttpServer(router, muxRouter, responder, opts)
}

func TestHttpServer_RequestIDIsEchoed(t *testing.T) {
	ts := httptest.NewServer(newTestServer(&MockRestaurantHandler{}, Options{}).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Len(t, resp.Header.Get(handlers.RequestIDHeader), 36)

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/health", nil)
	req.Header.Set(handlers.RequestIDHeader, "abc-123")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "abc-123", resp.Header.Get(handlers.RequestIDHeader))
}

func TestHttpServer_UnknownRouteIsJSON404(t *testing.T) {
	ts := httptest.NewServer(newTestServer(&MockRestaurantHandler{}, Options{}).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/menus")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "fail", body.Status)
	assert.Equal(t, "Route /api/v1/menus not found", body.Message)
}

func TestHttpServer_PanicBecomesInternalError(t *testing.T) {
	ts := httptest.NewServer(newTestServer(&panickingRestaurantHandler{}, Options{}).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/restaurants/nearby?latitude=1&longitude=1")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, apperrors.MsgInternal, body.Message)
}

func TestHttpServer_RequestContextHasDeadline(t *testing.T) {
	h := &deadlineRestaurantHandler{hasDeadline: make(chan bool, 1)}
	ts := httptest.NewServer(newTestServer(h, Options{RequestTimeout: time.Second}).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/restaurants")
	require.NoError(t, err)
	resp.Body.Close()
	assert.True(t, <-h.hasDeadline)
}

func TestHttpServer_GzipAndCORS(t *testing.T) {
	ts := httptest.NewServer(newTestServer(&MockRestaurantHandler{}, Options{AllowedOrigins: []string{"http://localhost:19006"}}).Handler())
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/restaurants/cuisines", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("Origin", "http://localhost:19006")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "http://localhost:19006", resp.Header.Get("Access-Control-Allow-Origin"))
	require.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))

	gz, err := gzip.NewReader(resp.Body)
	require.NoError(t, err)
	raw, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Equal(t, `{"message": "cuisines"}`, string(raw))
}

func TestHttpServer_StartStopsOnContextCancel(t *testing.T) {
	s := newTestServer(&MockRestaurantHandler{}, Options{Addr: "127.0.0.1:0", ShutdownTimeout: time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

type failingRateCounter struct{}

func (failingRateCounter) IncrWindow(context.Context, string, time.Duration) (int64, time.Duration, error) {
	return 0, 0, errors.New("connection refused")
}

func getWithIP(t *testing.T, url, ip string) *http.Response {
	t.Helper()
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("X-Forwarded-For", ip)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestHttpServer_RateLimitPerClientIP(t *testing.T) {
	tests := []struct {
		name    string
		counter RateCounter
	}{
		{"redis counter", db.NewMockRedisClient()},
		{"local counter", nil},
		{"counter failure falls back to local", failingRateCounter{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			opts := Options{
				RateLimit:   RateLimitOptions{Prefix: "/api/v1", Window: time.Minute, Max: 2},
				RateCounter: test.counter,
			}
			ts := httptest.NewServer(newTestServer(&MockRestaurantHandler{}, opts).Handler())
			defer ts.Close()

			for i := 0; i < 2; i++ {
				resp := getWithIP(t, ts.URL+"/api/v1/restaurants", "10.0.0.1")
				resp.Body.Close()
				require.Equal(t, http.StatusOK, resp.StatusCode)
			}

			resp := getWithIP(t, ts.URL+"/api/v1/restaurants", "10.0.0.1")
			defer resp.Body.Close()
			require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
			assert.Equal(t, "60", resp.Header.Get("Retry-After"))
			assert.Equal(t, "0", resp.Header.Get("RateLimit-Remaining"))
			var body models.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, "fail", body.Status)
			assert.Equal(t, apperrors.MsgRateLimit, body.Message)

			other := getWithIP(t, ts.URL+"/api/v1/restaurants", "10.0.0.2")
			other.Body.Close()
			assert.Equal(t, http.StatusOK, other.StatusCode, "other clients keep their own window")

			health := getWithIP(t, ts.URL+"/health", "10.0.0.1")
			health.Body.Close()
			assert.Equal(t, http.StatusOK, health.StatusCode, "only the API prefix is limited")
		})
	}
}

func TestLocalRateCounter_WindowResets(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	counter := NewLocalRateCounter()
	counter.now = func() time.Time { return now }
	ctx := context.Background()

	count, left, err := counter.IncrWindow(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, time.Minute, left)

	now = now.Add(59 * time.Second)
	count, left, _ = counter.IncrWindow(ctx, "k", time.Minute)
	assert.Equal(t, int64(2), count)
	assert.Equal(t, time.Second, left)

	now = now.Add(time.Second)
	count, _, _ = counter.IncrWindow(ctx, "k", time.Minute)
	assert.Equal(t, int64(1), count)
}

func TestHttpServer_SecurityHeaders(t *testing.T) {
	ts := httptest.NewServer(newTestServer(&MockRestaurantHandler{}, Options{}).Handler())
	defer ts.Close()

	for _, path := range []string{"/health", "/api/v1/unknown"} {
		resp, err := http.Get(ts.URL + path)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"), path)
		assert.Equal(t, "SAMEORIGIN", resp.Header.Get("X-Frame-Options"), path)
		assert.Equal(t, "no-referrer", resp.Header.Get("Referrer-Policy"), path)
		assert.NotEmpty(t, resp.Header.Get("Strict-Transport-Security"), path)
		assert.Empty(t, resp.Header.Get("RateLimit-Limit"), "limit disabled by default")
	}
}
