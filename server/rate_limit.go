package server

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"nearby-restaurants/apperrors"
	"nearby-restaurants/server/handlers"
)

const rateLimitKeyPrefix = "ratelimit:"

// RateCounter counts hits per key in fixed windows. db.RedisClient
// satisfies it, so every instance shares one count.
type RateCounter interface {
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// LocalRateCounter is an in-process RateCounter for deployments without Redis.
type LocalRateCounter struct {
	mu      sync.Mutex
	windows map[string]*localWindow
	now     func() time.Time
}

type localWindow struct {
	count   int64
	resetAt time.Time
}

func NewLocalRateCounter() *LocalRateCounter {
	return &LocalRateCounter{
		windows: make(map[string]*localWindow),
		now:     time.Now,
	}
}

func (l *LocalRateCounter) IncrWindow(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || !now.Before(w.resetAt) {
		// drop expired windows so idle clients do not pile up
		for k, old := range l.windows {
			if !now.Before(old.resetAt) {
				delete(l.windows, k)
			}
		}
		w = &localWindow{resetAt: now.Add(window)}
		l.windows[key] = w
	}
	w.count++
	return w.count, w.resetAt.Sub(now), nil
}

// RateLimitOptions bounds requests per client IP under Prefix.
type RateLimitOptions struct {
	Prefix string
	Window time.Duration
	Max    int
}

// RateLimit answers 429 once a client IP has used up its window on paths
// under opts.Prefix. When counter fails the request is counted locally.
func RateLimit(counter RateCounter, opts RateLimitOptions, responder *handlers.Responder, logger zerolog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		if opts.Max <= 0 || opts.Window <= 0 {
			return next
		}
		local := NewLocalRateCounter()
		if counter == nil {
			counter = local
		}
		prefix := strings.TrimRight(opts.Prefix, "/") + "/"

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, prefix) {
				next.ServeHTTP(w, r)
				return
			}

			key := rateLimitKeyPrefix + clientIP(r)
			count, left, err := counter.IncrWindow(r.Context(), key, opts.Window)
			if err != nil {
				logger.Warn().Err(err).Str("key", key).Msg("rate counter unavailable, counting locally")
				count, left, _ = local.IncrWindow(r.Context(), key, opts.Window)
			}

			remaining := int64(opts.Max) - count
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("RateLimit-Limit", strconv.Itoa(opts.Max))
			w.Header().Set("RateLimit-Remaining", strconv.FormatInt(remaining, 10))
			w.Header().Set("RateLimit-Reset", strconv.Itoa(seconds(left)))

			if count > int64(opts.Max) {
				w.Header().Set("Retry-After", strconv.Itoa(seconds(left)))
				responder.Error(w, r, apperrors.NewRateLimitError())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func seconds(d time.Duration) int {
	return int(math.Ceil(d.Seconds()))
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return strings.TrimSpace(realIP)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}

// SecurityHeaders sets conservative response headers for a JSON API.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		h.Set("Cross-Origin-Opener-Policy", "same-origin")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Strict-Transport-Security", "max-age=15552000; includeSubDomains")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-DNS-Prefetch-Control", "off")
		h.Set("X-Frame-Options", "SAMEORIGIN")
		next.ServeHTTP(w, r)
	})
}
