package browse

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"nearby-restaurants/api/restaurants"
	"nearby-restaurants/logging"
	"nearby-restaurants/models"
	"nearby-restaurants/models/restaurant"
)

type State int

const (
	AwaitingLocationPermission State = iota
	PermissionDenied
	Fetching
	Ready
)

func (s State) String() string {
	switch s {
	case AwaitingLocationPermission:
		return "AwaitingLocationPermission"
	case PermissionDenied:
		return "PermissionDenied"
	case Fetching:
		return "Fetching"
	case Ready:
		return "Ready"
	default:
		return "Unknown"
	}
}

var (
	ErrPermissionRequired = errors.New("location permission has not been granted")
	ErrInvalidRadius      = errors.New("radius must be positive")
)

// Session is the state of one nearby-restaurants screen. It owns the base
// set of the last accepted fetch and recomputes the visible list locally.
//
// Only point and radius changes fetch. Every fetch gets a new generation and
// cancels the one in flight; a response from an older generation is dropped.
type Session struct {
	api     restaurants.RestaurantsAPI
	onAlert func(message string)
	logger  zerolog.Logger

	mu         sync.Mutex
	state      State
	point      models.Point
	radiusKm   float64
	base       []restaurant.Result
	filters    FilterState
	generation uint64
	cancel     context.CancelFunc
}

type Option func(*Session)

// WithAlert registers the callback that shows fetch errors to the user.
// The message is passed through unchanged.
func WithAlert(onAlert func(message string)) Option {
	return func(s *Session) { s.onAlert = onAlert }
}

// WithRadius sets the initial radius instead of DefaultRadiusKm.
func WithRadius(km float64) Option {
	return func(s *Session) { s.radiusKm = km }
}

func NewSession(api restaurants.RestaurantsAPI, opts ...Option) *Session {
	s := &Session{
		api:      api,
		onAlert:  func(string) {},
		logger:   logging.For("BrowseSession"),
		state:    AwaitingLocationPermission,
		radiusKm: DefaultRadiusKm,
		base:     []restaurant.Result{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GrantPermission records the device location and starts the first fetch.
// The returned channel closes when that fetch has been applied or dropped.
// A denied session ignores the grant until RetryPermission.
func (s *Session) GrantPermission(ctx context.Context, at models.Point) <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == PermissionDenied {
		return closed()
	}
	s.point = at
	return s.fetchLocked(ctx)
}

// DenyPermission moves to PermissionDenied, which only RetryPermission leaves.
func (s *Session) DenyPermission() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == AwaitingLocationPermission {
		s.state = PermissionDenied
	}
}

func (s *Session) RetryPermission() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == PermissionDenied {
		s.state = AwaitingLocationPermission
	}
}

// SetPoint moves the search centre. An unchanged point does not fetch.
func (s *Session) SetPoint(ctx context.Context, at models.Point) (<-chan struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.permittedLocked() {
		return nil, ErrPermissionRequired
	}
	if at == s.point {
		return closed(), nil
	}
	s.point = at
	return s.fetchLocked(ctx), nil
}

// SetRadius changes the search radius. An unchanged radius does not fetch.
func (s *Session) SetRadius(ctx context.Context, km float64) (<-chan struct{}, error) {
	if km <= 0 {
		return nil, ErrInvalidRadius
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.permittedLocked() {
		return nil, ErrPermissionRequired
	}
	if km == s.radiusKm {
		return closed(), nil
	}
	s.radiusKm = km
	return s.fetchLocked(ctx), nil
}

// Refresh refetches the current point and radius.
func (s *Session) Refresh(ctx context.Context) (<-chan struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.permittedLocked() {
		return nil, ErrPermissionRequired
	}
	return s.fetchLocked(ctx), nil
}

// SetFilters replaces the filter state. It never fetches.
func (s *Session) SetFilters(f FilterState) {
	s.mu.Lock()
	s.filters = f
	s.mu.Unlock()
}

// SetSearchText replaces the free-text query. It never fetches.
func (s *Session) SetSearchText(text string) {
	s.mu.Lock()
	s.filters = s.filters.WithSearchText(text)
	s.mu.Unlock()
}

func (s *Session) Filters() FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Point() models.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.point
}

func (s *Session) RadiusKm() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.radiusKm
}

// Base returns a copy of the last accepted fetch result.
func (s *Session) Base() []restaurant.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]restaurant.Result(nil), s.base...)
}

// Visible is the base set after the filter pipeline.
func (s *Session) Visible() []restaurant.Result {
	s.mu.Lock()
	base, filters := s.base, s.filters
	s.mu.Unlock()
	return Apply(base, filters)
}

// Close cancels any fetch in flight. A session that was fetching settles
// on Ready with the last accepted base set.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.generation++
	if s.state == Fetching {
		s.state = Ready
	}
}

func (s *Session) permittedLocked() bool {
	return s.state == Fetching || s.state == Ready
}

func (s *Session) fetchLocked(parent context.Context) <-chan struct{} {
	if s.cancel != nil {
		s.cancel()
	}
	s.generation++
	gen := s.generation
	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel
	s.state = Fetching

	q := models.SearchQuery{Latitude: s.point.Latitude, Longitude: s.point.Longitude, RadiusKm: s.radiusKm}
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer cancel()
		response, err := s.api.Nearby(ctx, q)
		s.apply(gen, q, response, err)
	}()
	return done
}

func (s *Session) apply(gen uint64, q models.SearchQuery, response *models.NearbyResponse, err error) {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		s.logger.Debug().Uint64("generation", gen).Msg("dropping superseded nearby response")
		return
	}
	s.cancel = nil
	s.state = Ready

	if err != nil {
		s.base = []restaurant.Result{}
		s.mu.Unlock()
		s.logger.Warn().Err(err).Float64("lat", q.Latitude).Float64("lon", q.Longitude).Msg("nearby fetch failed")
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			s.onAlert(err.Error())
		}
		return
	}

	base := []restaurant.Result{}
	if response != nil && response.Data.Restaurants != nil {
		base = response.Data.Restaurants
	}
	s.base = base
	s.mu.Unlock()
}

func closed() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
