package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"nearby-restaurants/logging"
	"nearby-restaurants/server/handlers"
)

// Options configures the HTTP server.
type Options struct {
	Addr            string
	AllowedOrigins  []string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration

	// RateLimit applies to RateLimit.Prefix; a zero Max disables it.
	RateLimit   RateLimitOptions
	RateCounter RateCounter
}

type RestaurantHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	responder *handlers.Responder
	opts      Options
	logger    zerolog.Logger

	once    sync.Once
	handler http.Handler
}

func NewRestaurantHttpServer(router *Router, muxRouter *mux.Router, responder *handlers.Responder, opts Options) *RestaurantHttpServer {
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}
	return &RestaurantHttpServer{
		router:    router,
		muxRouter: muxRouter,
		responder: responder,
		opts:      opts,
		logger:    logging.For("HttpServer"),
	}
}

// Handler registers the routes on first use and returns the router wrapped
// in the middleware chain.
func (s *RestaurantHttpServer) Handler() http.Handler {
	s.once.Do(func() {
		s.router.RegisterRoutes()
		s.handler = Chain(s.muxRouter,
			CORS(s.opts.AllowedOrigins),
			SecurityHeaders,
			RequestID,
			Logging(s.logger),
			Compression,
			Recover(s.responder),
			RateLimit(s.opts.RateCounter, s.opts.RateLimit, s.responder, s.logger),
			Timeout(s.opts.RequestTimeout),
		)
	})
	return s.handler
}

// Start serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts
// down gracefully. It returns the listen error if the server could not start.
func (s *RestaurantHttpServer) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.opts.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err, ok := <-serveErr:
		if ok {
			return errors.Wrap(err, "listen")
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down the server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "server forced to shutdown")
	}
	s.logger.Info().Msg("server exiting")
	return nil
}
