package di

import (
	"context"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"

	"nearby-restaurants/config"
	"nearby-restaurants/dao"
	daomongo "nearby-restaurants/dao/mongo"
	daoredis "nearby-restaurants/dao/redis"
	"nearby-restaurants/db"
	"nearby-restaurants/server"
	"nearby-restaurants/server/handlers"
	services "nearby-restaurants/service"
)

// Container holds all application dependencies.
type Container struct {
	Config            *config.Config
	RedisClient       db.RedisClient
	MongoDatabase     *mongo.Database
	RestaurantDao     dao.RestaurantDAO
	RestaurantService *services.RestaurantService
	SeederService     *services.SeederService
	Responder         *handlers.Responder
	RestaurantHandler *handlers.RestaurantHandler
	SystemHandler     *handlers.SystemHandler
	MuxRouter         *mux.Router
	Router            *server.Router
	HttpServer        *server.RestaurantHttpServer
}

// NewContainer connects to the configured store and wires up all dependencies.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	log.Info().Str("env", cfg.Env).Str("backend", cfg.Backend).Msg("initializing container")

	switch cfg.Backend {
	case config.BackendMongo:
		database, err := db.ConnectMongo(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			return nil, err
		}
		c := NewContainerWithDAO(cfg, daomongo.NewMongoRestaurantDAO(database))
		c.MongoDatabase = database
		return c, nil

	default:
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		redisClient, err := db.NewGeoRedisClient(ctx, redisInternalClient)
		if err != nil {
			_ = redisInternalClient.Close()
			return nil, err
		}
		c := newContainer(cfg, daoredis.NewRedisRestaurantDAO(redisClient), redisClient)
		c.RedisClient = redisClient
		return c, nil
	}
}

// NewContainerWithDAO wires everything above the store layer around an
// existing DAO. API rate limits are counted in process.
func NewContainerWithDAO(cfg *config.Config, restaurantDao dao.RestaurantDAO) *Container {
	return newContainer(cfg, restaurantDao, nil)
}

func newContainer(cfg *config.Config, restaurantDao dao.RestaurantDAO, rateCounter server.RateCounter) *Container {
	restaurantService := services.NewRestaurantService(restaurantDao, cfg.Location)
	seederService := services.NewSeederService(restaurantDao)

	responder := handlers.NewResponder(cfg.IsDevelopment())
	restaurantHandler := handlers.NewRestaurantHandler(restaurantService, responder)
	systemHandler := handlers.NewSystemHandler(cfg.Env, cfg.APIPrefix, responder)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(restaurantHandler, systemHandler, muxRouter, cfg.APIPrefix)
	httpServer := server.NewRestaurantHttpServer(router, muxRouter, responder, server.Options{
		Addr:            cfg.Addr(),
		AllowedOrigins:  cfg.AllowedOrigins,
		RequestTimeout:  cfg.RequestTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
		RateLimit: server.RateLimitOptions{
			Prefix: cfg.APIPrefix,
			Window: cfg.RateLimitWindow,
			Max:    cfg.RateLimitMax,
		},
		RateCounter: rateCounter,
	})

	return &Container{
		Config:            cfg,
		RestaurantDao:     restaurantDao,
		RestaurantService: restaurantService,
		SeederService:     seederService,
		Responder:         responder,
		RestaurantHandler: restaurantHandler,
		SystemHandler:     systemHandler,
		MuxRouter:         muxRouter,
		Router:            router,
		HttpServer:        httpServer,
	}
}

// Close releases the store connections.
func (c *Container) Close(ctx context.Context) error {
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			return errors.Wrap(err, "close redis")
		}
	}
	if c.MongoDatabase != nil {
		if err := c.MongoDatabase.Client().Disconnect(ctx); err != nil {
			return errors.Wrap(err, "disconnect mongo")
		}
	}
	return nil
}
