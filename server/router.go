package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RestaurantRoutes is implemented by handlers.RestaurantHandler.
type RestaurantRoutes interface {
	GetNearby(w http.ResponseWriter, r *http.Request)
	GetCuisines(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
}

// SystemRoutes is implemented by handlers.SystemHandler.
type SystemRoutes interface {
	Health(w http.ResponseWriter, r *http.Request)
	Index(w http.ResponseWriter, r *http.Request)
	NotFound(w http.ResponseWriter, r *http.Request)
	MethodNotAllowed(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	restaurantHandler RestaurantRoutes
	systemHandler     SystemRoutes
	router            *mux.Router
	apiPrefix         string
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	restaurantHandler RestaurantRoutes,
	systemHandler SystemRoutes,
	router *mux.Router,
	apiPrefix string) *Router {
	return &Router{
		restaurantHandler: restaurantHandler,
		systemHandler:     systemHandler,
		router:            router,
		apiPrefix:         apiPrefix,
	}
}

func (r *Router) RegisterRoutes() {
	base := r.apiPrefix + "/restaurants"

	// fixed paths first so they are not captured by {id}
	// expects ?latitude={float}&longitude={float}[&radius=&cuisine=&priceRange=&minRating=&limit=&skip=]
	r.router.HandleFunc(base+"/nearby", r.restaurantHandler.GetNearby).Methods(http.MethodGet)
	r.router.HandleFunc(base+"/cuisines", r.restaurantHandler.GetCuisines).Methods(http.MethodGet)
	r.router.HandleFunc(base, r.restaurantHandler.ListAll).Methods(http.MethodGet)
	r.router.HandleFunc(base+"/{id}", r.restaurantHandler.GetByID).Methods(http.MethodGet)

	r.router.HandleFunc("/health", r.systemHandler.Health).Methods(http.MethodGet)
	r.router.HandleFunc("/", r.systemHandler.Index).Methods(http.MethodGet)

	r.router.NotFoundHandler = http.HandlerFunc(r.systemHandler.NotFound)
	r.router.MethodNotAllowedHandler = http.HandlerFunc(r.systemHandler.MethodNotAllowed)
}
