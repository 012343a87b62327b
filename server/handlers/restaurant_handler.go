package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"nearby-restaurants/logging"
	"nearby-restaurants/models"
	"nearby-restaurants/models/restaurant"
	services "nearby-restaurants/service"
)

// RestaurantService is the part of services.RestaurantService the handlers use.
type RestaurantService interface {
	FindNearby(ctx context.Context, q models.SearchQuery) ([]restaurant.Result, error)
	GetByID(ctx context.Context, id string) (*restaurant.Detail, error)
	ListAll(ctx context.Context, q models.ListQuery) ([]restaurant.Restaurant, models.Pagination, error)
	ListCuisines(ctx context.Context) ([]restaurant.Cuisine, error)
}

var _ RestaurantService = (*services.RestaurantService)(nil)

type RestaurantHandler struct {
	service   RestaurantService
	responder *Responder
	logger    zerolog.Logger
}

func NewRestaurantHandler(service RestaurantService, responder *Responder) *RestaurantHandler {
	return &RestaurantHandler{
		service:   service,
		responder: responder,
		logger:    logging.For("RestaurantHandler"),
	}
}

// GetNearby handles GET /restaurants/nearby.
func (h *RestaurantHandler) GetNearby(w http.ResponseWriter, r *http.Request) {
	// 1) Parse and validate query args
	q, err := ParseSearchQuery(r.URL.Query())
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	// 2) Query the store
	results, err := h.service.FindNearby(r.Context(), q)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.logger.Debug().
		Float64("lat", q.Latitude).Float64("lon", q.Longitude).
		Int("count", len(results)).
		Msg("nearby restaurants served")

	// 3) Write JSON
	h.responder.JSON(w, http.StatusOK, models.NearbyResponse{
		Success: true,
		Count:   len(results),
		Data: models.NearbyData{
			Restaurants:  results,
			SearchParams: models.NewSearchParams(q),
		},
	})
}

// GetByID handles GET /restaurants/{id}. The service rejects malformed ids
// with a validation error.
func (h *RestaurantHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	detail, err := h.service.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.JSON(w, http.StatusOK, models.DetailResponse{
		Success: true,
		Data:    models.DetailData{Restaurant: *detail},
	})
}

// ListAll handles GET /restaurants.
func (h *RestaurantHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	q, err := ParseListQuery(r.URL.Query())
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	items, pagination, err := h.service.ListAll(r.Context(), q)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.JSON(w, http.StatusOK, models.ListResponse{
		Success:    true,
		Count:      len(items),
		Pagination: pagination,
		Data:       models.ListData{Restaurants: items},
	})
}

// GetCuisines handles GET /restaurants/cuisines.
func (h *RestaurantHandler) GetCuisines(w http.ResponseWriter, r *http.Request) {
	cuisines, err := h.service.ListCuisines(r.Context())
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.JSON(w, http.StatusOK, models.CuisinesResponse{
		Success: true,
		Count:   len(cuisines),
		Data:    models.CuisinesData{Cuisines: cuisines},
	})
}
