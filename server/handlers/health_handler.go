package handlers

import (
	"fmt"
	"net/http"
	"time"

	"nearby-restaurants/apperrors"
	"nearby-restaurants/models"
)

const (
	API_NAME    = "Restaurant Finder API"
	API_VERSION = "1.0.0"
)

// SystemHandler serves the non-resource routes: health, API index and the
// JSON fallbacks for unknown routes and methods.
type SystemHandler struct {
	env       string
	apiPrefix string
	now       func() time.Time
	responder *Responder
}

func NewSystemHandler(env, apiPrefix string, responder *Responder) *SystemHandler {
	return &SystemHandler{env: env, apiPrefix: apiPrefix, now: time.Now, responder: responder}
}

func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.responder.JSON(w, http.StatusOK, models.HealthResponse{
		Success:     true,
		Message:     "Server is running",
		Timestamp:   h.now().UTC().Format(time.RFC3339Nano),
		Environment: h.env,
	})
}

func (h *SystemHandler) Index(w http.ResponseWriter, r *http.Request) {
	base := h.apiPrefix + "/restaurants"
	h.responder.JSON(w, http.StatusOK, models.IndexResponse{
		Success: true,
		Message: API_NAME,
		Version: API_VERSION,
		Endpoints: models.IndexEndpoints{
			Health: "/health",
			Restaurants: models.RestaurantEndpoints{
				Nearby:   "GET " + base + "/nearby?latitude=&longitude=&radius=",
				All:      "GET " + base + "?page=&limit=",
				ByID:     "GET " + base + "/{id}",
				Cuisines: "GET " + base + "/cuisines",
			},
		},
	})
}

func (h *SystemHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.responder.Error(w, r, apperrors.NewNotFoundError(fmt.Sprintf("Route %s not found", r.URL.Path)))
}

func (h *SystemHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.responder.JSON(w, http.StatusMethodNotAllowed, models.ErrorResponse{
		Success: false,
		Status:  "fail",
		Message: fmt.Sprintf("Method %s not allowed on %s", r.Method, r.URL.Path),
	})
}
