package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kauelucena/barberhub/internal/city/domain"
	"github.com/kauelucena/barberhub/internal/city/usecase/command"
	cityquery "github.com/kauelucena/barberhub/internal/city/usecase/query"
	dirdomain "github.com/kauelucena/barberhub/internal/directory/domain"
	dirquery "github.com/kauelucena/barberhub/internal/directory/usecase/query"
	"github.com/kauelucena/barberhub/pkg/logger"
)

// CityHandler handles HTTP requests for active city resolution
type CityHandler struct {
	resolveHandler *command.ResolveCityHandler
	selectHandler  *command.SelectCityHandler
	clearHandler   *command.ClearCityHandler
	activeHandler  *cityquery.ActiveCityHandler

	directory     dirdomain.Client
	citiesHandler *dirquery.AvailableCitiesHandler
}

// NewCityHandler creates a new city handler
func NewCityHandler(
	prefs domain.PreferenceRepository,
	geocoder domain.ReverseGeocoder,
	directory dirdomain.Client,
) *CityHandler {
	return &CityHandler{
		resolveHandler: command.NewResolveCityHandler(prefs, geocoder),
		selectHandler:  command.NewSelectCityHandler(prefs),
		clearHandler:   command.NewClearCityHandler(prefs),
		activeHandler:  cityquery.NewActiveCityHandler(prefs),
		directory:      directory,
		citiesHandler:  dirquery.NewAvailableCitiesHandler(),
	}
}

// Response is the standard JSON envelope
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Retryable bool        `json:"retryable,omitempty"`
}

// RegisterRoutes registers city routes
func (h *CityHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/city", h.GetActive).Methods("GET")
	router.HandleFunc("/api/city/resolve", h.Resolve).Methods("POST")
	router.HandleFunc("/api/city", h.Select).Methods("PUT")
	router.HandleFunc("/api/city", h.Clear).Methods("DELETE")
}

// GetActive handles GET /api/city
// @Summary Current active city
// @Tags City
// @Produce json
// @Router /api/city [get]
func (h *CityHandler) GetActive(w http.ResponseWriter, r *http.Request) {
	city, err := h.activeHandler.Handle(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to read active city")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to read active city"})
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: map[string]string{"city": city}})
}

// Resolve handles POST /api/city/resolve. The body carries the device
// coordinates when geolocation succeeded client-side; a null body means
// the device denied or failed geolocation and resolution degrades to
// manual selection immediately.
// @Summary Resolve the active city
// @Tags City
// @Accept json
// @Produce json
// @Router /api/city/resolve [post]
func (h *CityHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Coordinates *domain.Coordinates `json:"coordinates"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
			return
		}
	}

	cities, ok := h.availableCities(w, r)
	if !ok {
		return
	}

	resolution, err := h.resolveHandler.Handle(r.Context(), command.ResolveCityCommand{
		Coordinates:     req.Coordinates,
		AvailableCities: cities,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("City resolution failed")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to resolve city"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: resolution})
}

// Select handles PUT /api/city. A manual selection overrides any
// persisted value; the client resets its active search afterwards.
// @Summary Select the active city manually
// @Tags City
// @Accept json
// @Produce json
// @Router /api/city [put]
func (h *CityHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req struct {
		City string `json:"city"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	cities, ok := h.availableCities(w, r)
	if !ok {
		return
	}

	resolution, err := h.selectHandler.Handle(r.Context(), command.SelectCityCommand{
		City:            req.City,
		AvailableCities: cities,
	})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: resolution})
}

// Clear handles DELETE /api/city
// @Summary Clear the active city
// @Tags City
// @Router /api/city [delete]
func (h *CityHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.clearHandler.Handle(r.Context()); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to clear active city")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to clear active city"})
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Active city cleared"})
}

// availableCities fetches the directory and derives the served cities.
// A directory failure is terminal for resolution and reported as a
// retryable banner.
func (h *CityHandler) availableCities(w http.ResponseWriter, r *http.Request) ([]string, bool) {
	shops, err := h.directory.FetchBarberShops(r.Context())
	if err != nil {
		respondJSON(w, http.StatusBadGateway, Response{
			Success:   false,
			Error:     "Erro ao carregar as barbearias. Tente novamente.",
			Retryable: true,
		})
		return nil, false
	}
	return h.citiesHandler.Handle(dirquery.AvailableCitiesQuery{Shops: shops}), true
}

func respondJSON(w http.ResponseWriter, status int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
