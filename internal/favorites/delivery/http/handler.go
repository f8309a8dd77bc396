package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kauelucena/barberhub/internal/favorites/domain"
	"github.com/kauelucena/barberhub/internal/favorites/usecase/command"
	"github.com/kauelucena/barberhub/internal/favorites/usecase/query"
	"github.com/kauelucena/barberhub/pkg/logger"
)

// FavoriteHandler handles HTTP requests for the favorite set
type FavoriteHandler struct {
	toggleHandler *command.ToggleFavoriteHandler
	listHandler   *query.ListFavoritesHandler
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(repo domain.Repository) *FavoriteHandler {
	return &FavoriteHandler{
		toggleHandler: command.NewToggleFavoriteHandler(repo),
		listHandler:   query.NewListFavoritesHandler(repo),
	}
}

// Response is the standard JSON envelope
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RegisterRoutes registers favorite routes
func (h *FavoriteHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/favorites", h.List).Methods("GET")
	router.HandleFunc("/api/favorites/{id}/toggle", h.Toggle).Methods("POST")
}

// List handles GET /api/favorites
// @Summary Favorited shop ids
// @Tags Favorites
// @Produce json
// @Router /api/favorites [get]
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, err := h.listHandler.Handle(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list favorites")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list favorites"})
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: ids})
}

// Toggle handles POST /api/favorites/{id}/toggle
// @Summary Toggle a shop's favorite state
// @Tags Favorites
// @Produce json
// @Router /api/favorites/{id}/toggle [post]
func (h *FavoriteHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	shopID := mux.Vars(r)["id"]

	result, err := h.toggleHandler.Handle(r.Context(), command.ToggleFavoriteCommand{ShopID: shopID})
	if err != nil {
		logger.Error(r.Context()).Err(err).Str("shop_id", shopID).Msg("Failed to toggle favorite")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to toggle favorite"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: result})
}

func respondJSON(w http.ResponseWriter, status int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
