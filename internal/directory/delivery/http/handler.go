package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	citydomain "github.com/kauelucena/barberhub/internal/city/domain"
	"github.com/kauelucena/barberhub/internal/directory/domain"
	"github.com/kauelucena/barberhub/internal/directory/usecase/query"
	favdomain "github.com/kauelucena/barberhub/internal/favorites/domain"
	"github.com/kauelucena/barberhub/pkg/logger"
)

// DirectoryHandler handles HTTP requests for shop discovery
type DirectoryHandler struct {
	client        domain.Client
	viewsHandler  *query.DeriveViewsHandler
	citiesHandler *query.AvailableCitiesHandler

	favorites favdomain.Repository
	cityPrefs citydomain.PreferenceRepository

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(
	client domain.Client,
	favorites favdomain.Repository,
	cityPrefs citydomain.PreferenceRepository,
) *DirectoryHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barberhub_directory_requests_total",
			Help: "Total number of shop discovery requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "barberhub_directory_request_duration_seconds",
			Help:    "Duration of shop discovery requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &DirectoryHandler{
		client:         client,
		viewsHandler:   query.NewDeriveViewsHandler(),
		citiesHandler:  query.NewAvailableCitiesHandler(),
		favorites:      favorites,
		cityPrefs:      cityPrefs,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
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

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *DirectoryHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers discovery routes
func (h *DirectoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/shops", h.metricsMiddleware("/api/shops", h.GetShops)).Methods("GET")
	router.HandleFunc("/api/cities", h.metricsMiddleware("/api/cities", h.GetCities)).Methods("GET")
}

// GetShops handles GET /api/shops. It assembles the discovery screen:
// the full shop list plus the derived favorite, in-city, top-rated and
// search views scoped to the persisted active city. The search text is
// taken from the query string, mirroring the original URL-seeded search.
// @Summary Shop discovery views
// @Tags Shops
// @Produce json
// @Param search query string false "Free-text search"
// @Router /api/shops [get]
func (h *DirectoryHandler) GetShops(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// The fetch is request-scoped: navigating away cancels the context
	// and a superseded response can never patch later state.
	shops, err := h.client.FetchBarberShops(ctx)
	if err != nil {
		// Terminal for this screen: no city can be resolved without the list
		respondJSON(w, http.StatusBadGateway, Response{
			Success:   false,
			Error:     "Erro ao carregar as barbearias. Tente novamente.",
			Retryable: true,
		})
		return
	}

	favorites, err := h.favorites.Load(ctx)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to load favorites, rendering without them")
		favorites = favdomain.NewSet()
	}

	city, err := h.cityPrefs.Load(ctx)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to load active city, rendering without one")
		city = ""
	}

	views := h.viewsHandler.Handle(query.DeriveViewsQuery{
		Shops:     shops,
		Favorites: favorites,
		City:      city,
		Search:    r.URL.Query().Get("search"),
	})

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"shops": shops,
			"views": views,
			"city":  city,
			"total": len(shops),
		},
	})
}

// GetCities handles GET /api/cities
// @Summary Distinct cities served by the directory
// @Tags Shops
// @Produce json
// @Router /api/cities [get]
func (h *DirectoryHandler) GetCities(w http.ResponseWriter, r *http.Request) {
	shops, err := h.client.FetchBarberShops(r.Context())
	if err != nil {
		respondJSON(w, http.StatusBadGateway, Response{
			Success:   false,
			Error:     "Erro ao carregar as cidades disponíveis. Tente novamente.",
			Retryable: true,
		})
		return
	}

	cities := h.citiesHandler.Handle(query.AvailableCitiesQuery{Shops: shops})
	respondJSON(w, http.StatusOK, Response{Success: true, Data: cities})
}

func respondJSON(w http.ResponseWriter, status int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
