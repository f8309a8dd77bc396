package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	accounthttp "github.com/kauelucena/barberhub/internal/account/delivery/http"
	accountdomain "github.com/kauelucena/barberhub/internal/account/domain"
	"github.com/kauelucena/barberhub/internal/catalog/domain"
	"github.com/kauelucena/barberhub/internal/catalog/usecase/command"
	"github.com/kauelucena/barberhub/internal/catalog/usecase/query"
	"github.com/kauelucena/barberhub/pkg/apierror"
	"github.com/kauelucena/barberhub/pkg/logger"
)

// ServiceHandler handles HTTP requests for service management using CQRS pattern
type ServiceHandler struct {
	createHandler *command.CreateServiceHandler
	updateHandler *command.UpdateServiceHandler
	deleteHandler *command.DeleteServiceHandler
	listHandler   *query.ListServicesHandler

	sessions accountdomain.SessionRepository

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewServiceHandler creates a new service handler (manual DI)
func NewServiceHandler(gateway domain.Gateway, sessions accountdomain.SessionRepository) *ServiceHandler {
	return newServiceHandler(
		command.NewCreateServiceHandler(gateway),
		command.NewUpdateServiceHandler(gateway),
		command.NewDeleteServiceHandler(gateway),
		query.NewListServicesHandler(gateway),
		sessions,
	)
}

// NewServiceHandlerWithDI creates a new service handler using dependency injection.
// This is used by Wire for automatic dependency injection.
func NewServiceHandlerWithDI(
	createHandler *command.CreateServiceHandler,
	updateHandler *command.UpdateServiceHandler,
	deleteHandler *command.DeleteServiceHandler,
	listHandler *query.ListServicesHandler,
	sessions accountdomain.SessionRepository,
) *ServiceHandler {
	return newServiceHandler(createHandler, updateHandler, deleteHandler, listHandler, sessions)
}

func newServiceHandler(
	createHandler *command.CreateServiceHandler,
	updateHandler *command.UpdateServiceHandler,
	deleteHandler *command.DeleteServiceHandler,
	listHandler *query.ListServicesHandler,
	sessions accountdomain.SessionRepository,
) *ServiceHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barberhub_catalog_requests_total",
			Help: "Total number of service management requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "barberhub_catalog_request_duration_seconds",
			Help:    "Duration of service management requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &ServiceHandler{
		createHandler:  createHandler,
		updateHandler:  updateHandler,
		deleteHandler:  deleteHandler,
		listHandler:    listHandler,
		sessions:       sessions,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

// Response is the standard JSON envelope. Degraded marks a write that
// was applied only locally after a CORS-classified failure.
type Response struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message,omitempty"`
	Data     interface{} `json:"data,omitempty"`
	Error    string      `json:"error,omitempty"`
	Degraded bool        `json:"degraded,omitempty"`
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
func (h *ServiceHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers service routes
func (h *ServiceHandler) RegisterRoutes(router *mux.Router) {
	auth := accounthttp.SessionMiddleware(h.sessions)

	// Public route: service list shown on a shop's page
	router.HandleFunc("/api/shops/{shopID}/services", h.metricsMiddleware("/api/shops/{shopID}/services", h.ListServices)).Methods("GET")

	// Owner routes (session required)
	router.HandleFunc("/api/services", h.metricsMiddleware("/api/services", auth(h.CreateService))).Methods("POST")
	router.HandleFunc("/api/services/{id}", h.metricsMiddleware("/api/services/{id}", auth(h.UpdateService))).Methods("PUT")
	router.HandleFunc("/api/services/{id}", h.metricsMiddleware("/api/services/{id}", auth(h.DeleteService))).Methods("DELETE")
}

// ListServices handles GET /api/shops/{shopID}/services
// @Summary List a shop's services
// @Tags Services
// @Produce json
// @Param shopID path string true "Shop ID"
// @Router /api/shops/{shopID}/services [get]
func (h *ServiceHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	shopID := mux.Vars(r)["shopID"]

	services, err := h.listHandler.Handle(r.Context(), query.ListServicesQuery{BarberShopID: shopID})
	if err != nil {
		logger.Error(r.Context()).Err(err).Str("shop_id", shopID).Msg("Failed to list services")
		respondJSON(w, backendStatus(err, http.StatusBadGateway), Response{
			Success: false,
			Error:   "Erro ao carregar os serviços. Tente novamente.",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: services})
}

type serviceRequest struct {
	Name        string       `json:"nome"`
	Description string       `json:"descricao"`
	Price       domain.Price `json:"preco"`
}

// CreateService handles POST /api/services
// @Summary Create a service
// @Tags Services
// @Security BearerAuth
// @Accept json
// @Produce json
// @Router /api/services [post]
func (h *ServiceHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	shop, ok := accounthttp.ShopFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Not authenticated"})
		return
	}

	var req serviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	created, err := h.createHandler.Handle(r.Context(), command.CreateServiceCommand{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		BarberShopID: shop.ID,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create service")
		respondJSON(w, backendStatus(err, http.StatusBadRequest), Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Serviço criado com sucesso!",
		Data:    created,
	})
}

// UpdateService handles PUT /api/services/{id}
// @Summary Update a service
// @Tags Services
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Router /api/services/{id} [put]
func (h *ServiceHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	shop, ok := accounthttp.ShopFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Not authenticated"})
		return
	}

	var req serviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	result, err := h.updateHandler.Handle(r.Context(), command.UpdateServiceCommand{
		ID:           mux.Vars(r)["id"],
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		BarberShopID: shop.ID,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to update service")
		respondJSON(w, backendStatus(err, http.StatusBadRequest), Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success:  true,
		Message:  successOr(result.Caveat, "Serviço atualizado com sucesso!"),
		Data:     result.Service,
		Degraded: result.Degraded,
	})
}

// DeleteService handles DELETE /api/services/{id}
// @Summary Delete a service
// @Tags Services
// @Security BearerAuth
// @Produce json
// @Param id path string true "Service ID"
// @Router /api/services/{id} [delete]
func (h *ServiceHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	shop, ok := accounthttp.ShopFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Not authenticated"})
		return
	}

	result, err := h.deleteHandler.Handle(r.Context(), command.DeleteServiceCommand{
		ID:           mux.Vars(r)["id"],
		BarberShopID: shop.ID,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to delete service")
		respondJSON(w, backendStatus(err, http.StatusBadRequest), Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success:  true,
		Message:  successOr(result.Caveat, "Serviço removido com sucesso!"),
		Data:     result,
		Degraded: result.Degraded,
	})
}

// backendStatus surfaces the backend HTTP status verbatim when the
// failure carries one
func backendStatus(err error, fallback int) int {
	if status, ok := apierror.StatusCode(err); ok {
		return status
	}
	return fallback
}

func successOr(caveat, plain string) string {
	if caveat != "" {
		return caveat
	}
	return plain
}

func respondJSON(w http.ResponseWriter, status int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
