package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kauelucena/barberhub/internal/account/domain"
	"github.com/kauelucena/barberhub/internal/account/usecase/command"
	"github.com/kauelucena/barberhub/pkg/apierror"
	"github.com/kauelucena/barberhub/pkg/logger"
)

// AccountHandler handles HTTP requests for shop account auth and registration
type AccountHandler struct {
	loginHandler    *command.LoginHandler
	logoutHandler   *command.LogoutHandler
	registerHandler *command.RegisterHandler

	sessions domain.SessionRepository
	postal   domain.PostalLookup
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(
	client domain.Client,
	sessions domain.SessionRepository,
	postal domain.PostalLookup,
) *AccountHandler {
	return &AccountHandler{
		loginHandler:    command.NewLoginHandler(client, sessions),
		logoutHandler:   command.NewLogoutHandler(sessions),
		registerHandler: command.NewRegisterHandler(client, postal),
		sessions:        sessions,
		postal:          postal,
	}
}

// Response is the standard JSON envelope
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RegisterRoutes registers account routes
func (h *AccountHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/auth/login", h.Login).Methods("POST")
	router.HandleFunc("/api/auth/register", h.Register).Methods("POST")
	router.HandleFunc("/api/auth/logout", SessionMiddleware(h.sessions)(h.Logout)).Methods("POST")
	router.HandleFunc("/api/auth/me", SessionMiddleware(h.sessions)(h.Me)).Methods("GET")
	router.HandleFunc("/api/postal/{cep}", h.LookupPostal).Methods("GET")
}

// Login handles POST /api/auth/login
// @Summary Shop account login
// @Tags Auth
// @Accept json
// @Produce json
// @Router /api/auth/login [post]
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"senha"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	result, err := h.loginHandler.Handle(r.Context(), command.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		status := statusFor(err, http.StatusUnauthorized)
		respondJSON(w, status, Response{Success: false, Error: "Email ou senha inválidos"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: result})
}

// Logout handles POST /api/auth/logout
// @Summary Shop account logout
// @Tags Auth
// @Security BearerAuth
// @Router /api/auth/logout [post]
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	shop, ok := ShopFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Not authenticated"})
		return
	}

	if err := h.logoutHandler.Handle(r.Context(), shop.ID); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to logout")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to logout"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Logged out"})
}

// Me handles GET /api/auth/me
// @Summary Current shop account
// @Tags Auth
// @Security BearerAuth
// @Router /api/auth/me [get]
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	shop, ok := ShopFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Not authenticated"})
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: shop})
}

// Register handles POST /api/auth/register
// @Summary Register a shop account
// @Tags Auth
// @Accept json
// @Produce json
// @Router /api/auth/register [post]
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input domain.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	created, err := h.registerHandler.Handle(r.Context(), command.RegisterCommand{Input: input})
	if err != nil {
		if status, ok := apierror.StatusCode(err); ok {
			switch status {
			case http.StatusConflict:
				respondJSON(w, http.StatusConflict, Response{Success: false, Error: "Email já cadastrado. Tente com outro email."})
			case http.StatusBadRequest:
				respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Dados inválidos. Verifique os campos preenchidos."})
			default:
				respondJSON(w, status, Response{Success: false, Error: "Erro ao cadastrar barbearia. Tente novamente."})
			}
			return
		}
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Barbearia cadastrada com sucesso!",
		Data:    created,
	})
}

// LookupPostal handles GET /api/postal/{cep}
// @Summary Resolve address fields from a CEP
// @Tags Auth
// @Produce json
// @Router /api/postal/{cep} [get]
func (h *AccountHandler) LookupPostal(w http.ResponseWriter, r *http.Request) {
	cep := mux.Vars(r)["cep"]

	address, err := h.postal.Lookup(r.Context(), cep)
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "CEP não encontrado"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: address})
}

// statusFor maps a classified backend error to a response status,
// falling back when the failure was not an HTTP status
func statusFor(err error, fallback int) int {
	if status, ok := apierror.StatusCode(err); ok {
		return status
	}
	return fallback
}

func respondJSON(w http.ResponseWriter, status int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
