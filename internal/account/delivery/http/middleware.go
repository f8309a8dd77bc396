package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/kauelucena/barberhub/internal/account/domain"
	"github.com/kauelucena/barberhub/pkg/logger"
	"github.com/kauelucena/barberhub/pkg/session"
)

type contextKey string

// ShopKey holds the authenticated shop account in the request context
const ShopKey contextKey = "barber_shop"

// ShopFromContext extracts the authenticated shop account
func ShopFromContext(ctx context.Context) (*domain.BarberShop, bool) {
	shop, ok := ctx.Value(ShopKey).(*domain.BarberShop)
	return shop, ok
}

// SessionMiddleware validates the session token and loads the persisted
// shop account blob into the request context
func SessionMiddleware(sessions domain.SessionRepository) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn(r.Context()).Msg("Missing authorization header")
				respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Authorization header required"})
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				logger.Warn(r.Context()).Msg("Invalid authorization header format")
				respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Invalid authorization header format"})
				return
			}

			claims, err := session.ValidateToken(parts[1])
			if err != nil {
				logger.Warn(r.Context()).Err(err).Msg("Invalid session token")
				respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Invalid session token"})
				return
			}

			shop, err := sessions.Load(r.Context(), claims.ShopID)
			if err != nil {
				logger.Warn(r.Context()).Err(err).Str("shop_id", claims.ShopID).Msg("Session blob not found")
				respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Session expired, please login again"})
				return
			}

			ctx := context.WithValue(r.Context(), ShopKey, shop)
			next(w, r.WithContext(ctx))
		}
	}
}
