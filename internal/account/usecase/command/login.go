package command

import (
	"context"
	"fmt"

	"github.com/kauelucena/barberhub/internal/account/domain"
	"github.com/kauelucena/barberhub/pkg/logger"
	"github.com/kauelucena/barberhub/pkg/session"
)

// LoginCommand represents the command to log a shop account in
type LoginCommand struct {
	Email    string
	Password string
}

// LoginResult carries the session token and the shop account blob
type LoginResult struct {
	Token      string             `json:"token"`
	BarberShop *domain.BarberShop `json:"barberShop"`
}

// LoginHandler handles shop account login. Credentials are proxied to
// the backend; only the returned account blob is persisted locally.
type LoginHandler struct {
	client   domain.Client
	sessions domain.SessionRepository
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(client domain.Client, sessions domain.SessionRepository) *LoginHandler {
	return &LoginHandler{client: client, sessions: sessions}
}

// Handle executes the login command
func (h *LoginHandler) Handle(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if cmd.Password == "" {
		return nil, fmt.Errorf("senha is required")
	}

	shop, err := h.client.Login(ctx, domain.Credentials{Email: cmd.Email, Password: cmd.Password})
	if err != nil {
		return nil, err
	}

	if err := h.sessions.Save(ctx, shop); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	token, err := session.GenerateToken(shop.ID, shop.Email)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx).Str("shop_id", shop.ID).Msg("Shop account logged in")
	return &LoginResult{Token: token, BarberShop: shop}, nil
}
