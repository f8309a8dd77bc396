package command

import (
	"context"
	"fmt"

	"github.com/kauelucena/barberhub/internal/account/domain"
	"github.com/kauelucena/barberhub/pkg/logger"
)

// LogoutHandler handles shop account logout
type LogoutHandler struct {
	sessions domain.SessionRepository
}

// NewLogoutHandler creates a new logout handler
func NewLogoutHandler(sessions domain.SessionRepository) *LogoutHandler {
	return &LogoutHandler{sessions: sessions}
}

// Handle removes the persisted session blob. The token itself is not
// revoked server-side; it simply stops resolving to a session.
func (h *LogoutHandler) Handle(ctx context.Context, shopID string) error {
	if shopID == "" {
		return fmt.Errorf("shop id is required")
	}
	if err := h.sessions.Delete(ctx, shopID); err != nil {
		return err
	}
	logger.Info(ctx).Str("shop_id", shopID).Msg("Shop account logged out")
	return nil
}
