package command

import (
	"context"
	"fmt"

	"github.com/kauelucena/barberhub/internal/catalog/domain"
	"github.com/kauelucena/barberhub/pkg/apierror"
	"github.com/kauelucena/barberhub/pkg/logger"
)

const deleteCaveat = "Serviço removido localmente. A remoção será sincronizada quando o servidor estiver acessível."

// DeleteServiceCommand represents the command to delete a service
type DeleteServiceCommand struct {
	ID           string
	BarberShopID string
}

// DeleteServiceResult reports the outcome of a delete, carrying the
// degraded flag when the removal was applied only locally
type DeleteServiceResult struct {
	ID       string `json:"id"`
	Degraded bool   `json:"degraded"`
	Caveat   string `json:"caveat,omitempty"`
}

// DeleteServiceHandler handles service deletion with the same CORS
// degradation policy as updates
type DeleteServiceHandler struct {
	gateway domain.Gateway
}

// NewDeleteServiceHandler creates a new delete service handler
func NewDeleteServiceHandler(gateway domain.Gateway) *DeleteServiceHandler {
	return &DeleteServiceHandler{gateway: gateway}
}

// Handle executes the delete service command
func (h *DeleteServiceHandler) Handle(ctx context.Context, cmd DeleteServiceCommand) (*DeleteServiceResult, error) {
	if cmd.ID == "" {
		return nil, fmt.Errorf("service id is required")
	}
	if cmd.BarberShopID == "" {
		return nil, fmt.Errorf("barberShopId is required")
	}

	if err := h.gateway.Delete(ctx, cmd.ID, cmd.BarberShopID); err != nil {
		if apierror.IsCORS(err) {
			logger.Warn(ctx).Err(err).Str("service_id", cmd.ID).Msg("Delete blocked by CORS policy, applying local removal")
			return &DeleteServiceResult{ID: cmd.ID, Degraded: true, Caveat: deleteCaveat}, nil
		}
		return nil, fmt.Errorf("failed to delete service: %w", err)
	}

	return &DeleteServiceResult{ID: cmd.ID}, nil
}
