package command

import (
	"context"
	"fmt"

	"github.com/kauelucena/barberhub/internal/catalog/domain"
)

// CreateServiceCommand represents the command to create a service
type CreateServiceCommand struct {
	Name         string
	Description  string
	Price        domain.Price
	BarberShopID string
}

// CreateServiceHandler handles service creation. Creation has no
// degraded path: every failure is surfaced to the owner.
type CreateServiceHandler struct {
	gateway domain.Gateway
}

// NewCreateServiceHandler creates a new create service handler
func NewCreateServiceHandler(gateway domain.Gateway) *CreateServiceHandler {
	return &CreateServiceHandler{gateway: gateway}
}

// Handle executes the create service command
func (h *CreateServiceHandler) Handle(ctx context.Context, cmd CreateServiceCommand) (*domain.Service, error) {
	input := domain.ServiceInput{
		Name:         cmd.Name,
		Description:  cmd.Description,
		Price:        cmd.Price,
		BarberShopID: cmd.BarberShopID,
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := h.gateway.Create(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return created, nil
}
