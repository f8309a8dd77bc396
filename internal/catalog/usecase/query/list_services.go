package query

import (
	"context"
	"fmt"

	"github.com/kauelucena/barberhub/internal/catalog/domain"
)

// ListServicesQuery represents the query to list one shop's services
type ListServicesQuery struct {
	BarberShopID string
}

// ListServicesHandler handles the list services query
type ListServicesHandler struct {
	gateway domain.Gateway
}

// NewListServicesHandler creates a new list services handler
func NewListServicesHandler(gateway domain.Gateway) *ListServicesHandler {
	return &ListServicesHandler{gateway: gateway}
}

// Handle executes the list services query
func (h *ListServicesHandler) Handle(ctx context.Context, q ListServicesQuery) ([]domain.Service, error) {
	if q.BarberShopID == "" {
		return nil, fmt.Errorf("barberShopId is required")
	}

	services, err := h.gateway.ListByShop(ctx, q.BarberShopID)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	if services == nil {
		services = []domain.Service{}
	}
	return services, nil
}
