package command

import (
	"context"

	"github.com/kauelucena/barberhub/internal/account/domain"
	"github.com/kauelucena/barberhub/pkg/logger"
)

// RegisterCommand represents the command to create a shop account
type RegisterCommand struct {
	Input domain.RegisterInput
}

// RegisterHandler handles shop account registration. Missing address
// fields are auto-filled from the postal-code lookup before validation;
// a failed lookup is non-fatal and the form proceeds unfilled.
type RegisterHandler struct {
	client domain.Client
	postal domain.PostalLookup
}

// NewRegisterHandler creates a new register handler
func NewRegisterHandler(client domain.Client, postal domain.PostalLookup) *RegisterHandler {
	return &RegisterHandler{client: client, postal: postal}
}

// Handle executes the register command
func (h *RegisterHandler) Handle(ctx context.Context, cmd RegisterCommand) (*domain.BarberShop, error) {
	input := cmd.Input

	if input.PostalCode != "" && (input.State == "" || input.City == "" || input.Neighborhood == "" || input.Street == "") {
		address, err := h.postal.Lookup(ctx, input.PostalCode)
		if err != nil {
			logger.Warn(ctx).Err(err).Str("cep", input.PostalCode).Msg("Postal lookup failed, proceeding without auto-fill")
		} else {
			if input.State == "" {
				input.State = address.State
			}
			if input.City == "" {
				input.City = address.City
			}
			if input.Neighborhood == "" {
				input.Neighborhood = address.Neighborhood
			}
			if input.Street == "" {
				input.Street = address.Street
			}
		}
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := h.client.Register(ctx, input)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx).Str("shop_id", created.ID).Msg("Shop account registered")
	return created, nil
}
