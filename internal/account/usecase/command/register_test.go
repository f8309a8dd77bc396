package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kauelucena/barberhub/internal/account/domain"
)

type stubAccountClient struct {
	loginShop  *domain.BarberShop
	loginErr   error
	registered *domain.RegisterInput
}

func (c *stubAccountClient) Login(ctx context.Context, creds domain.Credentials) (*domain.BarberShop, error) {
	return c.loginShop, c.loginErr
}

func (c *stubAccountClient) Register(ctx context.Context, input domain.RegisterInput) (*domain.BarberShop, error) {
	c.registered = &input
	return &domain.BarberShop{ID: "shop-1", Name: input.Name, Email: input.Email}, nil
}

type stubPostal struct {
	address *domain.PostalAddress
	err     error
	calls   int
}

func (p *stubPostal) Lookup(ctx context.Context, cep string) (*domain.PostalAddress, error) {
	p.calls++
	return p.address, p.err
}

func baseInput() domain.RegisterInput {
	return domain.RegisterInput{
		Name:        "Barbearia Central",
		Email:       "contato@central.com",
		Password:    "s3nh@",
		ServiceArea: "Barbearia Central",
		PostalCode:  "13010-000",
		Number:      "120",
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingAddressAutoFilledFromCEP", func(t *testing.T) {
		client := &stubAccountClient{}
		postal := &stubPostal{address: &domain.PostalAddress{
			State: "SP", City: "Campinas", Neighborhood: "Centro", Street: "Rua Regente Feijó",
		}}
		handler := NewRegisterHandler(client, postal)

		shop, err := handler.Handle(ctx, RegisterCommand{Input: baseInput()})
		require.NoError(t, err)
		assert.Equal(t, "shop-1", shop.ID)

		require.NotNil(t, client.registered)
		assert.Equal(t, "SP", client.registered.State)
		assert.Equal(t, "Campinas", client.registered.City)
		assert.Equal(t, "Centro", client.registered.Neighborhood)
		assert.Equal(t, "Rua Regente Feijó", client.registered.Street)
	})

	t.Run("ProvidedAddressFieldsNotOverwritten", func(t *testing.T) {
		client := &stubAccountClient{}
		postal := &stubPostal{address: &domain.PostalAddress{
			State: "SP", City: "Campinas", Neighborhood: "Centro", Street: "Rua Regente Feijó",
		}}
		handler := NewRegisterHandler(client, postal)

		input := baseInput()
		input.City = "Valinhos"
		_, err := handler.Handle(ctx, RegisterCommand{Input: input})
		require.NoError(t, err)

		assert.Equal(t, "Valinhos", client.registered.City, "user-entered value wins")
		assert.Equal(t, "SP", client.registered.State)
	})

	t.Run("CompleteAddressSkipsLookup", func(t *testing.T) {
		client := &stubAccountClient{}
		postal := &stubPostal{}
		handler := NewRegisterHandler(client, postal)

		input := baseInput()
		input.State = "SP"
		input.City = "Campinas"
		input.Neighborhood = "Centro"
		input.Street = "Rua Regente Feijó"
		_, err := handler.Handle(ctx, RegisterCommand{Input: input})
		require.NoError(t, err)

		assert.Zero(t, postal.calls)
	})

	t.Run("FailedLookupIsNonFatal", func(t *testing.T) {
		client := &stubAccountClient{}
		postal := &stubPostal{err: errors.New("viacep down")}
		handler := NewRegisterHandler(client, postal)

		// Address still incomplete after the failed lookup, so
		// validation rejects the input. The lookup failure itself
		// does not abort the flow.
		_, err := handler.Handle(ctx, RegisterCommand{Input: baseInput()})
		require.Error(t, err)
		assert.NotContains(t, err.Error(), "viacep down")
	})

	t.Run("MissingRequiredFieldRejected", func(t *testing.T) {
		handler := NewRegisterHandler(&stubAccountClient{}, &stubPostal{})

		input := baseInput()
		input.Email = ""
		input.State = "SP"
		input.City = "Campinas"
		input.Neighborhood = "Centro"
		input.Street = "Rua X"
		_, err := handler.Handle(ctx, RegisterCommand{Input: input})
		require.Error(t, err)
	})
}
