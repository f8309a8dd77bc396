package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kauelucena/barberhub/internal/account/domain"
	"github.com/kauelucena/barberhub/internal/account/repository"
	"github.com/kauelucena/barberhub/pkg/session"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()
	session.Init("test-secret")

	shop := &domain.BarberShop{ID: "shop-1", Name: "Barbearia Central", Email: "contato@central.com"}

	t.Run("PersistsSessionAndIssuesToken", func(t *testing.T) {
		sessions := repository.NewMemorySessionRepository()
		handler := NewLoginHandler(&stubAccountClient{loginShop: shop}, sessions)

		result, err := handler.Handle(ctx, LoginCommand{Email: "contato@central.com", Password: "s3nh@"})
		require.NoError(t, err)

		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "shop-1", result.BarberShop.ID)

		claims, err := session.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, "shop-1", claims.ShopID)

		stored, err := sessions.Load(ctx, "shop-1")
		require.NoError(t, err)
		assert.Equal(t, shop.Email, stored.Email)
	})

	t.Run("BackendRejectionSurfaced", func(t *testing.T) {
		sessions := repository.NewMemorySessionRepository()
		handler := NewLoginHandler(&stubAccountClient{loginErr: errors.New("invalid credentials")}, sessions)

		_, err := handler.Handle(ctx, LoginCommand{Email: "a@b.com", Password: "x"})
		require.Error(t, err)

		_, err = sessions.Load(ctx, "shop-1")
		assert.Error(t, err, "nothing persisted on failed login")
	})

	t.Run("EmptyCredentialsRejected", func(t *testing.T) {
		handler := NewLoginHandler(&stubAccountClient{}, repository.NewMemorySessionRepository())

		_, err := handler.Handle(ctx, LoginCommand{Password: "x"})
		require.Error(t, err)

		_, err = handler.Handle(ctx, LoginCommand{Email: "a@b.com"})
		require.Error(t, err)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	sessions := repository.NewMemorySessionRepository()
	require.NoError(t, sessions.Save(ctx, &domain.BarberShop{ID: "shop-1"}))

	handler := NewLogoutHandler(sessions)
	require.NoError(t, handler.Handle(ctx, "shop-1"))

	_, err := sessions.Load(ctx, "shop-1")
	assert.Error(t, err)
}
