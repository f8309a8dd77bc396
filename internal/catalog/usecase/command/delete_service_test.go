package command

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kauelucena/barberhub/pkg/apierror"
)

func TestDeleteService(t *testing.T) {
	ctx := context.Background()
	cmd := DeleteServiceCommand{ID: "svc-1", BarberShopID: "shop-1"}

	t.Run("ServerAcceptedDelete", func(t *testing.T) {
		gateway := &fakeGateway{}
		handler := NewDeleteServiceHandler(gateway)

		result, err := handler.Handle(ctx, cmd)
		require.NoError(t, err)

		assert.False(t, result.Degraded)
		assert.Empty(t, result.Caveat)
		assert.Equal(t, "svc-1", result.ID)
		assert.Equal(t, 1, gateway.deletes)
	})

	t.Run("CORSFailureAppliesLocalRemoval", func(t *testing.T) {
		handler := NewDeleteServiceHandler(&fakeGateway{err: corsError()})

		result, err := handler.Handle(ctx, cmd)
		require.NoError(t, err)

		assert.True(t, result.Degraded)
		assert.NotEmpty(t, result.Caveat)
		assert.Equal(t, "svc-1", result.ID)
	})

	t.Run("StatusFailureSurfacedVerbatim", func(t *testing.T) {
		handler := NewDeleteServiceHandler(&fakeGateway{err: statusError(http.StatusForbidden)})

		_, err := handler.Handle(ctx, cmd)
		require.Error(t, err)

		status, ok := apierror.StatusCode(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("MissingFieldsRejected", func(t *testing.T) {
		handler := NewDeleteServiceHandler(&fakeGateway{})

		_, err := handler.Handle(ctx, DeleteServiceCommand{BarberShopID: "shop-1"})
		require.Error(t, err)

		_, err = handler.Handle(ctx, DeleteServiceCommand{ID: "svc-1"})
		require.Error(t, err)
	})
}
