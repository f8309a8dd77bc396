package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	Init("test-secret")

	token, err := GenerateToken("shop-1", "contato@central.com")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "shop-1", claims.ShopID)
	assert.Equal(t, "contato@central.com", claims.Email)
	assert.Equal(t, "barberhub-web", claims.Issuer)
}

func TestTamperedTokenRejected(t *testing.T) {
	Init("test-secret")
	token, err := GenerateToken("shop-1", "contato@central.com")
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)

	Init("other-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}
