package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var secret []byte

// Claims carries the authenticated barbershop identity inside the session token
type Claims struct {
	ShopID string `json:"shop_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Init sets the signing secret. Must be called before issuing or
// validating tokens.
func Init(signingSecret string) {
	secret = []byte(signingSecret)
}

// GenerateToken issues a signed session token for a logged-in barbershop.
// There is no refresh flow: when the token expires the owner logs in again.
func GenerateToken(shopID, email string) (string, error) {
	claims := Claims{
		ShopID: shopID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "barberhub-web",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and validates a session token
func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid session token claims")
	}
	return claims, nil
}
