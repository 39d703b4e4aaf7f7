package utils

import (
	"testing"
	"time"

	"bento-shop/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	user := &models.User{ID: 42, Username: "hana", Role: models.RoleCustomer}

	tokenString, err := GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "hana", claims.Subject)
	assert.Equal(t, models.RoleCustomer, claims.Role)
}

func TestValidateTokenExpired(t *testing.T) {
	claims := TokenClaims{
		UserID: 42,
		Role:   models.RoleCustomer,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "hana",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
	require.NoError(t, err)

	_, err = ValidateToken(tokenString)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateTokenTampered(t *testing.T) {
	user := &models.User{ID: 42, Username: "hana", Role: models.RoleCustomer}

	tokenString, err := GenerateToken(user)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString + "x")
	assert.Error(t, err)
}

func TestValidateTokenWrongSigningMethod(t *testing.T) {
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "hana"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}
