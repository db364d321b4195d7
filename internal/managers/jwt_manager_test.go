package managers

import (
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	jwtMgr := NewJWTManager([]byte("test-secret"))

	claims := jwtMgr.GenerateClaims(42, "testUser")
	token, err := jwtMgr.GenerateJWT(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := jwtMgr.ValidateJWT(token)
	require.NoError(t, err)

	mapClaims, ok := parsed.(jwt.MapClaims)
	require.True(t, ok)

	sub, err := mapClaims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, strconv.FormatInt(42, 10), sub)
	assert.Equal(t, "testUser", mapClaims["username"])
	assert.Equal(t, "cardlet-server", mapClaims["iss"])
}

func TestValidateJWTRejectsExpiredToken(t *testing.T) {
	jwtMgr := NewJWTManager([]byte("test-secret"))

	expiredClaims := jwt.MapClaims{
		"iss":      "cardlet-server",
		"iat":      time.Now().Add(-2 * time.Hour).Unix(),
		"exp":      time.Now().Add(-time.Hour).Unix(),
		"sub":      "42",
		"username": "testUser",
	}
	token, err := jwtMgr.GenerateJWT(expiredClaims)
	require.NoError(t, err)

	_, err = jwtMgr.ValidateJWT(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	signingMgr := NewJWTManager([]byte("test-secret"))
	verifyingMgr := NewJWTManager([]byte("other-secret"))

	token, err := signingMgr.GenerateJWT(signingMgr.GenerateClaims(42, "testUser"))
	require.NoError(t, err)

	_, err = verifyingMgr.ValidateJWT(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	jwtMgr := NewJWTManager([]byte("test-secret"))

	_, err := jwtMgr.ValidateJWT("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
