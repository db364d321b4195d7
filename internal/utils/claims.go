package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var errNoClaims = errors.New("no claims in request context")

// GetUserFromContext resolves the authenticated user id and username from
// the JWT claims the middleware stored in the request context.
func GetUserFromContext(ctx *gin.Context) (int64, string, error) {
	raw, ok := ctx.Get(ClaimsKey.String())
	if !ok {
		return 0, "", errNoClaims
	}

	claims, ok := raw.(jwt.MapClaims)
	if !ok {
		return 0, "", errNoClaims
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return 0, "", err
	}
	userId, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, "", err
	}

	username, _ := claims["username"].(string)
	return userId, username, nil
}
