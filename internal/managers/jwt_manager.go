package managers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"cardlet-server/internal/schemas"
	"cardlet-server/internal/utils"
)

// Tokens stay valid for one hour after issuance. There is no revocation:
// a token remains usable for its full lifetime.
const tokenLifetime = time.Hour

// Typed validation results. Both surface as 401 to clients, but callers can
// tell an expired token from a malformed or forged one.
var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

type JWTMgr interface {
	GenerateClaims(userId int64, username string) jwt.Claims
	GenerateJWT(claims jwt.Claims) (string, error)
	ValidateJWT(tokenString string) (jwt.Claims, error)
	JWTMiddleware() gin.HandlerFunc
}

// JWTManager handles JWT generation, signing, and validation. Tokens are
// signed with HS256 using a server-held secret; no token state is kept
// server-side, validity is determined purely by signature and expiry.
type JWTManager struct {
	secret []byte
}

// NewJWTManager creates a new JWTManager with the given signing secret.
func NewJWTManager(secret []byte) JWTMgr {
	return &JWTManager{secret: secret}
}

// GenerateClaims generates the standard JWT claims for the given user.
func (jm *JWTManager) GenerateClaims(userId int64, username string) jwt.Claims {
	return jwt.MapClaims{
		"iss":      "cardlet-server",
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(tokenLifetime).Unix(),
		"sub":      strconv.FormatInt(userId, 10),
		"username": username,
	}
}

// GenerateJWT generates a new signed JWT with the given claims.
func (jm *JWTManager) GenerateJWT(claims jwt.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jm.secret)
}

// ValidateJWT validates the given JWT and returns the claims if valid.
// Expired tokens yield ErrTokenExpired, everything else ErrTokenInvalid.
func (jm *JWTManager) ValidateJWT(tokenString string) (jwt.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("invalid signing method")
		}
		return jm.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	return token.Claims, nil
}

// JWTMiddleware extracts the bearer token from the Authorization header,
// validates it and stores the claims in the request context. Missing or
// malformed headers, bad signatures and expired tokens all abort with 401.
func (jm *JWTManager) JWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			utils.WriteAndLogError(c, schemas.Unauthorized, http.StatusUnauthorized, errors.New("missing or malformed authorization header"))
			c.Abort()
			return
		}

		claims, err := jm.ValidateJWT(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.WriteAndLogError(c, schemas.Unauthorized, http.StatusUnauthorized, err)
			c.Abort()
			return
		}

		c.Set(utils.ClaimsKey.String(), claims)
		c.Next()
	}
}
