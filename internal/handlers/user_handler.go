// Package handlers contains the gin request handlers of the API.
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"cardlet-server/internal/managers"
	"cardlet-server/internal/schemas"
	"cardlet-server/internal/stores"
	"cardlet-server/internal/utils"
)

type UserHdl interface {
	RegisterUser(ctx *gin.Context)
	LoginUser(ctx *gin.Context)
	GetProtectedResource(ctx *gin.Context)
}

type UserHandler struct {
	Stores     managers.StoreMgr
	JWTManager managers.JWTMgr
	Validator  *utils.Validator
}

func NewUserHandler(storeManager *managers.StoreMgr, jwtManager *managers.JWTMgr) UserHdl {
	return &UserHandler{
		Stores:     *storeManager,
		JWTManager: *jwtManager,
		Validator:  utils.GetValidator(),
	}
}

// RegisterUser registers a new account. The password is stored as a bcrypt
// hash, never as plaintext. Email and username must be unused.
func (handler *UserHandler) RegisterUser(ctx *gin.Context) {
	registrationRequest := &schemas.RegistrationRequest{}
	if err := utils.BindAndValidate(ctx, registrationRequest); err != nil {
		return
	}

	// MX verification needs outbound DNS, so it only runs in production.
	if os.Getenv("ENVIRONMENT") == "production" && !handler.Validator.VerifyEmail(registrationRequest.Email) {
		utils.WriteAndLogError(ctx, schemas.EmailUnreachable, http.StatusBadRequest, errors.New("email unreachable"))
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(registrationRequest.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.WriteAndLogError(ctx, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	user, err := handler.Stores.Users().Register(registrationRequest.Username, registrationRequest.Email, string(hashedPassword))
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrEmailTaken):
			utils.WriteAndLogError(ctx, schemas.EmailTaken, http.StatusConflict, err)
		case errors.Is(err, stores.ErrUsernameTaken):
			utils.WriteAndLogError(ctx, schemas.UsernameTaken, http.StatusConflict, err)
		default:
			utils.WriteAndLogError(ctx, schemas.InternalServerError, http.StatusInternalServerError, err)
		}
		return
	}

	userDto := &schemas.UserDTO{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
	utils.WriteAndLogResponse(ctx, userDto, http.StatusCreated)
}

// LoginUser authenticates an account by email and password and returns a
// signed bearer token. Unknown emails and wrong passwords are
// indistinguishable to the caller.
func (handler *UserHandler) LoginUser(ctx *gin.Context) {
	loginRequest := &schemas.LoginRequest{}
	if err := utils.BindAndValidate(ctx, loginRequest); err != nil {
		return
	}

	user, found := handler.Stores.Users().FindByEmail(loginRequest.Email)
	if !found {
		utils.WriteAndLogError(ctx, schemas.InvalidCredentials, http.StatusUnauthorized, errors.New("unknown email"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(loginRequest.Password)); err != nil {
		utils.WriteAndLogError(ctx, schemas.InvalidCredentials, http.StatusUnauthorized, err)
		return
	}

	claims := handler.JWTManager.GenerateClaims(user.ID, user.Username)
	token, err := handler.JWTManager.GenerateJWT(claims)
	if err != nil {
		utils.WriteAndLogError(ctx, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	utils.WriteAndLogResponse(ctx, &schemas.TokenDTO{Token: token}, http.StatusOK)
}

// GetProtectedResource greets the authenticated user. It exists as a
// minimal smoke test for the token middleware.
func (handler *UserHandler) GetProtectedResource(ctx *gin.Context) {
	userId, username, err := utils.GetUserFromContext(ctx)
	if err != nil {
		utils.WriteAndLogError(ctx, schemas.Unauthorized, http.StatusUnauthorized, err)
		return
	}

	message := fmt.Sprintf("Hello %s! User ID: %d. This is a protected resource.", username, userId)
	utils.WriteAndLogResponse(ctx, &schemas.MessageDTO{Message: message}, http.StatusOK)
}
