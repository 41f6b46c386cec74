package handlers

import (
	"net/http"

	"github.com/born2vin/hoskote-backend/errors"
	"github.com/born2vin/hoskote-backend/logger"
	"github.com/born2vin/hoskote-backend/models"
	"github.com/born2vin/hoskote-backend/types"
	"github.com/gin-gonic/gin"
)

// AuthHandler exposes registration and login.
type AuthHandler struct {
	userModel *models.UserModel
}

func NewAuthHandler(userModel *models.UserModel) *AuthHandler {
	return &AuthHandler{userModel: userModel}
}

// RegisterHandler godoc
// @Summary Register a new account
// @Description Creates a user account and returns the public profile.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body types.RegisterRequest true "Registration details"
// @Success 201 {object} types.UserResponse "Created account"
// @Failure 400 {object} middleware.ErrorResponse "Invalid input"
// @Failure 409 {object} middleware.ErrorResponse "Username or email already taken"
// @Router /auth/register [post]
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	log := logger.GetLogger()

	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Debugw("Invalid registration payload", "error", err)
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	user, err := h.userModel.Register(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// LoginHandler godoc
// @Summary Log in
// @Description Verifies credentials and returns a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body types.LoginRequest true "Credentials"
// @Success 200 {object} types.TokenResponse "Access token"
// @Failure 401 {object} middleware.ErrorResponse "Incorrect username or password"
// @Failure 429 {object} middleware.ErrorResponse "Too many attempts"
// @Router /auth/login [post]
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	token, err := h.userModel.Login(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, token)
}
