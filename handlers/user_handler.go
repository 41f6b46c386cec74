package handlers

import (
	"net/http"

	"github.com/born2vin/hoskote-backend/errors"
	"github.com/born2vin/hoskote-backend/middleware"
	"github.com/born2vin/hoskote-backend/models"
	"github.com/born2vin/hoskote-backend/types"
	"github.com/gin-gonic/gin"
)

// UserHandler exposes profile and user directory endpoints.
type UserHandler struct {
	userModel *models.UserModel
}

func NewUserHandler(userModel *models.UserModel) *UserHandler {
	return &UserHandler{userModel: userModel}
}

// GetMeHandler godoc
// @Summary Get the current user's profile
// @Tags users
// @Produce json
// @Success 200 {object} types.UserResponse
// @Failure 401 {object} middleware.ErrorResponse "Not authenticated"
// @Router /users/me [get]
// @Security BearerAuth
func (h *UserHandler) GetMeHandler(c *gin.Context) {
	user, err := h.userModel.GetProfile(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateMeHandler godoc
// @Summary Update the current user's profile
// @Tags users
// @Accept json
// @Produce json
// @Param request body types.UserUpdate true "Fields to update"
// @Success 200 {object} types.UserResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid input"
// @Failure 409 {object} middleware.ErrorResponse "Email already in use"
// @Router /users/me [put]
// @Security BearerAuth
func (h *UserHandler) UpdateMeHandler(c *gin.Context) {
	var update types.UserUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	user, err := h.userModel.UpdateProfile(c.Request.Context(), middleware.GetUserID(c), &update)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListUsersHandler godoc
// @Summary List active users
// @Tags users
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} types.PaginatedResponse
// @Router /users [get]
// @Security BearerAuth
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	offset, limit := getPaginationParams(c)

	page, err := h.userModel.ListUsers(c.Request.Context(), offset, limit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetUserHandler godoc
// @Summary Get a user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} types.UserResponse
// @Failure 404 {object} middleware.ErrorResponse "User not found"
// @Router /users/{id} [get]
// @Security BearerAuth
func (h *UserHandler) GetUserHandler(c *gin.Context) {
	user, err := h.userModel.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}
