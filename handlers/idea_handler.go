package handlers

import (
	"net/http"

	"github.com/born2vin/hoskote-backend/errors"
	"github.com/born2vin/hoskote-backend/middleware"
	"github.com/born2vin/hoskote-backend/models"
	"github.com/born2vin/hoskote-backend/types"
	"github.com/gin-gonic/gin"
)

// IdeaHandler exposes community idea endpoints.
type IdeaHandler struct {
	ideaModel *models.IdeaModel
}

func NewIdeaHandler(ideaModel *models.IdeaModel) *IdeaHandler {
	return &IdeaHandler{ideaModel: ideaModel}
}

// CreateIdeaHandler godoc
// @Summary Propose a community idea
// @Tags ideas
// @Accept json
// @Produce json
// @Param request body types.IdeaCreate true "Idea details"
// @Success 201 {object} types.Idea
// @Router /ideas [post]
// @Security BearerAuth
func (h *IdeaHandler) CreateIdeaHandler(c *gin.Context) {
	var req types.IdeaCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	idea, err := h.ideaModel.CreateIdea(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, idea)
}

// ListIdeasHandler godoc
// @Summary List community ideas
// @Tags ideas
// @Produce json
// @Param category query string false "Filter by category"
// @Param status query string false "Filter by status"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} types.PaginatedResponse
// @Router /ideas [get]
// @Security BearerAuth
func (h *IdeaHandler) ListIdeasHandler(c *gin.Context) {
	offset, limit := getPaginationParams(c)

	filter := types.IdeaFilter{
		Category: c.Query("category"),
		Status:   types.IdeaStatus(c.Query("status")),
	}

	page, err := h.ideaModel.ListIdeas(c.Request.Context(), filter, offset, limit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetIdeaHandler godoc
// @Summary Get an idea by ID
// @Tags ideas
// @Produce json
// @Param id path string true "Idea ID"
// @Success 200 {object} types.Idea
// @Failure 404 {object} middleware.ErrorResponse "Idea not found"
// @Router /ideas/{id} [get]
// @Security BearerAuth
func (h *IdeaHandler) GetIdeaHandler(c *gin.Context) {
	idea, err := h.ideaModel.GetIdea(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, idea)
}

// UpdateIdeaHandler godoc
// @Summary Update an idea
// @Tags ideas
// @Accept json
// @Produce json
// @Param id path string true "Idea ID"
// @Param request body types.IdeaUpdate true "Fields to update"
// @Success 200 {object} types.Idea
// @Failure 403 {object} middleware.ErrorResponse "Only the author can update"
// @Router /ideas/{id} [put]
// @Security BearerAuth
func (h *IdeaHandler) UpdateIdeaHandler(c *gin.Context) {
	var update types.IdeaUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	idea, err := h.ideaModel.UpdateIdea(c.Request.Context(), c.Param("id"), middleware.GetUserID(c), &update)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, idea)
}

// VoteIdeaHandler godoc
// @Summary Vote on an idea
// @Tags ideas
// @Produce json
// @Param id path string true "Idea ID"
// @Param vote_type query string true "Vote direction" Enums(up, down)
// @Success 200 {object} types.VoteResult
// @Failure 400 {object} middleware.ErrorResponse "Invalid vote type"
// @Failure 404 {object} middleware.ErrorResponse "Idea not found"
// @Router /ideas/{id}/vote [post]
// @Security BearerAuth
func (h *IdeaHandler) VoteIdeaHandler(c *gin.Context) {
	result, err := h.ideaModel.Vote(c.Request.Context(), c.Param("id"), types.VoteType(c.Query("vote_type")))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteIdeaHandler godoc
// @Summary Delete an idea
// @Tags ideas
// @Produce json
// @Param id path string true "Idea ID"
// @Success 200 {object} types.MessageResponse
// @Failure 403 {object} middleware.ErrorResponse "Only the author can delete"
// @Router /ideas/{id} [delete]
// @Security BearerAuth
func (h *IdeaHandler) DeleteIdeaHandler(c *gin.Context) {
	if err := h.ideaModel.DeleteIdea(c.Request.Context(), c.Param("id"), middleware.GetUserID(c)); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, types.MessageResponse{Message: "Idea deleted successfully"})
}
