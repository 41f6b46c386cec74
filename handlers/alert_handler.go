package handlers

import (
	"net/http"

	"github.com/born2vin/hoskote-backend/errors"
	"github.com/born2vin/hoskote-backend/middleware"
	"github.com/born2vin/hoskote-backend/models"
	"github.com/born2vin/hoskote-backend/types"
	"github.com/gin-gonic/gin"
)

// AlertHandler exposes community alert endpoints.
type AlertHandler struct {
	alertModel *models.AlertModel
}

func NewAlertHandler(alertModel *models.AlertModel) *AlertHandler {
	return &AlertHandler{alertModel: alertModel}
}

// CreateAlertHandler godoc
// @Summary Report a community alert
// @Tags alerts
// @Accept json
// @Produce json
// @Param request body types.AlertCreate true "Alert details"
// @Success 201 {object} types.Alert
// @Router /alerts [post]
// @Security BearerAuth
func (h *AlertHandler) CreateAlertHandler(c *gin.Context) {
	var req types.AlertCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	alert, err := h.alertModel.CreateAlert(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, alert)
}

// ListAlertsHandler godoc
// @Summary List community alerts
// @Tags alerts
// @Produce json
// @Param alert_type query string false "Filter by alert type"
// @Param severity query string false "Filter by severity" Enums(low, medium, high, critical)
// @Param status query string false "Filter by status" Enums(active, resolved, false_alarm)
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} types.PaginatedResponse
// @Router /alerts [get]
// @Security BearerAuth
func (h *AlertHandler) ListAlertsHandler(c *gin.Context) {
	offset, limit := getPaginationParams(c)

	filter := types.AlertFilter{
		AlertType: c.Query("alert_type"),
		Severity:  types.AlertSeverity(c.Query("severity")),
		Status:    types.AlertStatus(c.Query("status")),
	}

	page, err := h.alertModel.ListAlerts(c.Request.Context(), filter, offset, limit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ListActiveAlertsHandler godoc
// @Summary List alerts that are currently active
// @Tags alerts
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} types.PaginatedResponse
// @Router /alerts/active [get]
// @Security BearerAuth
func (h *AlertHandler) ListActiveAlertsHandler(c *gin.Context) {
	offset, limit := getPaginationParams(c)

	filter := types.AlertFilter{Status: types.AlertStatusActive}
	page, err := h.alertModel.ListAlerts(c.Request.Context(), filter, offset, limit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetAlertHandler godoc
// @Summary Get an alert by ID
// @Tags alerts
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} types.Alert
// @Failure 404 {object} middleware.ErrorResponse "Alert not found"
// @Router /alerts/{id} [get]
// @Security BearerAuth
func (h *AlertHandler) GetAlertHandler(c *gin.Context) {
	alert, err := h.alertModel.GetAlert(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

// UpdateAlertHandler godoc
// @Summary Update an alert
// @Tags alerts
// @Accept json
// @Produce json
// @Param id path string true "Alert ID"
// @Param request body types.AlertUpdate true "Fields to update"
// @Success 200 {object} types.Alert
// @Failure 403 {object} middleware.ErrorResponse "Only the reporter can update"
// @Router /alerts/{id} [put]
// @Security BearerAuth
func (h *AlertHandler) UpdateAlertHandler(c *gin.Context) {
	var update types.AlertUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	alert, err := h.alertModel.UpdateAlert(c.Request.Context(), c.Param("id"), middleware.GetUserID(c), &update)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

// ResolveAlertHandler godoc
// @Summary Mark an alert as resolved
// @Tags alerts
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} types.Alert
// @Failure 403 {object} middleware.ErrorResponse "Only the reporter can resolve"
// @Router /alerts/{id}/resolve [post]
// @Security BearerAuth
func (h *AlertHandler) ResolveAlertHandler(c *gin.Context) {
	alert, err := h.alertModel.ResolveAlert(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

// DeleteAlertHandler godoc
// @Summary Delete an alert
// @Tags alerts
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} types.MessageResponse
// @Failure 403 {object} middleware.ErrorResponse "Only the reporter can delete"
// @Router /alerts/{id} [delete]
// @Security BearerAuth
func (h *AlertHandler) DeleteAlertHandler(c *gin.Context) {
	if err := h.alertModel.DeleteAlert(c.Request.Context(), c.Param("id"), middleware.GetUserID(c)); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, types.MessageResponse{Message: "Alert deleted successfully"})
}
