package handlers

import (
	"net/http"
	"strconv"

	"github.com/born2vin/hoskote-backend/errors"
	"github.com/born2vin/hoskote-backend/logger"
	"github.com/born2vin/hoskote-backend/middleware"
	"github.com/born2vin/hoskote-backend/models"
	"github.com/born2vin/hoskote-backend/types"
	"github.com/gin-gonic/gin"
)

// ExpenseHandler exposes the expense ledger endpoints.
type ExpenseHandler struct {
	expenseModel *models.ExpenseModel
}

func NewExpenseHandler(expenseModel *models.ExpenseModel) *ExpenseHandler {
	return &ExpenseHandler{expenseModel: expenseModel}
}

// CreateExpenseHandler godoc
// @Summary Create a shared expense
// @Description Creates an expense and computes one split per participant
// @Description according to the chosen strategy.
// @Tags expenses
// @Accept json
// @Produce json
// @Param request body types.ExpenseCreate true "Expense details"
// @Success 201 {object} types.Expense
// @Failure 400 {object} middleware.ErrorResponse "Invalid input or split mismatch"
// @Router /expenses [post]
// @Security BearerAuth
func (h *ExpenseHandler) CreateExpenseHandler(c *gin.Context) {
	log := logger.GetLogger()

	var req types.ExpenseCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Debugw("Invalid expense payload", "error", err)
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	expense, err := h.expenseModel.CreateExpense(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// ListExpensesHandler godoc
// @Summary List expenses
// @Tags expenses
// @Produce json
// @Param category query string false "Filter by category"
// @Param status query string false "Filter by status" Enums(pending, settled, cancelled)
// @Param mine_only query bool false "Only expenses the requester created or participates in"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} types.PaginatedResponse
// @Router /expenses [get]
// @Security BearerAuth
func (h *ExpenseHandler) ListExpensesHandler(c *gin.Context) {
	offset, limit := getPaginationParams(c)

	filter := types.ExpenseFilter{
		Category: c.Query("category"),
		Status:   types.ExpenseStatus(c.Query("status")),
		MineOnly: c.Query("mine_only") == "true",
	}

	page, err := h.expenseModel.ListExpenses(c.Request.Context(), middleware.GetUserID(c), filter, offset, limit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ListMySplitsHandler godoc
// @Summary List the requester's splits across all expenses
// @Tags expenses
// @Produce json
// @Success 200 {array} types.ExpenseSplit
// @Router /expenses/my-splits [get]
// @Security BearerAuth
func (h *ExpenseHandler) ListMySplitsHandler(c *gin.Context) {
	splits, err := h.expenseModel.ListUserSplits(c.Request.Context(), middleware.GetUserID(c), false)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, splits)
}

// ListPendingPaymentsHandler godoc
// @Summary List the requester's unsettled splits
// @Tags expenses
// @Produce json
// @Success 200 {array} types.ExpenseSplit
// @Router /expenses/pending-payments [get]
// @Security BearerAuth
func (h *ExpenseHandler) ListPendingPaymentsHandler(c *gin.Context) {
	splits, err := h.expenseModel.ListUserSplits(c.Request.Context(), middleware.GetUserID(c), true)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, splits)
}

// GetExpenseHandler godoc
// @Summary Get an expense with its participants and splits
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} types.Expense
// @Failure 403 {object} middleware.ErrorResponse "Not a participant"
// @Failure 404 {object} middleware.ErrorResponse "Expense not found"
// @Router /expenses/{id} [get]
// @Security BearerAuth
func (h *ExpenseHandler) GetExpenseHandler(c *gin.Context) {
	expense, err := h.expenseModel.GetExpense(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

// UpdateExpenseHandler godoc
// @Summary Update an expense
// @Description Partial update by the creator. Setting status to settled
// @Description force-settles every split.
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param request body types.ExpenseUpdate true "Fields to update"
// @Success 200 {object} types.Expense
// @Failure 403 {object} middleware.ErrorResponse "Only the creator can update"
// @Failure 404 {object} middleware.ErrorResponse "Expense not found"
// @Router /expenses/{id} [put]
// @Security BearerAuth
func (h *ExpenseHandler) UpdateExpenseHandler(c *gin.Context) {
	var update types.ExpenseUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	expense, err := h.expenseModel.UpdateExpense(c.Request.Context(), c.Param("id"), middleware.GetUserID(c), &update)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

// PayExpenseSplitHandler godoc
// @Summary Record a payment against the requester's split
// @Description Applies the amount to the requester's split. Overpayment is
// @Description clamped to the amount owed. When every split settles the
// @Description expense settles too.
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Param amount query number true "Payment amount"
// @Success 200 {object} types.PaymentResult
// @Failure 400 {object} middleware.ErrorResponse "Invalid amount or split already settled"
// @Failure 404 {object} middleware.ErrorResponse "Expense or split not found"
// @Router /expenses/{id}/pay [post]
// @Security BearerAuth
func (h *ExpenseHandler) PayExpenseSplitHandler(c *gin.Context) {
	amountStr := c.Query("amount")
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid payment amount", amountStr))
		return
	}

	result, payErr := h.expenseModel.PayExpenseSplit(c.Request.Context(), c.Param("id"), middleware.GetUserID(c), amount)
	if payErr != nil {
		_ = c.Error(payErr)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteExpenseHandler godoc
// @Summary Delete an expense
// @Description Deletes an expense and its splits. Refused once any payment
// @Description has been recorded.
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} types.MessageResponse
// @Failure 400 {object} middleware.ErrorResponse "Payments already recorded"
// @Failure 403 {object} middleware.ErrorResponse "Only the creator can delete"
// @Failure 404 {object} middleware.ErrorResponse "Expense not found"
// @Router /expenses/{id} [delete]
// @Security BearerAuth
func (h *ExpenseHandler) DeleteExpenseHandler(c *gin.Context) {
	if err := h.expenseModel.DeleteExpense(c.Request.Context(), c.Param("id"), middleware.GetUserID(c)); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, types.MessageResponse{Message: "Expense deleted successfully"})
}
