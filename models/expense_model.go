package models

import (
	"context"
	"errors"
	"fmt"
	"math"

	apperrors "github.com/born2vin/hoskote-backend/errors"
	"github.com/born2vin/hoskote-backend/internal/store"
	"github.com/born2vin/hoskote-backend/logger"
	"github.com/born2vin/hoskote-backend/types"
)

// ExpenseModel owns the expense ledger: split computation, payment
// application and settlement-state transitions.
type ExpenseModel struct {
	store     store.ExpenseStore
	userStore store.UserStore
}

// NewExpenseModel creates a new ExpenseModel.
func NewExpenseModel(expenseStore store.ExpenseStore, userStore store.UserStore) *ExpenseModel {
	return &ExpenseModel{
		store:     expenseStore,
		userStore: userStore,
	}
}

// CreateExpense validates the request, computes the splits for the chosen
// strategy and persists the expense with its splits atomically.
func (m *ExpenseModel) CreateExpense(ctx context.Context, creatorID string, req *types.ExpenseCreate) (*types.Expense, error) {
	log := logger.GetLogger()

	if req.TotalAmount <= 0 {
		return nil, apperrors.ValidationFailed("Total amount must be positive",
			fmt.Sprintf("got %.2f", req.TotalAmount))
	}
	if len(req.ParticipantIDs) == 0 {
		return nil, apperrors.ValidationFailed("At least one participant is required", "")
	}
	if req.SplitStrategy == "" {
		req.SplitStrategy = types.SplitStrategyEqual
	}

	participantIDs := uniqueIDs(req.ParticipantIDs)

	users, err := m.userStore.GetUsersByIDs(ctx, participantIDs)
	if err != nil {
		log.Errorw("Failed to resolve participants", "error", err)
		return nil, apperrors.NewDatabaseError(err)
	}
	if len(users) != len(participantIDs) {
		return nil, apperrors.DomainValidation(apperrors.KindUnknownParticipant,
			"One or more participants not found",
			fmt.Sprintf("requested %d participants, found %d", len(participantIDs), len(users)))
	}

	splits, err := computeSplits(req, participantIDs)
	if err != nil {
		return nil, err
	}

	expense := &types.Expense{
		Title:         req.Title,
		Description:   req.Description,
		TotalAmount:   req.TotalAmount,
		Category:      req.Category,
		SplitStrategy: req.SplitStrategy,
		CreatedBy:     creatorID,
		DueDate:       req.DueDate,
	}

	id, err := m.store.CreateExpenseWithSplits(ctx, expense, participantIDs, splits)
	if err != nil {
		log.Errorw("Failed to create expense", "creator", creatorID, "error", err)
		return nil, apperrors.NewDatabaseError(err)
	}

	created, err := m.store.GetExpense(ctx, id)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return created, nil
}

// ListExpenses returns a page of expenses visible under the given filter.
func (m *ExpenseModel) ListExpenses(ctx context.Context, requesterID string, filter types.ExpenseFilter, offset, limit int) (*types.PaginatedResponse, error) {
	expenses, total, err := m.store.ListExpenses(ctx, requesterID, filter, offset, limit)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	return &types.PaginatedResponse{
		Data: expenses,
		Pagination: types.Pagination{
			Limit:  limit,
			Offset: offset,
			Total:  total,
		},
	}, nil
}

// GetExpense loads an expense. Only the creator and participants may view it.
func (m *ExpenseModel) GetExpense(ctx context.Context, id, requesterID string) (*types.Expense, error) {
	expense, err := m.store.GetExpense(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Expense", id)
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	if !canViewExpense(expense, requesterID) {
		return nil, apperrors.Forbidden("Not authorized to view this expense", "")
	}
	return expense, nil
}

// ListUserSplits returns the requester's splits across all expenses.
func (m *ExpenseModel) ListUserSplits(ctx context.Context, userID string, pendingOnly bool) ([]*types.ExpenseSplit, error) {
	splits, err := m.store.ListUserSplits(ctx, userID, pendingOnly)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return splits, nil
}

// UpdateExpense applies a partial update. Only the creator may update; a
// transition into the settled status force-settles every split.
func (m *ExpenseModel) UpdateExpense(ctx context.Context, id, requesterID string, update *types.ExpenseUpdate) (*types.Expense, error) {
	expense, err := m.store.GetExpense(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Expense", id)
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	if expense.CreatedBy != requesterID {
		return nil, apperrors.Forbidden("Not authorized to update this expense", "only the creator can update an expense")
	}

	if update.TotalAmount != nil && *update.TotalAmount <= 0 {
		return nil, apperrors.ValidationFailed("Total amount must be positive",
			fmt.Sprintf("got %.2f", *update.TotalAmount))
	}

	updated, err := m.store.UpdateExpense(ctx, id, update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Expense", id)
		}
		logger.GetLogger().Errorw("Failed to update expense", "expenseId", id, "error", err)
		return nil, apperrors.NewDatabaseError(err)
	}
	return updated, nil
}

// PayExpenseSplit records a payment by the payer against their own split and
// re-evaluates the aggregate expense status.
func (m *ExpenseModel) PayExpenseSplit(ctx context.Context, expenseID, payerID string, amount float64) (*types.PaymentResult, error) {
	// !(amount > 0) also catches NaN, which compares false to everything.
	if !(amount > 0) || math.IsInf(amount, 1) {
		return nil, apperrors.ValidationFailed("Payment amount must be positive",
			fmt.Sprintf("got %v", amount))
	}

	// Resolve the expense first so a missing expense and a missing split
	// surface as distinct not-found messages.
	if _, err := m.store.GetExpense(ctx, expenseID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Expense", expenseID)
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	result, err := m.store.ApplyPayment(ctx, expenseID, payerID, amount)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return nil, apperrors.NotFound("Expense split", expenseID)
		case errors.Is(err, store.ErrAlreadySettled):
			return nil, apperrors.DomainValidation(apperrors.KindAlreadySettled,
				"This split is already settled", "no further payments are accepted")
		default:
			logger.GetLogger().Errorw("Failed to apply payment",
				"expenseId", expenseID, "payer", payerID, "error", err)
			return nil, apperrors.NewDatabaseError(err)
		}
	}
	return result, nil
}

// DeleteExpense removes an expense and its splits. Only the creator may
// delete, and only while no payments have been recorded.
func (m *ExpenseModel) DeleteExpense(ctx context.Context, id, requesterID string) error {
	expense, err := m.store.GetExpense(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NotFound("Expense", id)
		}
		return apperrors.NewDatabaseError(err)
	}

	if expense.CreatedBy != requesterID {
		return apperrors.Forbidden("Not authorized to delete this expense", "only the creator can delete an expense")
	}

	if err := m.store.DeleteExpenseWithSplits(ctx, id); err != nil {
		switch {
		case errors.Is(err, store.ErrPaymentsExist):
			return apperrors.DomainValidation(apperrors.KindPaymentsExist,
				"Cannot delete expense with payments made", "")
		case errors.Is(err, store.ErrNotFound):
			return apperrors.NotFound("Expense", id)
		default:
			logger.GetLogger().Errorw("Failed to delete expense", "expenseId", id, "error", err)
			return apperrors.NewDatabaseError(err)
		}
	}
	return nil
}

func canViewExpense(expense *types.Expense, userID string) bool {
	if expense.CreatedBy == userID {
		return true
	}
	for _, p := range expense.Participants {
		if p.ID == userID {
			return true
		}
	}
	return false
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
