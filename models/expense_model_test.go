package models

import (
	"context"
	"math"
	"testing"

	apperrors "github.com/born2vin/hoskote-backend/errors"
	"github.com/born2vin/hoskote-backend/internal/store"
	"github.com/born2vin/hoskote-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newExpenseFixture(id, creator string, participants ...string) *types.Expense {
	e := &types.Expense{
		ID:          id,
		Title:       "Street lights",
		TotalAmount: 90,
		CreatedBy:   creator,
		Status:      types.ExpenseStatusPending,
	}
	for _, p := range participants {
		e.Participants = append(e.Participants, types.UserResponse{ID: p})
	}
	return e
}

func TestCreateExpense_EqualStrategy(t *testing.T) {
	expenseStore := new(mockExpenseStore)
	userStore := new(mockUserStore)
	model := NewExpenseModel(expenseStore, userStore)
	ctx := context.Background()

	req := &types.ExpenseCreate{
		Title:          "Street lights",
		TotalAmount:    90,
		SplitStrategy:  types.SplitStrategyEqual,
		ParticipantIDs: []string{"u1", "u2", "u3"},
	}

	userStore.On("GetUsersByIDs", ctx, []string{"u1", "u2", "u3"}).Return([]*types.User{
		{ID: "u1"}, {ID: "u2"}, {ID: "u3"},
	}, nil)
	expenseStore.On("CreateExpenseWithSplits", ctx, mock.AnythingOfType("*types.Expense"),
		[]string{"u1", "u2", "u3"}, mock.MatchedBy(func(splits []types.ExpenseSplit) bool {
			if len(splits) != 3 {
				return false
			}
			for _, s := range splits {
				if s.AmountOwed != 30 {
					return false
				}
			}
			return true
		})).Return("exp-1", nil)
	expenseStore.On("GetExpense", ctx, "exp-1").
		Return(newExpenseFixture("exp-1", "u1", "u1", "u2", "u3"), nil)

	expense, err := model.CreateExpense(ctx, "u1", req)
	require.NoError(t, err)
	assert.Equal(t, "exp-1", expense.ID)

	expenseStore.AssertExpectations(t)
	userStore.AssertExpectations(t)
}

func TestCreateExpense_UnknownParticipant(t *testing.T) {
	expenseStore := new(mockExpenseStore)
	userStore := new(mockUserStore)
	model := NewExpenseModel(expenseStore, userStore)
	ctx := context.Background()

	req := &types.ExpenseCreate{
		Title:          "Street lights",
		TotalAmount:    90,
		SplitStrategy:  types.SplitStrategyEqual,
		ParticipantIDs: []string{"u1", "ghost"},
	}

	userStore.On("GetUsersByIDs", ctx, []string{"u1", "ghost"}).
		Return([]*types.User{{ID: "u1"}}, nil)

	_, err := model.CreateExpense(ctx, "u1", req)
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindUnknownParticipant, appErr.Code)
	expenseStore.AssertNotCalled(t, "CreateExpenseWithSplits")
}

func TestCreateExpense_NonPositiveTotal(t *testing.T) {
	model := NewExpenseModel(new(mockExpenseStore), new(mockUserStore))

	_, err := model.CreateExpense(context.Background(), "u1", &types.ExpenseCreate{
		Title:          "Broken",
		TotalAmount:    0,
		ParticipantIDs: []string{"u1"},
	})
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ValidationError, appErr.Type)
}

func TestCreateExpense_DeduplicatesParticipants(t *testing.T) {
	expenseStore := new(mockExpenseStore)
	userStore := new(mockUserStore)
	model := NewExpenseModel(expenseStore, userStore)
	ctx := context.Background()

	req := &types.ExpenseCreate{
		Title:          "Water tank",
		TotalAmount:    100,
		SplitStrategy:  types.SplitStrategyEqual,
		ParticipantIDs: []string{"u1", "u2", "u1"},
	}

	userStore.On("GetUsersByIDs", ctx, []string{"u1", "u2"}).
		Return([]*types.User{{ID: "u1"}, {ID: "u2"}}, nil)
	expenseStore.On("CreateExpenseWithSplits", ctx, mock.Anything, []string{"u1", "u2"}, mock.Anything).
		Return("exp-2", nil)
	expenseStore.On("GetExpense", ctx, "exp-2").
		Return(newExpenseFixture("exp-2", "u1", "u1", "u2"), nil)

	_, err := model.CreateExpense(ctx, "u1", req)
	require.NoError(t, err)
	expenseStore.AssertExpectations(t)
}

func TestGetExpense_ParticipantCanView(t *testing.T) {
	expenseStore := new(mockExpenseStore)
	model := NewExpenseModel(expenseStore, new(mockUserStore))
	ctx := context.Background()

	expenseStore.On("GetExpense", ctx, "exp-1").
		Return(newExpenseFixture("exp-1", "creator", "u2"), nil)

	expense, err := model.GetExpense(ctx, "exp-1", "u2")
	require.NoError(t, err)
	assert.Equal(t, "exp-1", expense.ID)
}

func TestGetExpense_OutsiderForbidden(t *testing.T) {
	expenseStore := new(mockExpenseStore)
	model := NewExpenseModel(expenseStore, new(mockUserStore))
	ctx := context.Background()

	expenseStore.On("GetExpense", ctx, "exp-1").
		Return(newExpenseFixture("exp-1", "creator", "u2"), nil)

	_, err := model.GetExpense(ctx, "exp-1", "outsider")
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ForbiddenError, appErr.Type)
}

func TestGetExpense_NotFound(t *testing.T) {
	expenseStore := new(mockExpenseStore)
	model := NewExpenseModel(expenseStore, new(mockUserStore))
	ctx := context.Background()

	expenseStore.On("GetExpense", ctx, "missing").Return(nil, store.ErrNotFound)

	_, err := model.GetExpense(ctx, "missing", "u1")
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.NotFoundError, appErr.Type)
}

func TestUpdateExpense_OnlyCreator(t *testing.T) {
	expenseStore := new(mockExpenseStore)
	model := NewExpenseModel(expenseStore, new(mockUserStore))
	ctx := context.Background()

	expenseStore.On("GetExpense", ctx, "exp-1").
		Return(newExpenseFixture("exp-1", "creator", "u2"), nil)

	title := "New title"
	_, err := model.UpdateExpense(ctx, "exp-1", "u2", &types.ExpenseUpdate{Title: &title})
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ForbiddenError, appErr.Type)
	expenseStore.AssertNotCalled(t, "UpdateExpense")
}

func TestPayExpenseSplit_PartialPayment(t *testing.T) {
	expenseStore := new(mockExpenseStore)
	model := NewExpenseModel(expenseStore, new(mockUserStore))
	ctx := context.Background()

	expenseStore.On("GetExpense", ctx, "exp-1").
		Return(newExpenseFixture("exp-1", "creator", "u2"), nil)
	expenseStore.On("ApplyPayment", ctx, "exp-1", "u2", 50.0).Return(&types.PaymentResult{
		AmountPaid: 50,
		AmountOwed: 100,
		IsSettled:  false,
	}, nil)

	result, err := model.PayExpenseSplit(ctx, "exp-1", "u2", 50)
	require.NoError(t, err)
	assert.False(t, result.IsSettled)
	assert.Equal(t, 50.0, result.AmountPaid)
}

func TestPayExpenseSplit_InvalidAmount(t *testing.T) {
	amounts := map[string]float64{
		"negative": -5,
		"zero":     0,
		"nan":      math.NaN(),
		"posInf":   math.Inf(1),
	}

	for name, amount := range amounts {
		t.Run(name, func(t *testing.T) {
			expenseStore := new(mockExpenseStore)
			model := NewExpenseModel(expenseStore, new(mockUserStore))

			_, err := model.PayExpenseSplit(context.Background(), "exp-1", "u2", amount)
			require.Error(t, err)

			appErr, ok := err.(*apperrors.AppError)
			require.True(t, ok)
			assert.Equal(t, apperrors.ValidationError, appErr.Type)
			expenseStore.AssertNotCalled(t, "ApplyPayment")
		})
	}
}

func TestPayExpenseSplit_AlreadySettled(t *testing.T) {
	expenseStore := new(mockExpenseStore)
	model := NewExpenseModel(expenseStore, new(mockUserStore))
	ctx := context.Background()

	expenseStore.On("GetExpense", ctx, "exp-1").
		Return(newExpenseFixture("exp-1", "creator", "u2"), nil)
	expenseStore.On("ApplyPayment", ctx, "exp-1", "u2", 10.0).
		Return(nil, store.ErrAlreadySettled)

	_, err := model.PayExpenseSplit(ctx, "exp-1", "u2", 10)
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindAlreadySettled, appErr.Code)
}

func TestPayExpenseSplit_NoSplitForPayer(t *testing.T) {
	expenseStore := new(mockExpenseStore)
	model := NewExpenseModel(expenseStore, new(mockUserStore))
	ctx := context.Background()

	expenseStore.On("GetExpense", ctx, "exp-1").
		Return(newExpenseFixture("exp-1", "creator", "u2"), nil)
	expenseStore.On("ApplyPayment", ctx, "exp-1", "outsider", 10.0).
		Return(nil, store.ErrNotFound)

	_, err := model.PayExpenseSplit(ctx, "exp-1", "outsider", 10)
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.NotFoundError, appErr.Type)
}

func TestDeleteExpense_PaymentsExist(t *testing.T) {
	expenseStore := new(mockExpenseStore)
	model := NewExpenseModel(expenseStore, new(mockUserStore))
	ctx := context.Background()

	expenseStore.On("GetExpense", ctx, "exp-1").
		Return(newExpenseFixture("exp-1", "creator"), nil)
	expenseStore.On("DeleteExpenseWithSplits", ctx, "exp-1").
		Return(store.ErrPaymentsExist)

	err := model.DeleteExpense(ctx, "exp-1", "creator")
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindPaymentsExist, appErr.Code)
}

func TestDeleteExpense_OnlyCreator(t *testing.T) {
	expenseStore := new(mockExpenseStore)
	model := NewExpenseModel(expenseStore, new(mockUserStore))
	ctx := context.Background()

	expenseStore.On("GetExpense", ctx, "exp-1").
		Return(newExpenseFixture("exp-1", "creator", "u2"), nil)

	err := model.DeleteExpense(ctx, "exp-1", "u2")
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ForbiddenError, appErr.Type)
	expenseStore.AssertNotCalled(t, "DeleteExpenseWithSplits")
}
