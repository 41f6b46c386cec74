package models

import (
	"context"
	"time"

	"github.com/born2vin/hoskote-backend/types"
	"github.com/stretchr/testify/mock"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) CreateUser(ctx context.Context, user *types.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *mockUserStore) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*types.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserStore) GetUserByUsername(ctx context.Context, username string) (*types.User, error) {
	args := m.Called(ctx, username)
	if u := args.Get(0); u != nil {
		return u.(*types.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserStore) GetUsersByIDs(ctx context.Context, ids []string) ([]*types.User, error) {
	args := m.Called(ctx, ids)
	if u := args.Get(0); u != nil {
		return u.([]*types.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserStore) UpdateUser(ctx context.Context, id string, update *types.UserUpdate) (*types.User, error) {
	args := m.Called(ctx, id, update)
	if u := args.Get(0); u != nil {
		return u.(*types.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserStore) ListUsers(ctx context.Context, offset, limit int) ([]*types.User, int, error) {
	args := m.Called(ctx, offset, limit)
	if u := args.Get(0); u != nil {
		return u.([]*types.User), args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

type mockExpenseStore struct {
	mock.Mock
}

func (m *mockExpenseStore) CreateExpenseWithSplits(ctx context.Context, expense *types.Expense, participantIDs []string, splits []types.ExpenseSplit) (string, error) {
	args := m.Called(ctx, expense, participantIDs, splits)
	return args.String(0), args.Error(1)
}

func (m *mockExpenseStore) GetExpense(ctx context.Context, id string) (*types.Expense, error) {
	args := m.Called(ctx, id)
	if e := args.Get(0); e != nil {
		return e.(*types.Expense), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockExpenseStore) ListExpenses(ctx context.Context, requesterID string, filter types.ExpenseFilter, offset, limit int) ([]*types.Expense, int, error) {
	args := m.Called(ctx, requesterID, filter, offset, limit)
	if e := args.Get(0); e != nil {
		return e.([]*types.Expense), args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *mockExpenseStore) ListUserSplits(ctx context.Context, userID string, pendingOnly bool) ([]*types.ExpenseSplit, error) {
	args := m.Called(ctx, userID, pendingOnly)
	if s := args.Get(0); s != nil {
		return s.([]*types.ExpenseSplit), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockExpenseStore) UpdateExpense(ctx context.Context, id string, update *types.ExpenseUpdate) (*types.Expense, error) {
	args := m.Called(ctx, id, update)
	if e := args.Get(0); e != nil {
		return e.(*types.Expense), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockExpenseStore) ApplyPayment(ctx context.Context, expenseID, userID string, amount float64) (*types.PaymentResult, error) {
	args := m.Called(ctx, expenseID, userID, amount)
	if r := args.Get(0); r != nil {
		return r.(*types.PaymentResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockExpenseStore) DeleteExpenseWithSplits(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockIdeaStore struct {
	mock.Mock
}

func (m *mockIdeaStore) CreateIdea(ctx context.Context, idea *types.Idea) (string, error) {
	args := m.Called(ctx, idea)
	return args.String(0), args.Error(1)
}

func (m *mockIdeaStore) GetIdea(ctx context.Context, id string) (*types.Idea, error) {
	args := m.Called(ctx, id)
	if i := args.Get(0); i != nil {
		return i.(*types.Idea), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockIdeaStore) ListIdeas(ctx context.Context, filter types.IdeaFilter, offset, limit int) ([]*types.Idea, int, error) {
	args := m.Called(ctx, filter, offset, limit)
	if i := args.Get(0); i != nil {
		return i.([]*types.Idea), args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *mockIdeaStore) UpdateIdea(ctx context.Context, id string, update *types.IdeaUpdate) (*types.Idea, error) {
	args := m.Called(ctx, id, update)
	if i := args.Get(0); i != nil {
		return i.(*types.Idea), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockIdeaStore) AddVote(ctx context.Context, id string, vote types.VoteType) (*types.VoteResult, error) {
	args := m.Called(ctx, id, vote)
	if r := args.Get(0); r != nil {
		return r.(*types.VoteResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockIdeaStore) DeleteIdea(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockAlertStore struct {
	mock.Mock
}

func (m *mockAlertStore) CreateAlert(ctx context.Context, alert *types.Alert) (string, error) {
	args := m.Called(ctx, alert)
	return args.String(0), args.Error(1)
}

func (m *mockAlertStore) GetAlert(ctx context.Context, id string) (*types.Alert, error) {
	args := m.Called(ctx, id)
	if a := args.Get(0); a != nil {
		return a.(*types.Alert), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAlertStore) ListAlerts(ctx context.Context, filter types.AlertFilter, offset, limit int) ([]*types.Alert, int, error) {
	args := m.Called(ctx, filter, offset, limit)
	if a := args.Get(0); a != nil {
		return a.([]*types.Alert), args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *mockAlertStore) UpdateAlert(ctx context.Context, id string, update *types.AlertUpdate) (*types.Alert, error) {
	args := m.Called(ctx, id, update)
	if a := args.Get(0); a != nil {
		return a.(*types.Alert), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAlertStore) DeleteAlert(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockMarketplaceStore struct {
	mock.Mock
}

func (m *mockMarketplaceStore) CreateItem(ctx context.Context, item *types.MarketplaceItem) (string, error) {
	args := m.Called(ctx, item)
	return args.String(0), args.Error(1)
}

func (m *mockMarketplaceStore) GetItem(ctx context.Context, id string) (*types.MarketplaceItem, error) {
	args := m.Called(ctx, id)
	if i := args.Get(0); i != nil {
		return i.(*types.MarketplaceItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMarketplaceStore) ListItems(ctx context.Context, filter types.MarketplaceFilter, offset, limit int) ([]*types.MarketplaceItem, int, error) {
	args := m.Called(ctx, filter, offset, limit)
	if i := args.Get(0); i != nil {
		return i.([]*types.MarketplaceItem), args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *mockMarketplaceStore) ListOwnedItems(ctx context.Context, ownerID string, offset, limit int) ([]*types.MarketplaceItem, error) {
	args := m.Called(ctx, ownerID, offset, limit)
	if i := args.Get(0); i != nil {
		return i.([]*types.MarketplaceItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMarketplaceStore) ListBorrowedItems(ctx context.Context, borrowerID string) ([]*types.MarketplaceItem, error) {
	args := m.Called(ctx, borrowerID)
	if i := args.Get(0); i != nil {
		return i.([]*types.MarketplaceItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMarketplaceStore) UpdateItem(ctx context.Context, id string, update *types.MarketplaceItemUpdate) (*types.MarketplaceItem, error) {
	args := m.Called(ctx, id, update)
	if i := args.Get(0); i != nil {
		return i.(*types.MarketplaceItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMarketplaceStore) MarkBorrowed(ctx context.Context, id, borrowerID string, borrowedAt, returnBy time.Time) error {
	args := m.Called(ctx, id, borrowerID, borrowedAt, returnBy)
	return args.Error(0)
}

func (m *mockMarketplaceStore) MarkReturned(ctx context.Context, id, borrowerID string) error {
	args := m.Called(ctx, id, borrowerID)
	return args.Error(0)
}

func (m *mockMarketplaceStore) DeleteItem(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
