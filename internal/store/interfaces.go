// Package store defines the persistence interfaces consumed by the models
// layer. Implementations live in subpackages (postgres).
package store

import (
	"context"
	"time"

	"github.com/born2vin/hoskote-backend/types"
)

// UserStore handles user persistence.
type UserStore interface {
	CreateUser(ctx context.Context, user *types.User) (string, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByUsername(ctx context.Context, username string) (*types.User, error)
	// GetUsersByIDs resolves a set of user IDs; missing IDs are simply absent
	// from the result.
	GetUsersByIDs(ctx context.Context, ids []string) ([]*types.User, error)
	UpdateUser(ctx context.Context, id string, update *types.UserUpdate) (*types.User, error)
	ListUsers(ctx context.Context, offset, limit int) ([]*types.User, int, error)
}

// ExpenseStore handles expense and split persistence. Multi-row mutations are
// executed inside a single transaction by the implementation.
type ExpenseStore interface {
	// CreateExpenseWithSplits persists the expense, its participant links and
	// one split per participant atomically, returning the new expense ID.
	CreateExpenseWithSplits(ctx context.Context, expense *types.Expense, participantIDs []string, splits []types.ExpenseSplit) (string, error)
	// GetExpense loads an expense with its participants and splits embedded.
	GetExpense(ctx context.Context, id string) (*types.Expense, error)
	ListExpenses(ctx context.Context, requesterID string, filter types.ExpenseFilter, offset, limit int) ([]*types.Expense, int, error)
	// ListUserSplits returns the user's splits ordered by the owning expense's
	// creation time, newest first. pendingOnly restricts to unsettled splits.
	ListUserSplits(ctx context.Context, userID string, pendingOnly bool) ([]*types.ExpenseSplit, error)
	// UpdateExpense applies the non-nil fields of update. A transition into the
	// settled status stamps settled_at and force-settles every split, all in
	// one transaction. Changing total_amount does not recompute existing
	// splits; the sum-of-splits invariant is enforced at creation only.
	UpdateExpense(ctx context.Context, id string, update *types.ExpenseUpdate) (*types.Expense, error)
	// ApplyPayment records a payment against the payer's split, clamping
	// overpayment and re-evaluating the aggregate expense status, all in one
	// transaction with the split row locked.
	ApplyPayment(ctx context.Context, expenseID, userID string, amount float64) (*types.PaymentResult, error)
	// DeleteExpenseWithSplits removes the splits, participant links and the
	// expense atomically. Fails with ErrPaymentsExist if any split has a
	// nonzero amount_paid.
	DeleteExpenseWithSplits(ctx context.Context, id string) error
}

// IdeaStore handles idea persistence.
type IdeaStore interface {
	CreateIdea(ctx context.Context, idea *types.Idea) (string, error)
	GetIdea(ctx context.Context, id string) (*types.Idea, error)
	ListIdeas(ctx context.Context, filter types.IdeaFilter, offset, limit int) ([]*types.Idea, int, error)
	UpdateIdea(ctx context.Context, id string, update *types.IdeaUpdate) (*types.Idea, error)
	// AddVote increments one of the vote counters and returns the new totals.
	AddVote(ctx context.Context, id string, vote types.VoteType) (*types.VoteResult, error)
	DeleteIdea(ctx context.Context, id string) error
}

// AlertStore handles safety alert persistence.
type AlertStore interface {
	CreateAlert(ctx context.Context, alert *types.Alert) (string, error)
	GetAlert(ctx context.Context, id string) (*types.Alert, error)
	ListAlerts(ctx context.Context, filter types.AlertFilter, offset, limit int) ([]*types.Alert, int, error)
	// UpdateAlert applies the non-nil fields of update. A transition into the
	// resolved status stamps resolved_at.
	UpdateAlert(ctx context.Context, id string, update *types.AlertUpdate) (*types.Alert, error)
	DeleteAlert(ctx context.Context, id string) error
}

// MarketplaceStore handles marketplace item persistence.
type MarketplaceStore interface {
	CreateItem(ctx context.Context, item *types.MarketplaceItem) (string, error)
	GetItem(ctx context.Context, id string) (*types.MarketplaceItem, error)
	ListItems(ctx context.Context, filter types.MarketplaceFilter, offset, limit int) ([]*types.MarketplaceItem, int, error)
	ListOwnedItems(ctx context.Context, ownerID string, offset, limit int) ([]*types.MarketplaceItem, error)
	ListBorrowedItems(ctx context.Context, borrowerID string) ([]*types.MarketplaceItem, error)
	UpdateItem(ctx context.Context, id string, update *types.MarketplaceItemUpdate) (*types.MarketplaceItem, error)
	// MarkBorrowed flips the item to borrowed if and only if it is still
	// available; returns ErrNotAvailable otherwise.
	MarkBorrowed(ctx context.Context, id, borrowerID string, borrowedAt, returnBy time.Time) error
	// MarkReturned clears the borrowing fields for the given borrower.
	MarkReturned(ctx context.Context, id, borrowerID string) error
	DeleteItem(ctx context.Context, id string) error
}
