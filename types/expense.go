package types

import "time"

// SplitStrategy determines how an expense total is divided among participants.
type SplitStrategy string

const (
	SplitStrategyEqual      SplitStrategy = "equal"
	SplitStrategyCustom     SplitStrategy = "custom"
	SplitStrategyPercentage SplitStrategy = "by_percentage"
)

// ExpenseStatus tracks the settlement lifecycle of a shared expense.
type ExpenseStatus string

const (
	ExpenseStatusPending   ExpenseStatus = "pending"
	ExpenseStatusSettled   ExpenseStatus = "settled"
	ExpenseStatusCancelled ExpenseStatus = "cancelled"
)

// Expense represents a cost shared among a group of community members.
// The expense is settled exactly when every one of its splits is settled.
type Expense struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description,omitempty"`
	TotalAmount   float64        `json:"totalAmount"`
	Category      string         `json:"category"`
	SplitStrategy SplitStrategy  `json:"splitStrategy"`
	Status        ExpenseStatus  `json:"status"`
	CreatedBy     string         `json:"createdBy"`
	DueDate       *time.Time     `json:"dueDate,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	SettledAt     *time.Time     `json:"settledAt,omitempty"`
	Participants  []UserResponse `json:"participants,omitempty"`
	Splits        []ExpenseSplit `json:"splits,omitempty"`
}

// ExpenseSplit is one participant's share of an expense. AmountPaid only ever
// grows and never exceeds AmountOwed; overpayment is clamped at settlement.
type ExpenseSplit struct {
	ID         string     `json:"id"`
	ExpenseID  string     `json:"expenseId"`
	UserID     string     `json:"userId"`
	AmountOwed float64    `json:"amountOwed"`
	AmountPaid float64    `json:"amountPaid"`
	IsSettled  bool       `json:"isSettled"`
	SettledAt  *time.Time `json:"settledAt,omitempty"`
}

// CustomSplit is a caller-supplied allocation for the custom strategy.
type CustomSplit struct {
	UserID     string  `json:"userId" binding:"required"`
	AmountOwed float64 `json:"amountOwed" binding:"required"`
}

// PercentageSplit is a caller-supplied allocation for the by_percentage strategy.
type PercentageSplit struct {
	UserID     string  `json:"userId" binding:"required"`
	Percentage float64 `json:"percentage" binding:"required"`
}

// ExpenseCreate is the request payload for creating an expense.
type ExpenseCreate struct {
	Title            string            `json:"title" binding:"required"`
	Description      string            `json:"description"`
	TotalAmount      float64           `json:"totalAmount" binding:"required"`
	Category         string            `json:"category" binding:"required"`
	SplitStrategy    SplitStrategy     `json:"splitStrategy"`
	DueDate          *time.Time        `json:"dueDate"`
	ParticipantIDs   []string          `json:"participantIds" binding:"required"`
	CustomSplits     []CustomSplit     `json:"customSplits,omitempty"`
	PercentageSplits []PercentageSplit `json:"percentageSplits,omitempty"`
}

// ExpenseUpdate carries a partial expense update. Only non-nil fields are applied.
type ExpenseUpdate struct {
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	TotalAmount *float64       `json:"totalAmount,omitempty"`
	Category    *string        `json:"category,omitempty"`
	Status      *ExpenseStatus `json:"status,omitempty"`
	DueDate     *time.Time     `json:"dueDate,omitempty"`
}

// ExpenseFilter restricts ListExpenses results.
type ExpenseFilter struct {
	Category string
	Status   ExpenseStatus
	// MineOnly limits results to expenses the requester created or participates in.
	MineOnly bool
}

// PaymentResult reports the outcome of a payment against a single split.
type PaymentResult struct {
	AmountPaid          float64 `json:"amountPaid"`
	AmountOwed          float64 `json:"amountOwed"`
	IsSettled           bool    `json:"isSettled"`
	ExpenseFullySettled bool    `json:"expenseFullySettled"`
}
