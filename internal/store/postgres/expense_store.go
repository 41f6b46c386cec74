package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/born2vin/hoskote-backend/internal/store"
	"github.com/born2vin/hoskote-backend/types"
	"github.com/jackc/pgx/v5"
)

// ExpenseStore implements store.ExpenseStore using PostgreSQL. Every
// multi-row mutation runs inside a single transaction so partial application
// is never observable.
type ExpenseStore struct {
	pool PgxPool
}

// NewExpenseStore creates a new ExpenseStore instance.
func NewExpenseStore(pool PgxPool) *ExpenseStore {
	return &ExpenseStore{pool: pool}
}

const expenseColumns = `id, title, description, total_amount, category, split_strategy, status, created_by, due_date, created_at, settled_at`

func scanExpense(row pgx.Row) (*types.Expense, error) {
	expense := &types.Expense{}
	err := row.Scan(
		&expense.ID,
		&expense.Title,
		&expense.Description,
		&expense.TotalAmount,
		&expense.Category,
		&expense.SplitStrategy,
		&expense.Status,
		&expense.CreatedBy,
		&expense.DueDate,
		&expense.CreatedAt,
		&expense.SettledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return expense, nil
}

// CreateExpenseWithSplits persists the expense, its participant links and one
// split per participant in a single transaction.
func (s *ExpenseStore) CreateExpenseWithSplits(ctx context.Context, expense *types.Expense, participantIDs []string, splits []types.ExpenseSplit) (string, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id string
	err = tx.QueryRow(ctx, `
		INSERT INTO expenses (title, description, total_amount, category, split_strategy, created_by, due_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		expense.Title,
		expense.Description,
		expense.TotalAmount,
		expense.Category,
		expense.SplitStrategy,
		expense.CreatedBy,
		expense.DueDate,
	).Scan(&id)
	if err != nil {
		return "", err
	}

	for _, participantID := range participantIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO expense_participants (expense_id, user_id)
			VALUES ($1, $2)`,
			id, participantID,
		); err != nil {
			return "", err
		}
	}

	for _, split := range splits {
		if _, err := tx.Exec(ctx, `
			INSERT INTO expense_splits (expense_id, user_id, amount_owed)
			VALUES ($1, $2, $3)`,
			id, split.UserID, split.AmountOwed,
		); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return "", err
	}
	return id, nil
}

// GetExpense loads an expense with its participants and splits embedded.
func (s *ExpenseStore) GetExpense(ctx context.Context, id string) (*types.Expense, error) {
	expense, err := scanExpense(s.pool.QueryRow(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses
		WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}

	participants, err := s.getParticipants(ctx, id)
	if err != nil {
		return nil, err
	}
	expense.Participants = participants

	splits, err := s.getSplits(ctx, id)
	if err != nil {
		return nil, err
	}
	expense.Splits = splits

	return expense, nil
}

func (s *ExpenseStore) getParticipants(ctx context.Context, expenseID string) ([]types.UserResponse, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT u.id, u.username, u.full_name, u.email
		FROM expense_participants ep
		JOIN users u ON u.id = ep.user_id
		WHERE ep.expense_id = $1`, expenseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []types.UserResponse
	for rows.Next() {
		var p types.UserResponse
		if err := rows.Scan(&p.ID, &p.Username, &p.FullName, &p.Email); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

func (s *ExpenseStore) getSplits(ctx context.Context, expenseID string) ([]types.ExpenseSplit, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, expense_id, user_id, amount_owed, amount_paid, is_settled, settled_at
		FROM expense_splits
		WHERE expense_id = $1`, expenseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var splits []types.ExpenseSplit
	for rows.Next() {
		var split types.ExpenseSplit
		err := rows.Scan(
			&split.ID,
			&split.ExpenseID,
			&split.UserID,
			&split.AmountOwed,
			&split.AmountPaid,
			&split.IsSettled,
			&split.SettledAt,
		)
		if err != nil {
			return nil, err
		}
		splits = append(splits, split)
	}
	return splits, rows.Err()
}

// ListExpenses returns a page of expenses matching the filter, newest first.
func (s *ExpenseStore) ListExpenses(ctx context.Context, requesterID string, filter types.ExpenseFilter, offset, limit int) ([]*types.Expense, int, error) {
	conditions := []string{"TRUE"}
	args := []any{}

	if filter.MineOnly {
		args = append(args, requesterID)
		conditions = append(conditions, fmt.Sprintf(
			`(e.created_by = $%d OR EXISTS (
				SELECT 1 FROM expense_participants ep
				WHERE ep.expense_id = e.id AND ep.user_id = $%d))`,
			len(args), len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("e.category = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("e.status = $%d", len(args)))
	}

	where := strings.Join(conditions, " AND ")

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM expenses e WHERE %s`, where)
	if err := s.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, offset, limit)
	query := fmt.Sprintf(`
		SELECT %s
		FROM expenses e
		WHERE %s
		ORDER BY e.created_at DESC
		OFFSET $%d LIMIT $%d`,
		qualify(expenseColumns, "e"), where, len(args)-1, len(args))

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var expenses []*types.Expense
	for rows.Next() {
		expense := &types.Expense{}
		err := rows.Scan(
			&expense.ID,
			&expense.Title,
			&expense.Description,
			&expense.TotalAmount,
			&expense.Category,
			&expense.SplitStrategy,
			&expense.Status,
			&expense.CreatedBy,
			&expense.DueDate,
			&expense.CreatedAt,
			&expense.SettledAt,
		)
		if err != nil {
			return nil, 0, err
		}
		expenses = append(expenses, expense)
	}

	return expenses, total, rows.Err()
}

// qualify prefixes each column in a comma-separated list with a table alias.
func qualify(columns, alias string) string {
	parts := strings.Split(columns, ", ")
	for i, p := range parts {
		parts[i] = alias + "." + p
	}
	return strings.Join(parts, ", ")
}

// ListUserSplits returns the user's splits ordered by the owning expense's
// creation time, newest first.
func (s *ExpenseStore) ListUserSplits(ctx context.Context, userID string, pendingOnly bool) ([]*types.ExpenseSplit, error) {
	query := `
		SELECT s.id, s.expense_id, s.user_id, s.amount_owed, s.amount_paid, s.is_settled, s.settled_at
		FROM expense_splits s
		JOIN expenses e ON e.id = s.expense_id
		WHERE s.user_id = $1`
	if pendingOnly {
		query += ` AND s.is_settled = FALSE`
	}
	query += ` ORDER BY e.created_at DESC`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var splits []*types.ExpenseSplit
	for rows.Next() {
		split := &types.ExpenseSplit{}
		err := rows.Scan(
			&split.ID,
			&split.ExpenseID,
			&split.UserID,
			&split.AmountOwed,
			&split.AmountPaid,
			&split.IsSettled,
			&split.SettledAt,
		)
		if err != nil {
			return nil, err
		}
		splits = append(splits, split)
	}

	return splits, rows.Err()
}

// UpdateExpense applies a partial update. When the update transitions the
// expense into the settled status, settled_at is stamped and every split is
// force-settled in the same transaction.
func (s *ExpenseStore) UpdateExpense(ctx context.Context, id string, update *types.ExpenseUpdate) (*types.Expense, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var priorStatus types.ExpenseStatus
	err = tx.QueryRow(ctx,
		`SELECT status FROM expenses WHERE id = $1 FOR UPDATE`, id).Scan(&priorStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		UPDATE expenses
		SET title = COALESCE($1, title),
			description = COALESCE($2, description),
			total_amount = COALESCE($3, total_amount),
			category = COALESCE($4, category),
			status = COALESCE($5, status),
			due_date = COALESCE($6, due_date)
		WHERE id = $7`,
		update.Title,
		update.Description,
		update.TotalAmount,
		update.Category,
		update.Status,
		update.DueDate,
		id,
	)
	if err != nil {
		return nil, err
	}

	// Administrative settlement: force every split settled regardless of
	// payment amounts.
	nowSettled := update.Status != nil &&
		*update.Status == types.ExpenseStatusSettled &&
		priorStatus != types.ExpenseStatusSettled
	if nowSettled {
		if _, err := tx.Exec(ctx,
			`UPDATE expenses SET settled_at = NOW() WHERE id = $1`, id); err != nil {
			return nil, err
		}
		if _, err := tx.Exec(ctx, `
			UPDATE expense_splits
			SET is_settled = TRUE, settled_at = NOW()
			WHERE expense_id = $1`, id); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return s.GetExpense(ctx, id)
}

// ApplyPayment records a payment against the payer's split. The split row is
// locked for the duration of the transaction so concurrent payments serialize
// instead of losing updates. Overpayment is clamped to the amount owed, and
// the aggregate expense status is re-evaluated after the payment lands.
func (s *ExpenseStore) ApplyPayment(ctx context.Context, expenseID, userID string, amount float64) (*types.PaymentResult, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var (
		splitID     string
		amountOwed  float64
		amountPaid  float64
		alreadyDone bool
	)
	err = tx.QueryRow(ctx, `
		SELECT id, amount_owed, amount_paid, is_settled
		FROM expense_splits
		WHERE expense_id = $1 AND user_id = $2
		FOR UPDATE`,
		expenseID, userID,
	).Scan(&splitID, &amountOwed, &amountPaid, &alreadyDone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}

	if alreadyDone {
		return nil, store.ErrAlreadySettled
	}

	amountPaid += amount
	settled := amountPaid >= amountOwed
	if amountPaid > amountOwed {
		// Overpayment is not retained as credit.
		amountPaid = amountOwed
	}

	_, err = tx.Exec(ctx, `
		UPDATE expense_splits
		SET amount_paid = $1,
			is_settled = $2,
			settled_at = CASE WHEN $2 THEN NOW() ELSE settled_at END
		WHERE id = $3`,
		amountPaid, settled, splitID,
	)
	if err != nil {
		return nil, err
	}

	var unsettled int
	err = tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM expense_splits
		WHERE expense_id = $1 AND is_settled = FALSE`,
		expenseID,
	).Scan(&unsettled)
	if err != nil {
		return nil, err
	}

	fullySettled := unsettled == 0
	if fullySettled {
		if _, err := tx.Exec(ctx, `
			UPDATE expenses
			SET status = $1, settled_at = NOW()
			WHERE id = $2 AND status <> $1`,
			types.ExpenseStatusSettled, expenseID,
		); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &types.PaymentResult{
		AmountPaid:          amountPaid,
		AmountOwed:          amountOwed,
		IsSettled:           settled,
		ExpenseFullySettled: fullySettled,
	}, nil
}

// DeleteExpenseWithSplits removes the expense, its participant links and its
// splits atomically. Deletion is refused once any payment has been recorded.
func (s *ExpenseStore) DeleteExpenseWithSplits(ctx context.Context, id string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var paidSplits int
	err = tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM expense_splits
		WHERE expense_id = $1 AND amount_paid > 0`,
		id,
	).Scan(&paidSplits)
	if err != nil {
		return err
	}
	if paidSplits > 0 {
		return store.ErrPaymentsExist
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM expense_splits WHERE expense_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx,
		`DELETE FROM expense_participants WHERE expense_id = $1`, id); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}

	return tx.Commit(ctx)
}
