package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/born2vin/hoskote-backend/internal/store"
	"github.com/born2vin/hoskote-backend/types"
	"github.com/jackc/pgx/v5"
)

// MarketplaceStore implements store.MarketplaceStore using PostgreSQL.
type MarketplaceStore struct {
	pool PgxPool
}

// NewMarketplaceStore creates a new MarketplaceStore instance.
func NewMarketplaceStore(pool PgxPool) *MarketplaceStore {
	return &MarketplaceStore{pool: pool}
}

const itemColumns = `id, title, description, category, item_type, condition, availability, duration_max, price_per_day, owner_id, current_borrower_id, borrowed_at, return_by, created_at, updated_at`

func scanItem(row pgx.Row) (*types.MarketplaceItem, error) {
	item := &types.MarketplaceItem{}
	err := row.Scan(
		&item.ID,
		&item.Title,
		&item.Description,
		&item.Category,
		&item.ItemType,
		&item.Condition,
		&item.Availability,
		&item.DurationMax,
		&item.PricePerDay,
		&item.OwnerID,
		&item.CurrentBorrowerID,
		&item.BorrowedAt,
		&item.ReturnBy,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func scanItems(rows pgx.Rows) ([]*types.MarketplaceItem, error) {
	defer rows.Close()

	var items []*types.MarketplaceItem
	for rows.Next() {
		item := &types.MarketplaceItem{}
		err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Description,
			&item.Category,
			&item.ItemType,
			&item.Condition,
			&item.Availability,
			&item.DurationMax,
			&item.PricePerDay,
			&item.OwnerID,
			&item.CurrentBorrowerID,
			&item.BorrowedAt,
			&item.ReturnBy,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// CreateItem inserts a new marketplace item and returns its ID.
func (s *MarketplaceStore) CreateItem(ctx context.Context, item *types.MarketplaceItem) (string, error) {
	query := `
		INSERT INTO marketplace_items (title, description, category, item_type, condition, duration_max, price_per_day, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id string
	err := s.pool.QueryRow(ctx, query,
		item.Title,
		item.Description,
		item.Category,
		item.ItemType,
		item.Condition,
		item.DurationMax,
		item.PricePerDay,
		item.OwnerID,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// GetItem retrieves a marketplace item by its ID.
func (s *MarketplaceStore) GetItem(ctx context.Context, id string) (*types.MarketplaceItem, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM marketplace_items
		WHERE id = $1`

	return scanItem(s.pool.QueryRow(ctx, query, id))
}

// ListItems returns a page of items matching the filter, newest first.
func (s *MarketplaceStore) ListItems(ctx context.Context, filter types.MarketplaceFilter, offset, limit int) ([]*types.MarketplaceItem, int, error) {
	conditions := []string{"TRUE"}
	args := []any{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.ItemType != "" {
		args = append(args, filter.ItemType)
		conditions = append(conditions, fmt.Sprintf("item_type = $%d", len(args)))
	}
	if filter.AvailableOnly {
		conditions = append(conditions, "availability = TRUE")
	}

	where := strings.Join(conditions, " AND ")

	var total int
	if err := s.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM marketplace_items WHERE %s`, where), args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, offset, limit)
	query := fmt.Sprintf(`
		SELECT %s
		FROM marketplace_items
		WHERE %s
		ORDER BY created_at DESC
		OFFSET $%d LIMIT $%d`,
		itemColumns, where, len(args)-1, len(args))

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	items, err := scanItems(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListOwnedItems returns the items listed by a given owner, newest first.
func (s *MarketplaceStore) ListOwnedItems(ctx context.Context, ownerID string, offset, limit int) ([]*types.MarketplaceItem, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM marketplace_items
		WHERE owner_id = $1
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3`

	rows, err := s.pool.Query(ctx, query, ownerID, offset, limit)
	if err != nil {
		return nil, err
	}
	return scanItems(rows)
}

// ListBorrowedItems returns the items currently borrowed by a given user.
func (s *MarketplaceStore) ListBorrowedItems(ctx context.Context, borrowerID string) ([]*types.MarketplaceItem, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM marketplace_items
		WHERE current_borrower_id = $1 AND availability = FALSE`

	rows, err := s.pool.Query(ctx, query, borrowerID)
	if err != nil {
		return nil, err
	}
	return scanItems(rows)
}

// UpdateItem applies a partial update and returns the updated item.
func (s *MarketplaceStore) UpdateItem(ctx context.Context, id string, update *types.MarketplaceItemUpdate) (*types.MarketplaceItem, error) {
	query := `
		UPDATE marketplace_items
		SET title = COALESCE($1, title),
			description = COALESCE($2, description),
			category = COALESCE($3, category),
			item_type = COALESCE($4, item_type),
			condition = COALESCE($5, condition),
			duration_max = COALESCE($6, duration_max),
			price_per_day = COALESCE($7, price_per_day),
			updated_at = NOW()
		WHERE id = $8
		RETURNING ` + itemColumns

	return scanItem(s.pool.QueryRow(ctx, query,
		update.Title,
		update.Description,
		update.Category,
		update.ItemType,
		update.Condition,
		update.DurationMax,
		update.PricePerDay,
		id,
	))
}

// MarkBorrowed flips the item to borrowed if and only if it is still available,
// guarding against two borrowers racing for the same item.
func (s *MarketplaceStore) MarkBorrowed(ctx context.Context, id, borrowerID string, borrowedAt, returnBy time.Time) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE marketplace_items
		SET availability = FALSE,
			current_borrower_id = $1,
			borrowed_at = $2,
			return_by = $3,
			updated_at = NOW()
		WHERE id = $4 AND availability = TRUE`,
		borrowerID, borrowedAt, returnBy, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotAvailable
	}
	return nil
}

// MarkReturned clears the borrowing fields for the given borrower.
func (s *MarketplaceStore) MarkReturned(ctx context.Context, id, borrowerID string) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE marketplace_items
		SET availability = TRUE,
			current_borrower_id = NULL,
			borrowed_at = NULL,
			return_by = NULL,
			updated_at = NOW()
		WHERE id = $1 AND current_borrower_id = $2`,
		id, borrowerID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteItem removes a marketplace item.
func (s *MarketplaceStore) DeleteItem(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM marketplace_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
