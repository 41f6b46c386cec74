package postgres

import (
	"context"
	"errors"

	"github.com/born2vin/hoskote-backend/internal/store"
	"github.com/born2vin/hoskote-backend/types"
	"github.com/jackc/pgx/v5"
)

// UserStore implements store.UserStore using PostgreSQL.
type UserStore struct {
	pool PgxPool
}

// NewUserStore creates a new UserStore instance.
func NewUserStore(pool PgxPool) *UserStore {
	return &UserStore{pool: pool}
}

const userColumns = `id, username, email, full_name, hashed_password, phone, address, is_active, created_at`

func scanUser(row pgx.Row) (*types.User, error) {
	user := &types.User{}
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FullName,
		&user.HashedPassword,
		&user.Phone,
		&user.Address,
		&user.IsActive,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// CreateUser inserts a new user and returns its ID.
func (s *UserStore) CreateUser(ctx context.Context, user *types.User) (string, error) {
	query := `
		INSERT INTO users (username, email, full_name, hashed_password, phone, address)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id string
	err := s.pool.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.FullName,
		user.HashedPassword,
		user.Phone,
		user.Address,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return "", store.ErrDuplicate
		}
		return "", err
	}

	return id, nil
}

// GetUserByID retrieves an active user by ID.
func (s *UserStore) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1 AND is_active = TRUE`

	return scanUser(s.pool.QueryRow(ctx, query, id))
}

// GetUserByUsername retrieves an active user by username.
func (s *UserStore) GetUserByUsername(ctx context.Context, username string) (*types.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE username = $1 AND is_active = TRUE`

	return scanUser(s.pool.QueryRow(ctx, query, username))
}

// GetUsersByIDs resolves a set of user IDs to active users.
func (s *UserStore) GetUsersByIDs(ctx context.Context, ids []string) ([]*types.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = ANY($1) AND is_active = TRUE`

	rows, err := s.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*types.User
	for rows.Next() {
		user := &types.User{}
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.FullName,
			&user.HashedPassword,
			&user.Phone,
			&user.Address,
			&user.IsActive,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// UpdateUser applies a partial profile update and returns the updated user.
func (s *UserStore) UpdateUser(ctx context.Context, id string, update *types.UserUpdate) (*types.User, error) {
	query := `
		UPDATE users
		SET email = COALESCE($1, email),
			full_name = COALESCE($2, full_name),
			phone = COALESCE($3, phone),
			address = COALESCE($4, address)
		WHERE id = $5 AND is_active = TRUE
		RETURNING ` + userColumns

	user, err := scanUser(s.pool.QueryRow(ctx, query,
		update.Email,
		update.FullName,
		update.Phone,
		update.Address,
		id,
	))
	if err != nil && isUniqueViolation(err) {
		return nil, store.ErrDuplicate
	}
	return user, err
}

// ListUsers returns a page of active users with the total count.
func (s *UserStore) ListUsers(ctx context.Context, offset, limit int) ([]*types.User, int, error) {
	var total int
	if err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE is_active = TRUE`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE is_active = TRUE
		ORDER BY created_at
		OFFSET $1 LIMIT $2`

	rows, err := s.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []*types.User
	for rows.Next() {
		user := &types.User{}
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.FullName,
			&user.HashedPassword,
			&user.Phone,
			&user.Address,
			&user.IsActive,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, user)
	}

	return users, total, rows.Err()
}
