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

// IdeaStore implements store.IdeaStore using PostgreSQL.
type IdeaStore struct {
	pool PgxPool
}

// NewIdeaStore creates a new IdeaStore instance.
func NewIdeaStore(pool PgxPool) *IdeaStore {
	return &IdeaStore{pool: pool}
}

const ideaColumns = `id, title, description, category, status, votes_up, votes_down, author_id, created_at, updated_at`

func scanIdea(row pgx.Row) (*types.Idea, error) {
	idea := &types.Idea{}
	err := row.Scan(
		&idea.ID,
		&idea.Title,
		&idea.Description,
		&idea.Category,
		&idea.Status,
		&idea.VotesUp,
		&idea.VotesDown,
		&idea.AuthorID,
		&idea.CreatedAt,
		&idea.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return idea, nil
}

// CreateIdea inserts a new idea and returns its ID.
func (s *IdeaStore) CreateIdea(ctx context.Context, idea *types.Idea) (string, error) {
	query := `
		INSERT INTO ideas (title, description, category, author_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id string
	err := s.pool.QueryRow(ctx, query,
		idea.Title,
		idea.Description,
		idea.Category,
		idea.AuthorID,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// GetIdea retrieves an idea by its ID.
func (s *IdeaStore) GetIdea(ctx context.Context, id string) (*types.Idea, error) {
	query := `
		SELECT ` + ideaColumns + `
		FROM ideas
		WHERE id = $1`

	return scanIdea(s.pool.QueryRow(ctx, query, id))
}

// ListIdeas returns a page of ideas matching the filter, newest first.
func (s *IdeaStore) ListIdeas(ctx context.Context, filter types.IdeaFilter, offset, limit int) ([]*types.Idea, int, error) {
	conditions := []string{"TRUE"}
	args := []any{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	where := strings.Join(conditions, " AND ")

	var total int
	if err := s.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM ideas WHERE %s`, where), args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, offset, limit)
	query := fmt.Sprintf(`
		SELECT %s
		FROM ideas
		WHERE %s
		ORDER BY created_at DESC
		OFFSET $%d LIMIT $%d`,
		ideaColumns, where, len(args)-1, len(args))

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var ideas []*types.Idea
	for rows.Next() {
		idea := &types.Idea{}
		err := rows.Scan(
			&idea.ID,
			&idea.Title,
			&idea.Description,
			&idea.Category,
			&idea.Status,
			&idea.VotesUp,
			&idea.VotesDown,
			&idea.AuthorID,
			&idea.CreatedAt,
			&idea.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		ideas = append(ideas, idea)
	}

	return ideas, total, rows.Err()
}

// UpdateIdea applies a partial update and returns the updated idea.
func (s *IdeaStore) UpdateIdea(ctx context.Context, id string, update *types.IdeaUpdate) (*types.Idea, error) {
	query := `
		UPDATE ideas
		SET title = COALESCE($1, title),
			description = COALESCE($2, description),
			category = COALESCE($3, category),
			status = COALESCE($4, status),
			updated_at = NOW()
		WHERE id = $5
		RETURNING ` + ideaColumns

	return scanIdea(s.pool.QueryRow(ctx, query,
		update.Title,
		update.Description,
		update.Category,
		update.Status,
		id,
	))
}

// AddVote increments one of the vote counters atomically and returns the new
// totals. Repeat voting by the same user is not prevented.
func (s *IdeaStore) AddVote(ctx context.Context, id string, vote types.VoteType) (*types.VoteResult, error) {
	column := "votes_up"
	if vote == types.VoteDown {
		column = "votes_down"
	}

	query := fmt.Sprintf(`
		UPDATE ideas
		SET %s = %s + 1, updated_at = NOW()
		WHERE id = $1
		RETURNING votes_up, votes_down`, column, column)

	result := &types.VoteResult{}
	err := s.pool.QueryRow(ctx, query, id).Scan(&result.VotesUp, &result.VotesDown)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return result, nil
}

// DeleteIdea removes an idea.
func (s *IdeaStore) DeleteIdea(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM ideas WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
