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

// AlertStore implements store.AlertStore using PostgreSQL.
type AlertStore struct {
	pool PgxPool
}

// NewAlertStore creates a new AlertStore instance.
func NewAlertStore(pool PgxPool) *AlertStore {
	return &AlertStore{pool: pool}
}

const alertColumns = `id, title, description, alert_type, location, latitude, longitude, severity, status, author_id, created_at, resolved_at`

func scanAlert(row pgx.Row) (*types.Alert, error) {
	alert := &types.Alert{}
	err := row.Scan(
		&alert.ID,
		&alert.Title,
		&alert.Description,
		&alert.AlertType,
		&alert.Location,
		&alert.Latitude,
		&alert.Longitude,
		&alert.Severity,
		&alert.Status,
		&alert.AuthorID,
		&alert.CreatedAt,
		&alert.ResolvedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return alert, nil
}

// CreateAlert inserts a new alert and returns its ID.
func (s *AlertStore) CreateAlert(ctx context.Context, alert *types.Alert) (string, error) {
	query := `
		INSERT INTO alerts (title, description, alert_type, location, latitude, longitude, severity, author_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id string
	err := s.pool.QueryRow(ctx, query,
		alert.Title,
		alert.Description,
		alert.AlertType,
		alert.Location,
		alert.Latitude,
		alert.Longitude,
		alert.Severity,
		alert.AuthorID,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// GetAlert retrieves an alert by its ID.
func (s *AlertStore) GetAlert(ctx context.Context, id string) (*types.Alert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM alerts
		WHERE id = $1`

	return scanAlert(s.pool.QueryRow(ctx, query, id))
}

// ListAlerts returns a page of alerts matching the filter, newest first.
func (s *AlertStore) ListAlerts(ctx context.Context, filter types.AlertFilter, offset, limit int) ([]*types.Alert, int, error) {
	conditions := []string{"TRUE"}
	args := []any{}

	if filter.AlertType != "" {
		args = append(args, filter.AlertType)
		conditions = append(conditions, fmt.Sprintf("alert_type = $%d", len(args)))
	}
	if filter.Severity != "" {
		args = append(args, filter.Severity)
		conditions = append(conditions, fmt.Sprintf("severity = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	where := strings.Join(conditions, " AND ")

	var total int
	if err := s.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM alerts WHERE %s`, where), args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, offset, limit)
	query := fmt.Sprintf(`
		SELECT %s
		FROM alerts
		WHERE %s
		ORDER BY created_at DESC
		OFFSET $%d LIMIT $%d`,
		alertColumns, where, len(args)-1, len(args))

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var alerts []*types.Alert
	for rows.Next() {
		alert := &types.Alert{}
		err := rows.Scan(
			&alert.ID,
			&alert.Title,
			&alert.Description,
			&alert.AlertType,
			&alert.Location,
			&alert.Latitude,
			&alert.Longitude,
			&alert.Severity,
			&alert.Status,
			&alert.AuthorID,
			&alert.CreatedAt,
			&alert.ResolvedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		alerts = append(alerts, alert)
	}

	return alerts, total, rows.Err()
}

// UpdateAlert applies a partial update. A transition into the resolved status
// stamps resolved_at exactly once.
func (s *AlertStore) UpdateAlert(ctx context.Context, id string, update *types.AlertUpdate) (*types.Alert, error) {
	query := `
		UPDATE alerts
		SET title = COALESCE($1, title),
			description = COALESCE($2, description),
			alert_type = COALESCE($3, alert_type),
			location = COALESCE($4, location),
			latitude = COALESCE($5, latitude),
			longitude = COALESCE($6, longitude),
			severity = COALESCE($7, severity),
			status = COALESCE($8, status),
			resolved_at = CASE
				WHEN $8::text = 'resolved' AND status <> 'resolved' THEN NOW()
				ELSE resolved_at
			END
		WHERE id = $9
		RETURNING ` + alertColumns

	return scanAlert(s.pool.QueryRow(ctx, query,
		update.Title,
		update.Description,
		update.AlertType,
		update.Location,
		update.Latitude,
		update.Longitude,
		update.Severity,
		update.Status,
		id,
	))
}

// DeleteAlert removes an alert.
func (s *AlertStore) DeleteAlert(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM alerts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
