package models

import (
	"context"
	"errors"

	apperrors "github.com/born2vin/hoskote-backend/errors"
	"github.com/born2vin/hoskote-backend/internal/store"
	"github.com/born2vin/hoskote-backend/logger"
	"github.com/born2vin/hoskote-backend/types"
)

// AlertModel handles community safety alerts.
type AlertModel struct {
	store store.AlertStore
}

func NewAlertModel(alertStore store.AlertStore) *AlertModel {
	return &AlertModel{store: alertStore}
}

func (m *AlertModel) CreateAlert(ctx context.Context, reporterID string, req *types.AlertCreate) (*types.Alert, error) {
	severity := req.Severity
	if severity == "" {
		severity = types.SeverityMedium
	}

	alert := &types.Alert{
		Title:       req.Title,
		Description: req.Description,
		AlertType:   req.AlertType,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Severity:    severity,
		AuthorID:    reporterID,
		Status:      types.AlertStatusActive,
	}

	id, err := m.store.CreateAlert(ctx, alert)
	if err != nil {
		logger.GetLogger().Errorw("Failed to create alert", "reporter", reporterID, "error", err)
		return nil, apperrors.NewDatabaseError(err)
	}
	return m.getAlert(ctx, id)
}

func (m *AlertModel) GetAlert(ctx context.Context, id string) (*types.Alert, error) {
	return m.getAlert(ctx, id)
}

func (m *AlertModel) getAlert(ctx context.Context, id string) (*types.Alert, error) {
	alert, err := m.store.GetAlert(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Alert", id)
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return alert, nil
}

func (m *AlertModel) ListAlerts(ctx context.Context, filter types.AlertFilter, offset, limit int) (*types.PaginatedResponse, error) {
	alerts, total, err := m.store.ListAlerts(ctx, filter, offset, limit)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	return &types.PaginatedResponse{
		Data: alerts,
		Pagination: types.Pagination{
			Limit:  limit,
			Offset: offset,
			Total:  total,
		},
	}, nil
}

// UpdateAlert applies a partial update. Only the reporter may update.
func (m *AlertModel) UpdateAlert(ctx context.Context, id, requesterID string, update *types.AlertUpdate) (*types.Alert, error) {
	alert, err := m.getAlert(ctx, id)
	if err != nil {
		return nil, err
	}
	if alert.AuthorID != requesterID {
		return nil, apperrors.Forbidden("Not authorized to update this alert", "only the reporter can update an alert")
	}

	updated, err := m.store.UpdateAlert(ctx, id, update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Alert", id)
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return updated, nil
}

// ResolveAlert marks an alert resolved. Only the reporter may resolve.
func (m *AlertModel) ResolveAlert(ctx context.Context, id, requesterID string) (*types.Alert, error) {
	resolved := types.AlertStatusResolved
	return m.UpdateAlert(ctx, id, requesterID, &types.AlertUpdate{Status: &resolved})
}

// DeleteAlert removes an alert. Only the reporter may delete.
func (m *AlertModel) DeleteAlert(ctx context.Context, id, requesterID string) error {
	alert, err := m.getAlert(ctx, id)
	if err != nil {
		return err
	}
	if alert.AuthorID != requesterID {
		return apperrors.Forbidden("Not authorized to delete this alert", "only the reporter can delete an alert")
	}

	if err := m.store.DeleteAlert(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NotFound("Alert", id)
		}
		return apperrors.NewDatabaseError(err)
	}
	return nil
}
