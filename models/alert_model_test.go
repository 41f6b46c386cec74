package models

import (
	"context"
	"testing"

	apperrors "github.com/born2vin/hoskote-backend/errors"
	"github.com/born2vin/hoskote-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateAlert_DefaultsSeverity(t *testing.T) {
	alertStore := new(mockAlertStore)
	model := NewAlertModel(alertStore)
	ctx := context.Background()

	alertStore.On("CreateAlert", ctx, mock.MatchedBy(func(a *types.Alert) bool {
		return a.Severity == types.SeverityMedium && a.Status == types.AlertStatusActive && a.AuthorID == "u1"
	})).Return("alert-1", nil)
	alertStore.On("GetAlert", ctx, "alert-1").Return(&types.Alert{
		ID:       "alert-1",
		Severity: types.SeverityMedium,
		Status:   types.AlertStatusActive,
		AuthorID: "u1",
	}, nil)

	alert, err := model.CreateAlert(ctx, "u1", &types.AlertCreate{
		Title:       "Water main burst",
		Description: "Near gate 2",
		AlertType:   "infrastructure",
		Location:    "Gate 2",
	})
	require.NoError(t, err)
	assert.Equal(t, "alert-1", alert.ID)
	alertStore.AssertExpectations(t)
}

func TestResolveAlert_OnlyReporter(t *testing.T) {
	alertStore := new(mockAlertStore)
	model := NewAlertModel(alertStore)
	ctx := context.Background()

	alertStore.On("GetAlert", ctx, "alert-1").Return(&types.Alert{
		ID:       "alert-1",
		AuthorID: "reporter",
		Status:   types.AlertStatusActive,
	}, nil)

	_, err := model.ResolveAlert(ctx, "alert-1", "someone-else")
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ForbiddenError, appErr.Type)
	alertStore.AssertNotCalled(t, "UpdateAlert")
}

func TestResolveAlert_SetsResolvedStatus(t *testing.T) {
	alertStore := new(mockAlertStore)
	model := NewAlertModel(alertStore)
	ctx := context.Background()

	alertStore.On("GetAlert", ctx, "alert-1").Return(&types.Alert{
		ID:       "alert-1",
		AuthorID: "reporter",
		Status:   types.AlertStatusActive,
	}, nil)
	alertStore.On("UpdateAlert", ctx, "alert-1", mock.MatchedBy(func(u *types.AlertUpdate) bool {
		return u.Status != nil && *u.Status == types.AlertStatusResolved
	})).Return(&types.Alert{
		ID:       "alert-1",
		AuthorID: "reporter",
		Status:   types.AlertStatusResolved,
	}, nil)

	alert, err := model.ResolveAlert(ctx, "alert-1", "reporter")
	require.NoError(t, err)
	assert.Equal(t, types.AlertStatusResolved, alert.Status)
	alertStore.AssertExpectations(t)
}
