package models

import (
	"testing"

	apperrors "github.com/born2vin/hoskote-backend/errors"
	"github.com/born2vin/hoskote-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSplits_Equal(t *testing.T) {
	participants := []string{"u1", "u2", "u3"}
	req := &types.ExpenseCreate{
		TotalAmount:   90,
		SplitStrategy: types.SplitStrategyEqual,
	}

	splits, err := computeSplits(req, participants)
	require.NoError(t, err)
	require.Len(t, splits, 3)

	var sum float64
	for _, s := range splits {
		assert.InDelta(t, 30.0, s.AmountOwed, splitTolerance)
		sum += s.AmountOwed
	}
	assert.InDelta(t, req.TotalAmount, sum, splitTolerance)
}

func TestComputeSplits_EqualSingleParticipant(t *testing.T) {
	req := &types.ExpenseCreate{
		TotalAmount:   42.50,
		SplitStrategy: types.SplitStrategyEqual,
	}

	splits, err := computeSplits(req, []string{"u1"})
	require.NoError(t, err)
	require.Len(t, splits, 1)
	assert.Equal(t, 42.50, splits[0].AmountOwed)
}

func TestComputeSplits_CustomValid(t *testing.T) {
	req := &types.ExpenseCreate{
		TotalAmount:   90,
		SplitStrategy: types.SplitStrategyCustom,
		CustomSplits: []types.CustomSplit{
			{UserID: "u1", AmountOwed: 30},
			{UserID: "u2", AmountOwed: 60},
		},
	}

	splits, err := computeSplits(req, []string{"u1", "u2"})
	require.NoError(t, err)
	require.Len(t, splits, 2)
	assert.Equal(t, 30.0, splits[0].AmountOwed)
	assert.Equal(t, 60.0, splits[1].AmountOwed)
}

func TestComputeSplits_CustomSumMismatch(t *testing.T) {
	req := &types.ExpenseCreate{
		TotalAmount:   90,
		SplitStrategy: types.SplitStrategyCustom,
		CustomSplits: []types.CustomSplit{
			{UserID: "u1", AmountOwed: 30},
			{UserID: "u2", AmountOwed: 59},
		},
	}

	_, err := computeSplits(req, []string{"u1", "u2"})
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindSplitSumMismatch, appErr.Code)
}

func TestComputeSplits_CustomWithinTolerance(t *testing.T) {
	req := &types.ExpenseCreate{
		TotalAmount:   100,
		SplitStrategy: types.SplitStrategyCustom,
		CustomSplits: []types.CustomSplit{
			{UserID: "u1", AmountOwed: 33.33},
			{UserID: "u2", AmountOwed: 33.33},
			{UserID: "u3", AmountOwed: 33.33},
		},
	}

	// 99.99 vs 100 is within the 0.01 tolerance.
	_, err := computeSplits(req, []string{"u1", "u2", "u3"})
	assert.NoError(t, err)
}

func TestComputeSplits_CustomUserNotParticipant(t *testing.T) {
	req := &types.ExpenseCreate{
		TotalAmount:   50,
		SplitStrategy: types.SplitStrategyCustom,
		CustomSplits: []types.CustomSplit{
			{UserID: "stranger", AmountOwed: 50},
		},
	}

	_, err := computeSplits(req, []string{"u1"})
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindSplitUserNotParticipant, appErr.Code)
}

func TestComputeSplits_CustomMissingInput(t *testing.T) {
	req := &types.ExpenseCreate{
		TotalAmount:   50,
		SplitStrategy: types.SplitStrategyCustom,
	}

	_, err := computeSplits(req, []string{"u1"})
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindUnsupportedStrategy, appErr.Code)
}

func TestComputeSplits_PercentageValid(t *testing.T) {
	req := &types.ExpenseCreate{
		TotalAmount:   200,
		SplitStrategy: types.SplitStrategyPercentage,
		PercentageSplits: []types.PercentageSplit{
			{UserID: "u1", Percentage: 25},
			{UserID: "u2", Percentage: 75},
		},
	}

	splits, err := computeSplits(req, []string{"u1", "u2"})
	require.NoError(t, err)
	require.Len(t, splits, 2)
	assert.Equal(t, 50.0, splits[0].AmountOwed)
	assert.Equal(t, 150.0, splits[1].AmountOwed)
}

func TestComputeSplits_PercentageRoundsToCents(t *testing.T) {
	req := &types.ExpenseCreate{
		TotalAmount:   100,
		SplitStrategy: types.SplitStrategyPercentage,
		PercentageSplits: []types.PercentageSplit{
			{UserID: "u1", Percentage: 33.33},
			{UserID: "u2", Percentage: 33.33},
			{UserID: "u3", Percentage: 33.34},
		},
	}

	splits, err := computeSplits(req, []string{"u1", "u2", "u3"})
	require.NoError(t, err)
	assert.Equal(t, 33.33, splits[0].AmountOwed)
	assert.Equal(t, 33.33, splits[1].AmountOwed)
	assert.Equal(t, 33.34, splits[2].AmountOwed)
}

func TestComputeSplits_PercentageSumMismatch(t *testing.T) {
	req := &types.ExpenseCreate{
		TotalAmount:   100,
		SplitStrategy: types.SplitStrategyPercentage,
		PercentageSplits: []types.PercentageSplit{
			{UserID: "u1", Percentage: 40},
			{UserID: "u2", Percentage: 50},
		},
	}

	_, err := computeSplits(req, []string{"u1", "u2"})
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindPercentageSumMismatch, appErr.Code)
}

func TestComputeSplits_PercentageMissingInput(t *testing.T) {
	req := &types.ExpenseCreate{
		TotalAmount:   100,
		SplitStrategy: types.SplitStrategyPercentage,
	}

	_, err := computeSplits(req, []string{"u1"})
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindUnsupportedStrategy, appErr.Code)
}

func TestComputeSplits_UnknownStrategy(t *testing.T) {
	req := &types.ExpenseCreate{
		TotalAmount:   100,
		SplitStrategy: types.SplitStrategy("weighted"),
	}

	_, err := computeSplits(req, []string{"u1"})
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindUnsupportedStrategy, appErr.Code)
}
