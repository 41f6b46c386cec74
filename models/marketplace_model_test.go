package models

import (
	"context"
	"testing"
	"time"

	apperrors "github.com/born2vin/hoskote-backend/errors"
	"github.com/born2vin/hoskote-backend/internal/store"
	"github.com/born2vin/hoskote-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItemFixture(id, owner string) *types.MarketplaceItem {
	return &types.MarketplaceItem{
		ID:           id,
		Title:        "Pressure washer",
		ItemType:     types.ItemTypeLend,
		PricePerDay:  15,
		OwnerID:      owner,
		Availability: true,
	}
}

func newMarketplaceModelAt(s store.MarketplaceStore, now time.Time) *MarketplaceModel {
	m := NewMarketplaceModel(s)
	m.now = func() time.Time { return now }
	return m
}

func TestBorrowItem_ComputesCostAndReturnDate(t *testing.T) {
	itemStore := new(mockMarketplaceStore)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	model := newMarketplaceModelAt(itemStore, now)
	ctx := context.Background()

	itemStore.On("GetItem", ctx, "item-1").Return(newItemFixture("item-1", "owner"), nil)
	itemStore.On("MarkBorrowed", ctx, "item-1", "borrower", now, now.AddDate(0, 0, 3)).Return(nil)

	result, err := model.BorrowItem(ctx, "item-1", "borrower", 3)
	require.NoError(t, err)
	assert.Equal(t, 45.0, result.TotalCost)
	assert.Equal(t, now.AddDate(0, 0, 3), result.ReturnBy)
	itemStore.AssertExpectations(t)
}

func TestBorrowItem_OwnItem(t *testing.T) {
	itemStore := new(mockMarketplaceStore)
	model := NewMarketplaceModel(itemStore)
	ctx := context.Background()

	itemStore.On("GetItem", ctx, "item-1").Return(newItemFixture("item-1", "owner"), nil)

	_, err := model.BorrowItem(ctx, "item-1", "owner", 2)
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ValidationError, appErr.Type)
	itemStore.AssertNotCalled(t, "MarkBorrowed")
}

func TestBorrowItem_Unavailable(t *testing.T) {
	itemStore := new(mockMarketplaceStore)
	model := NewMarketplaceModel(itemStore)
	ctx := context.Background()

	item := newItemFixture("item-1", "owner")
	item.Availability = false
	itemStore.On("GetItem", ctx, "item-1").Return(item, nil)

	_, err := model.BorrowItem(ctx, "item-1", "borrower", 2)
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ValidationError, appErr.Type)
}

func TestBorrowItem_ExceedsMaxDuration(t *testing.T) {
	itemStore := new(mockMarketplaceStore)
	model := NewMarketplaceModel(itemStore)
	ctx := context.Background()

	maxDays := 5
	item := newItemFixture("item-1", "owner")
	item.DurationMax = &maxDays
	itemStore.On("GetItem", ctx, "item-1").Return(item, nil)

	_, err := model.BorrowItem(ctx, "item-1", "borrower", 10)
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ValidationError, appErr.Type)
}

func TestBorrowItem_NotOfferedForLending(t *testing.T) {
	itemStore := new(mockMarketplaceStore)
	model := NewMarketplaceModel(itemStore)
	ctx := context.Background()

	item := newItemFixture("item-1", "owner")
	item.ItemType = types.ItemTypeBorrow
	itemStore.On("GetItem", ctx, "item-1").Return(item, nil)

	_, err := model.BorrowItem(ctx, "item-1", "borrower", 2)
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ValidationError, appErr.Type)
}

func TestBorrowItem_LostRace(t *testing.T) {
	itemStore := new(mockMarketplaceStore)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	model := newMarketplaceModelAt(itemStore, now)
	ctx := context.Background()

	itemStore.On("GetItem", ctx, "item-1").Return(newItemFixture("item-1", "owner"), nil)
	itemStore.On("MarkBorrowed", ctx, "item-1", "borrower", now, now.AddDate(0, 0, 2)).
		Return(store.ErrNotAvailable)

	_, err := model.BorrowItem(ctx, "item-1", "borrower", 2)
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ValidationError, appErr.Type)
}

func TestReturnItem_OnlyCurrentBorrower(t *testing.T) {
	itemStore := new(mockMarketplaceStore)
	model := NewMarketplaceModel(itemStore)
	ctx := context.Background()

	borrower := "borrower"
	item := newItemFixture("item-1", "owner")
	item.Availability = false
	item.CurrentBorrowerID = &borrower
	itemStore.On("GetItem", ctx, "item-1").Return(item, nil)

	err := model.ReturnItem(ctx, "item-1", "someone-else")
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ForbiddenError, appErr.Type)
	itemStore.AssertNotCalled(t, "MarkReturned")
}

func TestReturnItem_Success(t *testing.T) {
	itemStore := new(mockMarketplaceStore)
	model := NewMarketplaceModel(itemStore)
	ctx := context.Background()

	borrower := "borrower"
	item := newItemFixture("item-1", "owner")
	item.Availability = false
	item.CurrentBorrowerID = &borrower
	itemStore.On("GetItem", ctx, "item-1").Return(item, nil)
	itemStore.On("MarkReturned", ctx, "item-1", "borrower").Return(nil)

	err := model.ReturnItem(ctx, "item-1", "borrower")
	assert.NoError(t, err)
	itemStore.AssertExpectations(t)
}

func TestDeleteItem_RefusedWhileBorrowed(t *testing.T) {
	itemStore := new(mockMarketplaceStore)
	model := NewMarketplaceModel(itemStore)
	ctx := context.Background()

	borrower := "borrower"
	item := newItemFixture("item-1", "owner")
	item.CurrentBorrowerID = &borrower
	itemStore.On("GetItem", ctx, "item-1").Return(item, nil)

	err := model.DeleteItem(ctx, "item-1", "owner")
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ValidationError, appErr.Type)
	itemStore.AssertNotCalled(t, "DeleteItem")
}
