package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/born2vin/hoskote-backend/errors"
	"github.com/born2vin/hoskote-backend/internal/store"
	"github.com/born2vin/hoskote-backend/logger"
	"github.com/born2vin/hoskote-backend/types"
)

// MarketplaceModel handles item lending and borrowing.
type MarketplaceModel struct {
	store store.MarketplaceStore
	now   func() time.Time
}

func NewMarketplaceModel(marketplaceStore store.MarketplaceStore) *MarketplaceModel {
	return &MarketplaceModel{
		store: marketplaceStore,
		now:   time.Now,
	}
}

func (m *MarketplaceModel) CreateItem(ctx context.Context, ownerID string, req *types.MarketplaceItemCreate) (*types.MarketplaceItem, error) {
	if req.PricePerDay < 0 {
		return nil, apperrors.ValidationFailed("Price per day cannot be negative",
			fmt.Sprintf("got %.2f", req.PricePerDay))
	}

	itemType := req.ItemType
	if itemType == "" {
		itemType = types.ItemTypeLend
	}

	item := &types.MarketplaceItem{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		ItemType:     itemType,
		Condition:    req.Condition,
		PricePerDay:  req.PricePerDay,
		DurationMax:  req.DurationMax,
		OwnerID:      ownerID,
		Availability: true,
	}

	id, err := m.store.CreateItem(ctx, item)
	if err != nil {
		logger.GetLogger().Errorw("Failed to create marketplace item", "owner", ownerID, "error", err)
		return nil, apperrors.NewDatabaseError(err)
	}
	return m.getItem(ctx, id)
}

func (m *MarketplaceModel) GetItem(ctx context.Context, id string) (*types.MarketplaceItem, error) {
	return m.getItem(ctx, id)
}

func (m *MarketplaceModel) getItem(ctx context.Context, id string) (*types.MarketplaceItem, error) {
	item, err := m.store.GetItem(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Marketplace item", id)
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return item, nil
}

func (m *MarketplaceModel) ListItems(ctx context.Context, filter types.MarketplaceFilter, offset, limit int) (*types.PaginatedResponse, error) {
	items, total, err := m.store.ListItems(ctx, filter, offset, limit)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	return &types.PaginatedResponse{
		Data: items,
		Pagination: types.Pagination{
			Limit:  limit,
			Offset: offset,
			Total:  total,
		},
	}, nil
}

// ListOwnedItems returns items listed by the given user.
func (m *MarketplaceModel) ListOwnedItems(ctx context.Context, ownerID string, offset, limit int) ([]*types.MarketplaceItem, error) {
	items, err := m.store.ListOwnedItems(ctx, ownerID, offset, limit)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return items, nil
}

// ListBorrowedItems returns items the given user currently holds.
func (m *MarketplaceModel) ListBorrowedItems(ctx context.Context, borrowerID string) ([]*types.MarketplaceItem, error) {
	items, err := m.store.ListBorrowedItems(ctx, borrowerID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return items, nil
}

// UpdateItem applies a partial update. Only the owner may update.
func (m *MarketplaceModel) UpdateItem(ctx context.Context, id, requesterID string, update *types.MarketplaceItemUpdate) (*types.MarketplaceItem, error) {
	item, err := m.getItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != requesterID {
		return nil, apperrors.Forbidden("Not authorized to update this item", "only the owner can update an item")
	}

	updated, err := m.store.UpdateItem(ctx, id, update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Marketplace item", id)
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return updated, nil
}

// BorrowItem marks an item as borrowed for the given number of days and
// reports the agreed return date and total cost.
func (m *MarketplaceModel) BorrowItem(ctx context.Context, id, borrowerID string, days int) (*types.BorrowResult, error) {
	if days <= 0 {
		return nil, apperrors.ValidationFailed("Borrow duration must be positive",
			fmt.Sprintf("got %d days", days))
	}

	item, err := m.getItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if item.OwnerID == borrowerID {
		return nil, apperrors.ValidationFailed("Cannot borrow your own item", "")
	}
	if !item.Availability {
		return nil, apperrors.ValidationFailed("Item is not available for borrowing", "")
	}
	if item.ItemType != types.ItemTypeLend && item.ItemType != types.ItemTypeBoth {
		return nil, apperrors.ValidationFailed("Item is not offered for lending",
			fmt.Sprintf("item type is %q", item.ItemType))
	}
	if item.DurationMax != nil && days > *item.DurationMax {
		return nil, apperrors.ValidationFailed("Borrow duration exceeds the item's maximum",
			fmt.Sprintf("requested %d days, maximum is %d", days, *item.DurationMax))
	}

	borrowedAt := m.now().UTC()
	returnBy := borrowedAt.AddDate(0, 0, days)

	if err := m.store.MarkBorrowed(ctx, id, borrowerID, borrowedAt, returnBy); err != nil {
		if errors.Is(err, store.ErrNotAvailable) {
			return nil, apperrors.ValidationFailed("Item is not available for borrowing", "")
		}
		logger.GetLogger().Errorw("Failed to borrow item", "itemId", id, "borrower", borrowerID, "error", err)
		return nil, apperrors.NewDatabaseError(err)
	}

	return &types.BorrowResult{
		ReturnBy:  returnBy,
		TotalCost: item.PricePerDay * float64(days),
	}, nil
}

// ReturnItem marks a borrowed item as returned. Only the current borrower
// may return it.
func (m *MarketplaceModel) ReturnItem(ctx context.Context, id, borrowerID string) error {
	item, err := m.getItem(ctx, id)
	if err != nil {
		return err
	}

	if item.CurrentBorrowerID == nil || *item.CurrentBorrowerID != borrowerID {
		return apperrors.Forbidden("Not authorized to return this item", "only the current borrower can return an item")
	}

	if err := m.store.MarkReturned(ctx, id, borrowerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NotFound("Marketplace item", id)
		}
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

// DeleteItem removes a listing. Only the owner may delete, and not while the
// item is out on loan.
func (m *MarketplaceModel) DeleteItem(ctx context.Context, id, requesterID string) error {
	item, err := m.getItem(ctx, id)
	if err != nil {
		return err
	}
	if item.OwnerID != requesterID {
		return apperrors.Forbidden("Not authorized to delete this item", "only the owner can delete an item")
	}
	if item.CurrentBorrowerID != nil {
		return apperrors.ValidationFailed("Cannot delete an item that is currently borrowed", "")
	}

	if err := m.store.DeleteItem(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NotFound("Marketplace item", id)
		}
		return apperrors.NewDatabaseError(err)
	}
	return nil
}
