package types

import "time"

// ItemType describes which lending directions an item supports.
type ItemType string

const (
	ItemTypeLend   ItemType = "lend"
	ItemTypeBorrow ItemType = "borrow"
	ItemTypeBoth   ItemType = "both"
)

// MarketplaceItem is a lendable item offered by a community member.
type MarketplaceItem struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Category          string     `json:"category"`
	ItemType          ItemType   `json:"itemType"`
	Condition         string     `json:"condition"`
	Availability      bool       `json:"availability"`
	DurationMax       *int       `json:"durationMax,omitempty"`
	PricePerDay       float64    `json:"pricePerDay"`
	OwnerID           string     `json:"ownerId"`
	CurrentBorrowerID *string    `json:"currentBorrowerId,omitempty"`
	BorrowedAt        *time.Time `json:"borrowedAt,omitempty"`
	ReturnBy          *time.Time `json:"returnBy,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// MarketplaceItemCreate is the request payload for listing an item.
type MarketplaceItemCreate struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	ItemType    ItemType `json:"itemType" binding:"required"`
	Condition   string   `json:"condition"`
	DurationMax *int     `json:"durationMax"`
	PricePerDay float64  `json:"pricePerDay"`
}

// MarketplaceItemUpdate carries a partial item update. Only non-nil fields are applied.
type MarketplaceItemUpdate struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty"`
	ItemType    *ItemType `json:"itemType,omitempty"`
	Condition   *string   `json:"condition,omitempty"`
	DurationMax *int      `json:"durationMax,omitempty"`
	PricePerDay *float64  `json:"pricePerDay,omitempty"`
}

// MarketplaceFilter restricts ListItems results.
type MarketplaceFilter struct {
	Category      string
	ItemType      ItemType
	AvailableOnly bool
}

// BorrowResult reports the outcome of borrowing an item.
type BorrowResult struct {
	ReturnBy  time.Time `json:"returnBy"`
	TotalCost float64   `json:"totalCost"`
}
