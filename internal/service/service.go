package service

import (
	"context"

	"item-api/internal/model"
)

// ItemService defines operations for item management.
// Lookups that find no row return a nil item (or false) and a nil error.
type ItemService interface {
	// Create validates the payload and stores a new item.
	Create(ctx context.Context, payload model.CreatePayload) (*model.Item, error)

	// GetByID retrieves a single item by ID.
	GetByID(ctx context.Context, id int64) (*model.Item, error)

	// List validates the pagination window and retrieves a page of items.
	List(ctx context.Context, params model.ListParams) ([]model.Item, error)

	// Update validates the payload and applies it to an existing item.
	Update(ctx context.Context, id int64, payload model.UpdatePayload) (*model.Item, error)

	// Delete removes an item by ID and reports whether it existed.
	Delete(ctx context.Context, id int64) (bool, error)
}
