package repository

import (
	"context"

	"item-api/internal/model"
)

// ItemRepository defines the interface for item data access operations.
// Every method runs in its own transaction. A missing row is reported as a
// nil item (or false for Delete) with a nil error; backend failures are
// returned as *model.StorageError.
type ItemRepository interface {
	// Create inserts a new item and returns it with its assigned ID and creation time.
	Create(ctx context.Context, payload model.CreatePayload) (*model.Item, error)

	// GetByID retrieves a single item by its ID.
	GetByID(ctx context.Context, id int64) (*model.Item, error)

	// List retrieves items in insertion order, skipping skip rows and returning at most limit.
	List(ctx context.Context, skip, limit int) ([]model.Item, error)

	// Update merges the fields present in payload into the stored item and refreshes updated_at.
	Update(ctx context.Context, id int64, payload model.UpdatePayload) (*model.Item, error)

	// Delete removes an item. It reports whether a row was deleted.
	Delete(ctx context.Context, id int64) (bool, error)
}
