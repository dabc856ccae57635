package repository

import (
	"context"
	"errors"

	"item-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const itemColumns = `id, name, description, price, created_at, updated_at`

// itemRepository implements the ItemRepository interface using PostgreSQL.
type itemRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewItemRepository creates a new PostgreSQL-backed item repository.
func NewItemRepository(pool *pgxpool.Pool, logger zerolog.Logger) ItemRepository {
	return &itemRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "item").Logger(),
	}
}

// Create inserts a new item and returns the persisted row.
func (r *itemRepository) Create(ctx context.Context, payload model.CreatePayload) (*model.Item, error) {
	query := `
		INSERT INTO items (name, description, price)
		VALUES ($1, $2, $3)
		RETURNING ` + itemColumns

	var price float64
	if payload.Price != nil {
		price = *payload.Price
	}

	var item model.Item
	err := withTx(ctx, r.pool, readWrite, r.logger, func(tx pgx.Tx) error {
		return scanItem(tx.QueryRow(ctx, query, payload.Name, payload.Description, price), &item)
	})
	if err != nil {
		err = storageError("create item", err)
		r.logger.Error().Err(err).Str("name", payload.Name).Msg("failed to create item")
		return nil, err
	}

	r.logger.Info().
		Int64("item_id", item.ID).
		Str("name", item.Name).
		Msg("item created")

	return &item, nil
}

// GetByID retrieves a single item by its ID.
func (r *itemRepository) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	var item model.Item
	found := false
	err := withTx(ctx, r.pool, readOnly, r.logger, func(tx pgx.Tx) error {
		err := scanItem(tx.QueryRow(ctx, query, id), &item)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		found = err == nil
		return err
	})
	if err != nil {
		err = storageError("get item", err)
		r.logger.Error().Err(err).Int64("item_id", id).Msg("failed to query item")
		return nil, err
	}

	if !found {
		r.logger.Debug().Int64("item_id", id).Msg("item not found")
		return nil, nil
	}

	return &item, nil
}

// List retrieves items ordered by ID with offset pagination.
func (r *itemRepository) List(ctx context.Context, skip, limit int) ([]model.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items
		ORDER BY id
		OFFSET $1 LIMIT $2
	`

	items := []model.Item{}
	err := withTx(ctx, r.pool, readOnly, r.logger, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, skip, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var item model.Item
			if err := scanItem(rows, &item); err != nil {
				return err
			}
			items = append(items, item)
		}

		return rows.Err()
	})
	if err != nil {
		err = storageError("list items", err)
		r.logger.Error().Err(err).
			Int("skip", skip).
			Int("limit", limit).
			Msg("failed to query items")
		return nil, err
	}

	r.logger.Debug().
		Int("count", len(items)).
		Int("skip", skip).
		Int("limit", limit).
		Msg("retrieved items")

	return items, nil
}

// Update locks the row, merges the present payload fields and writes them back.
func (r *itemRepository) Update(ctx context.Context, id int64, payload model.UpdatePayload) (*model.Item, error) {
	selectQuery := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 FOR UPDATE`
	updateQuery := `
		UPDATE items
		SET name = $2, description = $3, price = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + itemColumns

	var item model.Item
	found := false
	err := withTx(ctx, r.pool, readWrite, r.logger, func(tx pgx.Tx) error {
		var current model.Item
		err := scanItem(tx.QueryRow(ctx, selectQuery, id), &current)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true

		merged := payload.Merge(current)
		return scanItem(tx.QueryRow(ctx, updateQuery, id, merged.Name, merged.Description, merged.Price), &item)
	})
	if err != nil {
		err = storageError("update item", err)
		r.logger.Error().Err(err).Int64("item_id", id).Msg("failed to update item")
		return nil, err
	}

	if !found {
		r.logger.Debug().Int64("item_id", id).Msg("item not found for update")
		return nil, nil
	}

	r.logger.Info().
		Int64("item_id", item.ID).
		Str("name", item.Name).
		Msg("item updated")

	return &item, nil
}

// Delete removes an item by its ID.
func (r *itemRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM items WHERE id = $1 RETURNING name`

	var name string
	deleted := false
	err := withTx(ctx, r.pool, readWrite, r.logger, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, query, id).Scan(&name)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		deleted = err == nil
		return err
	})
	if err != nil {
		err = storageError("delete item", err)
		r.logger.Error().Err(err).Int64("item_id", id).Msg("failed to delete item")
		return false, err
	}

	if !deleted {
		r.logger.Debug().Int64("item_id", id).Msg("item not found for delete")
		return false, nil
	}

	r.logger.Info().
		Int64("item_id", id).
		Str("name", name).
		Msg("item deleted")

	return true, nil
}

func scanItem(row pgx.Row, item *model.Item) error {
	return row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
}
