package service

import (
	"context"

	"item-api/internal/model"
	"item-api/internal/repository"
	"item-api/internal/validation"

	"github.com/rs/zerolog"
)

// itemService implements ItemService.
type itemService struct {
	itemRepo  repository.ItemRepository
	validator *validation.Validator
	logger    zerolog.Logger
}

// NewItemService creates a new item service.
func NewItemService(itemRepo repository.ItemRepository, validator *validation.Validator, logger zerolog.Logger) ItemService {
	return &itemService{
		itemRepo:  itemRepo,
		validator: validator,
		logger:    logger.With().Str("service", "item").Logger(),
	}
}

// Create validates the payload and stores a new item.
func (s *itemService) Create(ctx context.Context, payload model.CreatePayload) (*model.Item, error) {
	if err := s.validator.Struct(payload); err != nil {
		s.logger.Debug().Err(err).Msg("create payload rejected")
		return nil, err
	}

	return s.itemRepo.Create(ctx, payload)
}

// GetByID retrieves a single item by ID.
func (s *itemService) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	return s.itemRepo.GetByID(ctx, id)
}

// List validates the pagination window and retrieves a page of items.
func (s *itemService) List(ctx context.Context, params model.ListParams) ([]model.Item, error) {
	if err := s.validator.Struct(params); err != nil {
		s.logger.Debug().Err(err).
			Int("skip", params.Skip).
			Int("limit", params.Limit).
			Msg("pagination rejected")
		return nil, err
	}

	return s.itemRepo.List(ctx, params.Skip, params.Limit)
}

// Update validates the payload and applies it to an existing item.
func (s *itemService) Update(ctx context.Context, id int64, payload model.UpdatePayload) (*model.Item, error) {
	if err := s.validator.Struct(payload); err != nil {
		s.logger.Debug().Err(err).Int64("item_id", id).Msg("update payload rejected")
		return nil, err
	}

	if payload.IsEmpty() {
		s.logger.Debug().Int64("item_id", id).Msg("empty update only refreshes updated_at")
	}

	return s.itemRepo.Update(ctx, id, payload)
}

// Delete removes an item by ID and reports whether it existed.
func (s *itemService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.itemRepo.Delete(ctx, id)
}
