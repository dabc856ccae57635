package model

import "time"

// Item represents a catalogue item persisted in the items table.
type Item struct {
	ID          int64      `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Description *string    `json:"description,omitempty" db:"description"`
	Price       float64    `json:"price" db:"price"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// Field limits shared by the schema and the validation layer.
const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
)

// Pagination defaults and bounds for item listing.
const (
	DefaultListSkip  = 0
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// ListParams holds the pagination window for listing items.
type ListParams struct {
	Skip  int `json:"skip" validate:"gte=0"`
	Limit int `json:"limit" validate:"gte=1,lte=1000"`
}

// DefaultListParams returns the pagination window used when the client sends none.
func DefaultListParams() ListParams {
	return ListParams{Skip: DefaultListSkip, Limit: DefaultListLimit}
}
