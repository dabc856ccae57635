package model

import (
	"bytes"
	"encoding/json"
)

// CreatePayload represents the request payload for creating an item.
// Price is a pointer so that an explicit zero is distinguishable from a missing value.
type CreatePayload struct {
	Name        string   `json:"name" validate:"required,min=1,max=100"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=500"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
}

// UpdatePayload represents a partial update of an item.
// A nil field was not sent by the client and must not overwrite stored data.
type UpdatePayload struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=500"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`

	// DescriptionSet is true when the client sent "description", including an explicit null
	// which clears the stored description.
	DescriptionSet bool `json:"-"`
}

// UnmarshalJSON decodes the payload while recording which keys were present.
func (p *UpdatePayload) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	// name and price are NOT NULL columns, so an explicit null is rejected here
	// rather than being mistaken for an absent field.
	nullFields := map[string]string{}
	for _, key := range []string{"name", "price"} {
		if value, ok := raw[key]; ok && isNull(value) {
			nullFields[key] = "must not be null"
		}
	}
	if len(nullFields) > 0 {
		return NewValidationError(nullFields)
	}

	type plain UpdatePayload
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	*p = UpdatePayload(decoded)
	_, p.DescriptionSet = raw["description"]
	return nil
}

// IsEmpty reports whether the payload carries no field changes.
func (p UpdatePayload) IsEmpty() bool {
	return p.Name == nil && p.Price == nil && !p.DescriptionSet
}

// Merge applies the fields present in the payload to item and returns the result.
// UpdatedAt is left untouched; the store refreshes it on write.
func (p UpdatePayload) Merge(item Item) Item {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.DescriptionSet {
		if p.Description == nil {
			item.Description = nil
		} else {
			description := *p.Description
			item.Description = &description
		}
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	return item
}

func isNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
