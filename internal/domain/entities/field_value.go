package entities

import "time"

// FieldValue is one configurable dropdown option, e.g. an industry or a lead
// source. Options are grouped by FieldType; Value must be unique within a
// type.
//
// Storage model (DynamoDB):
//   - PK: id
//   - field_type attribute groups options per dropdown
type FieldValue struct {
	ID           string    `json:"id"`
	FieldType    string    `json:"field_type"`
	Value        string    `json:"value"`
	Label        string    `json:"label"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
