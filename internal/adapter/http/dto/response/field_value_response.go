package response

import (
	"time"

	"bizhub/internal/domain/entities"
)

type FieldValueResponse struct {
	ID           string    `json:"id"`
	FieldType    string    `json:"field_type"`
	Value        string    `json:"value"`
	Label        string    `json:"label"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromFieldValue(v entities.FieldValue) FieldValueResponse {
	return FieldValueResponse{
		ID:           v.ID,
		FieldType:    v.FieldType,
		Value:        v.Value,
		Label:        v.Label,
		DisplayOrder: v.DisplayOrder,
		IsActive:     v.IsActive,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func FromFieldValues(values []entities.FieldValue) []FieldValueResponse {
	out := make([]FieldValueResponse, 0, len(values))
	for _, v := range values {
		out = append(out, FromFieldValue(v))
	}
	return out
}
