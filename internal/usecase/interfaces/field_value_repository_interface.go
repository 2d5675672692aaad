package interfaces

import (
	"context"

	"bizhub/internal/domain/entities"
)

// FieldValuePatch is a partial update; nil fields are left untouched.
type FieldValuePatch struct {
	Value        *string
	Label        *string
	DisplayOrder *int
	IsActive     *bool
}

// IFieldValueRepository abstracts DynamoDB persistence for configurable
// dropdown options.
//
// FindByTypeValue returns a zero-value FieldValue when no option with that
// (type, value) pair exists; it backs the duplicate check on create/update.

type IFieldValueRepository interface {
	Create(ctx context.Context, v entities.FieldValue) (entities.FieldValue, error)
	GetByID(ctx context.Context, id string) (entities.FieldValue, error)
	ListByType(ctx context.Context, fieldType string) ([]entities.FieldValue, error)
	Update(ctx context.Context, id string, patch FieldValuePatch) (entities.FieldValue, error)
	Delete(ctx context.Context, id string) (bool, error)
	FindByTypeValue(ctx context.Context, fieldType, value string) (entities.FieldValue, error)
}
