package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"bizhub/internal/domain/entities"
	"bizhub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrFieldValueNotFound = errors.New("field value not found")
	ErrFieldValueExists   = errors.New("field value already exists")
	ErrInvalidFieldType   = errors.New("invalid field type")
	ErrInvalidFieldValue  = errors.New("invalid field value")
)

// CreateFieldValueInput carries the fields of a new dropdown option.
type CreateFieldValueInput struct {
	FieldType    string
	Value        string
	Label        string
	DisplayOrder int
	IsActive     bool
}

// IFieldValueUseCase exposes configurable dropdown option operations.
// Value is unique within a field type; duplicates are rejected.

type IFieldValueUseCase interface {
	Create(ctx context.Context, in CreateFieldValueInput) (entities.FieldValue, error)
	ListByType(ctx context.Context, fieldType string) ([]entities.FieldValue, error)
	Update(ctx context.Context, id string, patch interfaces.FieldValuePatch) (entities.FieldValue, error)
	Delete(ctx context.Context, id string) error
}

type FieldValueUseCase struct {
	repo interfaces.IFieldValueRepository
}

var _ IFieldValueUseCase = (*FieldValueUseCase)(nil)

func NewFieldValueUseCase(repo interfaces.IFieldValueRepository) *FieldValueUseCase {
	return &FieldValueUseCase{repo: repo}
}

func (u *FieldValueUseCase) Create(ctx context.Context, in CreateFieldValueInput) (entities.FieldValue, error) {
	in.FieldType = strings.TrimSpace(in.FieldType)
	if in.FieldType == "" {
		return entities.FieldValue{}, ErrInvalidFieldType
	}
	in.Value = strings.TrimSpace(in.Value)
	if in.Value == "" {
		return entities.FieldValue{}, ErrInvalidFieldValue
	}

	existing, err := u.repo.FindByTypeValue(ctx, in.FieldType, in.Value)
	if err != nil {
		return entities.FieldValue{}, err
	}
	if existing.ID != "" {
		return entities.FieldValue{}, ErrFieldValueExists
	}

	label := strings.TrimSpace(in.Label)
	if label == "" {
		label = in.Value
	}

	now := time.Now().UTC()
	v := entities.FieldValue{
		ID:           uuid.NewString(),
		FieldType:    in.FieldType,
		Value:        in.Value,
		Label:        label,
		DisplayOrder: in.DisplayOrder,
		IsActive:     in.IsActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, v)
}

func (u *FieldValueUseCase) ListByType(ctx context.Context, fieldType string) ([]entities.FieldValue, error) {
	fieldType = strings.TrimSpace(fieldType)
	if fieldType == "" {
		return nil, ErrInvalidFieldType
	}
	return u.repo.ListByType(ctx, fieldType)
}

func (u *FieldValueUseCase) Update(ctx context.Context, id string, patch interfaces.FieldValuePatch) (entities.FieldValue, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FieldValue{}, ErrFieldValueNotFound
	}

	if patch.Value != nil {
		value := strings.TrimSpace(*patch.Value)
		if value == "" {
			return entities.FieldValue{}, ErrInvalidFieldValue
		}
		current, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.FieldValue{}, err
		}
		if current.ID == "" {
			return entities.FieldValue{}, ErrFieldValueNotFound
		}
		if value != current.Value {
			existing, err := u.repo.FindByTypeValue(ctx, current.FieldType, value)
			if err != nil {
				return entities.FieldValue{}, err
			}
			if existing.ID != "" {
				return entities.FieldValue{}, ErrFieldValueExists
			}
		}
		patch.Value = &value
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.FieldValue{}, err
	}
	if updated.ID == "" {
		return entities.FieldValue{}, ErrFieldValueNotFound
	}
	return updated, nil
}

func (u *FieldValueUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrFieldValueNotFound
	}
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrFieldValueNotFound
	}
	return nil
}
