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
	ErrContactNotFound    = errors.New("contact not found")
	ErrInvalidContactID   = errors.New("invalid contact id")
	ErrInvalidContactName = errors.New("invalid contact name")
)

// CreateContactInput carries the fields of a new contact.
type CreateContactInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Mobile    string
	JobTitle  string
	Notes     string
}

// IContactUseCase exposes contact operations.

type IContactUseCase interface {
	Create(ctx context.Context, in CreateContactInput) (entities.Contact, error)
	GetByID(ctx context.Context, id string) (entities.Contact, error)
	List(ctx context.Context, f interfaces.ContactFilter) ([]entities.Contact, error)
	Update(ctx context.Context, id string, patch interfaces.ContactPatch) (entities.Contact, error)
	Delete(ctx context.Context, id string) error
}

type ContactUseCase struct {
	repo interfaces.IContactRepository
}

var _ IContactUseCase = (*ContactUseCase)(nil)

func NewContactUseCase(repo interfaces.IContactRepository) *ContactUseCase {
	return &ContactUseCase{repo: repo}
}

func (u *ContactUseCase) Create(ctx context.Context, in CreateContactInput) (entities.Contact, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	if in.FirstName == "" && in.LastName == "" {
		return entities.Contact{}, ErrInvalidContactName
	}

	now := time.Now().UTC()
	c := entities.Contact{
		ID:        uuid.NewString(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Mobile:    strings.TrimSpace(in.Mobile),
		JobTitle:  strings.TrimSpace(in.JobTitle),
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, c)
}

func (u *ContactUseCase) GetByID(ctx context.Context, id string) (entities.Contact, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contact{}, ErrInvalidContactID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Contact{}, err
	}
	if c.ID == "" {
		return entities.Contact{}, ErrContactNotFound
	}
	return c, nil
}

func (u *ContactUseCase) List(ctx context.Context, f interfaces.ContactFilter) ([]entities.Contact, error) {
	if f.Limit < 0 {
		f.Limit = 0
	}
	return u.repo.List(ctx, f)
}

func (u *ContactUseCase) Update(ctx context.Context, id string, patch interfaces.ContactPatch) (entities.Contact, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contact{}, ErrInvalidContactID
	}
	if patch.FirstName != nil && patch.LastName != nil &&
		strings.TrimSpace(*patch.FirstName) == "" && strings.TrimSpace(*patch.LastName) == "" {
		return entities.Contact{}, ErrInvalidContactName
	}
	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.Contact{}, err
	}
	if updated.ID == "" {
		return entities.Contact{}, ErrContactNotFound
	}
	return updated, nil
}

func (u *ContactUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidContactID
	}
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrContactNotFound
	}
	return nil
}
