package interfaces

import (
	"context"

	"bizhub/internal/domain/entities"
)

// ContactFilter holds the search term and ordering of a contact listing.
// Search matches case-insensitively against name and email.
type ContactFilter struct {
	Search  string
	SortBy  string
	SortDir string
	Limit   int
}

// ContactPatch is a partial update; nil fields are left untouched.
type ContactPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Mobile    *string
	JobTitle  *string
	Notes     *string
}

// IContactRepository abstracts DynamoDB persistence for Contact.

type IContactRepository interface {
	Create(ctx context.Context, c entities.Contact) (entities.Contact, error)
	GetByID(ctx context.Context, id string) (entities.Contact, error)
	List(ctx context.Context, f ContactFilter) ([]entities.Contact, error)
	Update(ctx context.Context, id string, patch ContactPatch) (entities.Contact, error)
	Delete(ctx context.Context, id string) (bool, error)
}
