package interfaces

import (
	"context"

	"bizhub/internal/domain/entities"
)

// OrganisationFilter holds the search term and ordering of an organisation
// listing. Search matches case-insensitively against the name.
type OrganisationFilter struct {
	Search   string
	Industry string
	SortBy   string
	SortDir  string
	Limit    int
}

// OrganisationPatch is a partial update; nil fields are left untouched.
type OrganisationPatch struct {
	Name     *string
	Industry *string
	Website  *string
	Email    *string
	Phone    *string
	Address  *string
	City     *string
	Country  *string
	Notes    *string
}

// IOrganisationRepository abstracts DynamoDB persistence for Organisation.

type IOrganisationRepository interface {
	Create(ctx context.Context, o entities.Organisation) (entities.Organisation, error)
	GetByID(ctx context.Context, id string) (entities.Organisation, error)
	List(ctx context.Context, f OrganisationFilter) ([]entities.Organisation, error)
	Update(ctx context.Context, id string, patch OrganisationPatch) (entities.Organisation, error)
	Delete(ctx context.Context, id string) (bool, error)
}
