package interfaces

import (
	"context"

	"bizhub/internal/domain/entities"
)

// OrganisationContactPatch is a partial update; nil fields are left
// untouched.
type OrganisationContactPatch struct {
	Role      *string
	IsPrimary *bool
	Priority  *int
}

// IOrganisationContactRepository abstracts DynamoDB persistence for the
// organisation-contact relationship.
//
// DemotePrimaries clears is_primary on every relationship of the
// organisation except exceptID (may be empty) and returns how many records
// it touched. It is a scan-then-update pass, not a transaction.

type IOrganisationContactRepository interface {
	Create(ctx context.Context, rel entities.OrganisationContact) (entities.OrganisationContact, error)
	GetByID(ctx context.Context, id string) (entities.OrganisationContact, error)
	ListByOrganisation(ctx context.Context, organisationID string) ([]entities.OrganisationContact, error)
	Update(ctx context.Context, id string, patch OrganisationContactPatch) (entities.OrganisationContact, error)
	Delete(ctx context.Context, id string) (bool, error)
	DemotePrimaries(ctx context.Context, organisationID, exceptID string) (int, error)
}
