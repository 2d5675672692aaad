package interfaces

import (
	"context"

	"bizhub/internal/domain/entities"
)

// WebsiteFilter holds the equality filters and ordering of a website
// listing.
type WebsiteFilter struct {
	OrganisationID string
	Status         string
	SortBy         string
	SortDir        string
	Limit          int
}

// WebsitePatch is a partial update; nil fields are left untouched.
// OrganisationID/OrganisationName travel together: an empty OrganisationID
// with a non-nil pointer clears the link.
type WebsitePatch struct {
	Name             *string
	Domain           *string
	Status           *entities.WebsiteStatus
	OrganisationID   *string
	OrganisationName *string
	Notes            *string
}

// IWebsiteRepository abstracts DynamoDB persistence for Website.

type IWebsiteRepository interface {
	Create(ctx context.Context, w entities.Website) (entities.Website, error)
	GetByID(ctx context.Context, id string) (entities.Website, error)
	List(ctx context.Context, f WebsiteFilter) ([]entities.Website, error)
	Update(ctx context.Context, id string, patch WebsitePatch) (entities.Website, error)
	Delete(ctx context.Context, id string) (bool, error)
}
