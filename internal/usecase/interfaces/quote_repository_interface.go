package interfaces

import (
	"context"
	"time"

	"bizhub/internal/domain/entities"
)

// QuoteLinkField names a linkable foreign record on a quote.
type QuoteLinkField string

const (
	QuoteLinkOrganisation QuoteLinkField = "organisation"
	QuoteLinkContact      QuoteLinkField = "contact"
	QuoteLinkLead         QuoteLinkField = "lead"
	QuoteLinkProject      QuoteLinkField = "project"
)

// QuoteFilter holds the equality filters and ordering of a quote listing.
type QuoteFilter struct {
	Status         string
	OrganisationID string
	SortBy         string
	SortDir        string
	Limit          int
}

// QuotePatch is a partial update; nil fields are left untouched. When Items
// is set the caller must supply the recomputed Subtotal/Tax/Total as well.
type QuotePatch struct {
	Subject    *string
	IssueDate  *time.Time
	ExpiryDate *time.Time
	Status     *entities.QuoteStatus
	Items      *[]entities.QuoteItem
	Subtotal   *float64
	Tax        *float64
	Total      *float64
	Notes      *string
	HTML       *string
}

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// GetByID and Update return a zero-value Quote (empty ID) when the record is
// absent; Delete reports absence through its bool result.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context, f QuoteFilter) ([]entities.Quote, error)
	Update(ctx context.Context, id string, patch QuotePatch) (entities.Quote, error)
	Delete(ctx context.Context, id string) (bool, error)
	SetLink(ctx context.Context, id string, field QuoteLinkField, linkID, linkName string) (entities.Quote, error)
	LatestNumberForYear(ctx context.Context, year int) (string, error)
}
