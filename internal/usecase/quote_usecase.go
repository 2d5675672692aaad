package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"bizhub/internal/domain/entities"
	"bizhub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound       = errors.New("quote not found")
	ErrInvalidQuoteID      = errors.New("invalid quote id")
	ErrInvalidQuoteSubject = errors.New("invalid quote subject")
	ErrInvalidQuoteItems   = errors.New("invalid quote items")
	ErrInvalidQuoteStatus  = errors.New("invalid quote status")
	ErrInvalidQuoteDates   = errors.New("expiry date must be on or after issue date")
	ErrInvalidQuoteLink    = errors.New("invalid quote link")
	ErrQuoteLinkNotFound   = errors.New("quote link target not found")
)

// CreateQuoteInput carries the fields of a new quote. Item ids and amounts
// and the three totals are derived server-side; organisation/contact display
// names are resolved from their repositories, lead/project names come from
// the caller (no lead or project collection is owned by this service).
type CreateQuoteInput struct {
	Subject        string
	OrganisationID string
	ContactID      string
	LeadID         string
	LeadName       string
	ProjectID      string
	ProjectName    string
	IssueDate      time.Time
	ExpiryDate     time.Time
	Status         entities.QuoteStatus
	Items          []entities.QuoteItem
	Notes          string
	HTML           string
}

// UpdateQuoteInput is a partial update; nil fields are left untouched.
// Setting Items recomputes per-item amounts and the quote totals.
type UpdateQuoteInput struct {
	Subject    *string
	IssueDate  *time.Time
	ExpiryDate *time.Time
	Status     *entities.QuoteStatus
	Items      *[]entities.QuoteItem
	Notes      *string
	HTML       *string
}

// IQuoteUseCase exposes quote operations.
//
// Link covers link and unlink for every foreign record: an empty linkID
// clears the link. For organisation and contact links the denormalized
// display name is resolved by id; for lead and project links the caller
// supplies it.

type IQuoteUseCase interface {
	Create(ctx context.Context, in CreateQuoteInput) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context, f interfaces.QuoteFilter) ([]entities.Quote, error)
	Update(ctx context.Context, id string, in UpdateQuoteInput) (entities.Quote, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
	Send(ctx context.Context, id string) (entities.Quote, error)
	Link(ctx context.Context, id string, field interfaces.QuoteLinkField, linkID, linkName string) (entities.Quote, error)
}

type QuoteUseCase struct {
	quotes        interfaces.IQuoteRepository
	organisations interfaces.IOrganisationRepository
	contacts      interfaces.IContactRepository
	now           func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(quotes interfaces.IQuoteRepository, organisations interfaces.IOrganisationRepository, contacts interfaces.IContactRepository) *QuoteUseCase {
	return &QuoteUseCase{
		quotes:        quotes,
		organisations: organisations,
		contacts:      contacts,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (u *QuoteUseCase) Create(ctx context.Context, in CreateQuoteInput) (entities.Quote, error) {
	in.Subject = strings.TrimSpace(in.Subject)
	if in.Subject == "" {
		return entities.Quote{}, ErrInvalidQuoteSubject
	}
	if err := validateItems(in.Items); err != nil {
		return entities.Quote{}, err
	}
	if !in.ExpiryDate.IsZero() && !in.IssueDate.IsZero() && in.ExpiryDate.Before(in.IssueDate) {
		return entities.Quote{}, ErrInvalidQuoteDates
	}

	status := in.Status
	if status == "" {
		status = entities.QuoteStatusDraft
	}
	if !status.Valid() {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}

	now := u.now()
	q := entities.Quote{
		ID:          uuid.NewString(),
		QuoteNumber: u.nextQuoteNumber(ctx, now),
		Subject:     in.Subject,
		LeadID:      strings.TrimSpace(in.LeadID),
		LeadName:    strings.TrimSpace(in.LeadName),
		ProjectID:   strings.TrimSpace(in.ProjectID),
		ProjectName: strings.TrimSpace(in.ProjectName),
		IssueDate:   in.IssueDate,
		ExpiryDate:  in.ExpiryDate,
		Status:      status,
		Items:       normalizeItems(in.Items),
		Notes:       in.Notes,
		HTML:        in.HTML,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	q.Recalculate()

	if orgID := strings.TrimSpace(in.OrganisationID); orgID != "" {
		org, err := u.organisations.GetByID(ctx, orgID)
		if err != nil {
			return entities.Quote{}, err
		}
		if org.ID == "" {
			return entities.Quote{}, ErrQuoteLinkNotFound
		}
		q.OrganisationID = org.ID
		q.OrganisationName = org.Name
	}
	if contactID := strings.TrimSpace(in.ContactID); contactID != "" {
		contact, err := u.contacts.GetByID(ctx, contactID)
		if err != nil {
			return entities.Quote{}, err
		}
		if contact.ID == "" {
			return entities.Quote{}, ErrQuoteLinkNotFound
		}
		q.ContactID = contact.ID
		q.ContactName = contact.DisplayName()
	}

	return u.quotes.Create(ctx, q)
}

// nextQuoteNumber produces the next Q-YYYY-NNNN number for the current
// year. Numbering errors never fail a create: any lookup or parse failure
// degrades to a timestamp-derived fallback. The read-then-write is not
// transactional, so concurrent creates can leave gaps or collide.
func (u *QuoteUseCase) nextQuoteNumber(ctx context.Context, now time.Time) string {
	year := now.Year()
	latest, err := u.quotes.LatestNumberForYear(ctx, year)
	if err != nil {
		log.Printf("[quote][usecase] quote number lookup failed year=%d err=%v", year, err)
		return entities.FallbackQuoteNumber(year, now)
	}
	if latest == "" {
		return entities.FormatQuoteNumber(year, 1)
	}
	seq, ok := entities.ParseQuoteNumberSeq(latest)
	if !ok {
		log.Printf("[quote][usecase] latest quote number %q has no counter", latest)
		return entities.FallbackQuoteNumber(year, now)
	}
	return entities.FormatQuoteNumber(year, seq+1)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.quotes.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) List(ctx context.Context, f interfaces.QuoteFilter) ([]entities.Quote, error) {
	if f.Limit < 0 {
		f.Limit = 0
	}
	return u.quotes.List(ctx, f)
}

func (u *QuoteUseCase) Update(ctx context.Context, id string, in UpdateQuoteInput) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if in.Subject != nil && strings.TrimSpace(*in.Subject) == "" {
		return entities.Quote{}, ErrInvalidQuoteSubject
	}
	if in.Status != nil && !in.Status.Valid() {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}
	if in.IssueDate != nil || in.ExpiryDate != nil {
		var issue, expiry time.Time
		if in.IssueDate != nil {
			issue = *in.IssueDate
		}
		if in.ExpiryDate != nil {
			expiry = *in.ExpiryDate
		}
		// A single-sided date change is bounded by the stored counterpart.
		if in.IssueDate == nil || in.ExpiryDate == nil {
			current, err := u.quotes.GetByID(ctx, id)
			if err != nil {
				return entities.Quote{}, err
			}
			if current.ID == "" {
				return entities.Quote{}, ErrQuoteNotFound
			}
			if in.IssueDate == nil {
				issue = current.IssueDate
			}
			if in.ExpiryDate == nil {
				expiry = current.ExpiryDate
			}
		}
		if !issue.IsZero() && !expiry.IsZero() && expiry.Before(issue) {
			return entities.Quote{}, ErrInvalidQuoteDates
		}
	}

	patch := interfaces.QuotePatch{
		Subject:    in.Subject,
		IssueDate:  in.IssueDate,
		ExpiryDate: in.ExpiryDate,
		Status:     in.Status,
		Notes:      in.Notes,
		HTML:       in.HTML,
	}
	if in.Items != nil {
		if err := validateItems(*in.Items); err != nil {
			return entities.Quote{}, err
		}
		items := normalizeItems(*in.Items)
		subtotal, tax, total := entities.CalculateTotals(items)
		patch.Items = &items
		patch.Subtotal = &subtotal
		patch.Tax = &tax
		patch.Total = &total
	}

	updated, err := u.quotes.Update(ctx, id, patch)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

func (u *QuoteUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}
	found, err := u.quotes.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrQuoteNotFound
	}
	return nil
}

func (u *QuoteUseCase) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if !status.Valid() {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}
	updated, err := u.quotes.Update(ctx, id, interfaces.QuotePatch{Status: &status})
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

// Send marks the quote as sent. Delivery itself is delegated to an external
// channel; the hub only records the status change.
func (u *QuoteUseCase) Send(ctx context.Context, id string) (entities.Quote, error) {
	return u.UpdateStatus(ctx, id, entities.QuoteStatusSent)
}

func (u *QuoteUseCase) Link(ctx context.Context, id string, field interfaces.QuoteLinkField, linkID, linkName string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	linkID = strings.TrimSpace(linkID)
	linkName = strings.TrimSpace(linkName)

	switch field {
	case interfaces.QuoteLinkOrganisation:
		if linkID != "" {
			org, err := u.organisations.GetByID(ctx, linkID)
			if err != nil {
				return entities.Quote{}, err
			}
			if org.ID == "" {
				return entities.Quote{}, ErrQuoteLinkNotFound
			}
			linkName = org.Name
		}
	case interfaces.QuoteLinkContact:
		if linkID != "" {
			contact, err := u.contacts.GetByID(ctx, linkID)
			if err != nil {
				return entities.Quote{}, err
			}
			if contact.ID == "" {
				return entities.Quote{}, ErrQuoteLinkNotFound
			}
			linkName = contact.DisplayName()
		}
	case interfaces.QuoteLinkLead, interfaces.QuoteLinkProject:
		// No lead/project collection in this service; the caller provides
		// the display name.
	default:
		return entities.Quote{}, ErrInvalidQuoteLink
	}

	updated, err := u.quotes.SetLink(ctx, id, field, linkID, linkName)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

func validateItems(items []entities.QuoteItem) error {
	for _, it := range items {
		if strings.TrimSpace(it.Description) == "" {
			return ErrInvalidQuoteItems
		}
		if it.Quantity <= 0 || it.UnitPrice < 0 {
			return ErrInvalidQuoteItems
		}
	}
	return nil
}

func normalizeItems(items []entities.QuoteItem) []entities.QuoteItem {
	out := make([]entities.QuoteItem, len(items))
	copy(out, items)
	for i := range out {
		if strings.TrimSpace(out[i].ID) == "" {
			out[i].ID = uuid.NewString()
		}
		out[i].Amount = entities.ItemAmount(out[i].Quantity, out[i].UnitPrice)
	}
	return out
}
