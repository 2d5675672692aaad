package request

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// dateLayout is the wire format for issue/expiry dates coming from forms.
const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

type QuoteItemRequest struct {
	ID          string  `json:"id"`
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" binding:"gte=0"`
}

// CreateQuoteRequest is the payload of POST /quotes. Item amounts and the
// quote totals are computed server-side; any amounts sent by the client are
// ignored.
type CreateQuoteRequest struct {
	Subject        string             `json:"subject" binding:"required"`
	OrganisationID string             `json:"organisation_id"`
	ContactID      string             `json:"contact_id"`
	LeadID         string             `json:"lead_id"`
	LeadName       string             `json:"lead_name"`
	ProjectID      string             `json:"project_id"`
	ProjectName    string             `json:"project_name"`
	IssueDate      string             `json:"issue_date"`
	ExpiryDate     string             `json:"expiry_date"`
	Status         string             `json:"status"`
	Items          []QuoteItemRequest `json:"items" binding:"dive"`
	Notes          string             `json:"notes"`
	HTML           string             `json:"html"`
}

func (r CreateQuoteRequest) ParseDates() (issue, expiry time.Time, err error) {
	issue, err = parseDate(r.IssueDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	expiry, err = parseDate(r.ExpiryDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return issue, expiry, nil
}

// UpdateQuoteRequest is the payload of PATCH /quotes/:id. Absent fields are
// left untouched.
type UpdateQuoteRequest struct {
	Subject    *string             `json:"subject"`
	IssueDate  *string             `json:"issue_date"`
	ExpiryDate *string             `json:"expiry_date"`
	Status     *string             `json:"status"`
	Items      *[]QuoteItemRequest `json:"items" binding:"omitempty,dive"`
	Notes      *string             `json:"notes"`
	HTML       *string             `json:"html"`
}

func (r UpdateQuoteRequest) ParseIssueDate() (*time.Time, error) {
	if r.IssueDate == nil {
		return nil, nil
	}
	t, err := parseDate(*r.IssueDate)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r UpdateQuoteRequest) ParseExpiryDate() (*time.Time, error) {
	if r.ExpiryDate == nil {
		return nil, nil
	}
	t, err := parseDate(*r.ExpiryDate)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// QuoteStatusRequest is the payload of PATCH /quotes/:id/status.
type QuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// QuoteLinkRequest is the payload of the quote link endpoints. An empty ID
// unlinks. Name is only honoured for lead and project links; organisation
// and contact names are resolved server-side.
type QuoteLinkRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
