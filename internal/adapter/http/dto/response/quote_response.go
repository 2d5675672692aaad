package response

import (
	"time"

	"bizhub/internal/domain/entities"
)

type QuoteItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

type QuoteResponse struct {
	ID               string              `json:"id"`
	QuoteNumber      string              `json:"quote_number"`
	Subject          string              `json:"subject"`
	OrganisationID   string              `json:"organisation_id,omitempty"`
	OrganisationName string              `json:"organisation_name,omitempty"`
	ContactID        string              `json:"contact_id,omitempty"`
	ContactName      string              `json:"contact_name,omitempty"`
	LeadID           string              `json:"lead_id,omitempty"`
	LeadName         string              `json:"lead_name,omitempty"`
	ProjectID        string              `json:"project_id,omitempty"`
	ProjectName      string              `json:"project_name,omitempty"`
	IssueDate        string              `json:"issue_date,omitempty"`
	ExpiryDate       string              `json:"expiry_date,omitempty"`
	Status           string              `json:"status"`
	Items            []QuoteItemResponse `json:"items"`
	Subtotal         float64             `json:"subtotal"`
	Tax              float64             `json:"tax"`
	Total            float64             `json:"total"`
	Notes            string              `json:"notes,omitempty"`
	HTML             string              `json:"html,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func FromQuote(q entities.Quote) QuoteResponse {
	items := make([]QuoteItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, QuoteItemResponse(it))
	}
	return QuoteResponse{
		ID:               q.ID,
		QuoteNumber:      q.QuoteNumber,
		Subject:          q.Subject,
		OrganisationID:   q.OrganisationID,
		OrganisationName: q.OrganisationName,
		ContactID:        q.ContactID,
		ContactName:      q.ContactName,
		LeadID:           q.LeadID,
		LeadName:         q.LeadName,
		ProjectID:        q.ProjectID,
		ProjectName:      q.ProjectName,
		IssueDate:        formatDate(q.IssueDate),
		ExpiryDate:       formatDate(q.ExpiryDate),
		Status:           string(q.Status),
		Items:            items,
		Subtotal:         q.Subtotal,
		Tax:              q.Tax,
		Total:            q.Total,
		Notes:            q.Notes,
		HTML:             q.HTML,
		CreatedAt:        q.CreatedAt,
		UpdatedAt:        q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
