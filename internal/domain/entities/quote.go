package entities

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// QuoteStatus is a flat status enum. There is no enforced transition graph:
// any status may be set from any other, matching the hub's status dropdown.

type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusExpired  QuoteStatus = "expired"
)

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusExpired:
		return true
	}
	return false
}

// TaxRate is the flat tax applied to every quote subtotal.
const TaxRate = 0.10

// QuoteItem is one line of a quote. Amount is always derived:
// amount = round2(quantity * unit_price).
type QuoteItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

// Quote is a priced proposal document persisted in the quotes table.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Organisation/contact/lead/project links carry a denormalized display name
// next to the foreign id. The name is a read-model projection: it can go
// stale and is reconciled only when the link is rewritten.
//
// Subtotal/Tax/Total are derived from Items. Per-item amounts are rounded to
// 2 decimals; subtotal, tax and total are not rounded further.
type Quote struct {
	ID               string      `json:"id"`
	QuoteNumber      string      `json:"quote_number"`
	Subject          string      `json:"subject"`
	OrganisationID   string      `json:"organisation_id,omitempty"`
	OrganisationName string      `json:"organisation_name,omitempty"`
	ContactID        string      `json:"contact_id,omitempty"`
	ContactName      string      `json:"contact_name,omitempty"`
	LeadID           string      `json:"lead_id,omitempty"`
	LeadName         string      `json:"lead_name,omitempty"`
	ProjectID        string      `json:"project_id,omitempty"`
	ProjectName      string      `json:"project_name,omitempty"`
	IssueDate        time.Time   `json:"issue_date"`
	ExpiryDate       time.Time   `json:"expiry_date"`
	Status           QuoteStatus `json:"status"`
	Items            []QuoteItem `json:"items"`
	Subtotal         float64     `json:"subtotal"`
	Tax              float64     `json:"tax"`
	Total            float64     `json:"total"`
	Notes            string      `json:"notes,omitempty"`
	HTML             string      `json:"html,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ItemAmount computes the rounded line amount for a quantity and unit price.
func ItemAmount(quantity, unitPrice float64) float64 {
	return round2(quantity * unitPrice)
}

// CalculateTotals derives subtotal, tax and total from the given items.
// Per-item amounts must already be set (see ItemAmount); the subtotal is the
// plain sum of amounts and tax/total are not rounded again.
func CalculateTotals(items []QuoteItem) (subtotal, tax, total float64) {
	for _, it := range items {
		subtotal += it.Amount
	}
	tax = subtotal * TaxRate
	total = subtotal + tax
	return subtotal, tax, total
}

// Recalculate recomputes every item amount and the three derived totals.
func (q *Quote) Recalculate() {
	for i := range q.Items {
		q.Items[i].Amount = ItemAmount(q.Items[i].Quantity, q.Items[i].UnitPrice)
	}
	q.Subtotal, q.Tax, q.Total = CalculateTotals(q.Items)
}

// FormatQuoteNumber renders the canonical quote number, e.g. Q-2025-0042.
func FormatQuoteNumber(year, seq int) string {
	return fmt.Sprintf("Q-%d-%04d", year, seq)
}

// QuoteNumberPrefix is the shared prefix of every quote number in a year,
// e.g. "Q-2025-".
func QuoteNumberPrefix(year int) string {
	return fmt.Sprintf("Q-%d-", year)
}

// ParseQuoteNumberSeq extracts the trailing counter of a quote number.
// Returns false for numbers that do not end in a parseable counter (for
// example timestamp-fallback numbers).
func ParseQuoteNumberSeq(number string) (int, bool) {
	idx := strings.LastIndex(number, "-")
	if idx < 0 || idx == len(number)-1 {
		return 0, false
	}
	seq, err := strconv.Atoi(number[idx+1:])
	if err != nil || seq < 0 {
		return 0, false
	}
	return seq, true
}

// FallbackQuoteNumber builds a timestamp-derived, unique-ish quote number
// used when the sequential lookup fails. Creation must never fail on a
// numbering read error, so gaps and the non-sequential shape are accepted.
func FallbackQuoteNumber(year int, now time.Time) string {
	return fmt.Sprintf("Q-%d-T%d", year, now.UnixMilli()%1_000_000_000)
}
