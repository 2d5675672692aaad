package entities

import "time"

// OrganisationContact links a contact to an organisation with a role.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Invariant: at most one relationship per organisation has IsPrimary=true.
// The invariant is maintained by a demote-then-write pass that is not atomic
// with the write it precedes.
type OrganisationContact struct {
	ID             string    `json:"id"`
	OrganisationID string    `json:"organisation_id"`
	ContactID      string    `json:"contact_id"`
	ContactName    string    `json:"contact_name"`
	Role           string    `json:"role,omitempty"`
	IsPrimary      bool      `json:"is_primary"`
	Priority       int       `json:"priority"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
