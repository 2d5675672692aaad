package entities

import "time"

// WebsiteStatus mirrors the hub's website lifecycle dropdown.

type WebsiteStatus string

const (
	WebsiteStatusActive      WebsiteStatus = "active"
	WebsiteStatusDevelopment WebsiteStatus = "development"
	WebsiteStatusArchived    WebsiteStatus = "archived"
)

func (s WebsiteStatus) Valid() bool {
	switch s {
	case WebsiteStatusActive, WebsiteStatusDevelopment, WebsiteStatusArchived:
		return true
	}
	return false
}

// Website is a managed site record persisted in the websites table.
//
// Storage model (DynamoDB):
//   - PK: id
type Website struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Domain           string        `json:"domain"`
	Status           WebsiteStatus `json:"status"`
	OrganisationID   string        `json:"organisation_id,omitempty"`
	OrganisationName string        `json:"organisation_name,omitempty"`
	Notes            string        `json:"notes,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
