package response

import (
	"time"

	"bizhub/internal/domain/entities"
)

type WebsiteResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name,omitempty"`
	Domain           string    `json:"domain"`
	Status           string    `json:"status"`
	OrganisationID   string    `json:"organisation_id,omitempty"`
	OrganisationName string    `json:"organisation_name,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromWebsite(w entities.Website) WebsiteResponse {
	return WebsiteResponse{
		ID:               w.ID,
		Name:             w.Name,
		Domain:           w.Domain,
		Status:           string(w.Status),
		OrganisationID:   w.OrganisationID,
		OrganisationName: w.OrganisationName,
		Notes:            w.Notes,
		CreatedAt:        w.CreatedAt,
		UpdatedAt:        w.UpdatedAt,
	}
}

func FromWebsites(sites []entities.Website) []WebsiteResponse {
	out := make([]WebsiteResponse, 0, len(sites))
	for _, w := range sites {
		out = append(out, FromWebsite(w))
	}
	return out
}
