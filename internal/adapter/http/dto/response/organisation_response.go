package response

import (
	"time"

	"bizhub/internal/domain/entities"
)

type OrganisationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Industry  string    `json:"industry,omitempty"`
	Website   string    `json:"website,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	Country   string    `json:"country,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromOrganisation(o entities.Organisation) OrganisationResponse {
	return OrganisationResponse{
		ID:        o.ID,
		Name:      o.Name,
		Industry:  o.Industry,
		Website:   o.Website,
		Email:     o.Email,
		Phone:     o.Phone,
		Address:   o.Address,
		City:      o.City,
		Country:   o.Country,
		Notes:     o.Notes,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func FromOrganisations(orgs []entities.Organisation) []OrganisationResponse {
	out := make([]OrganisationResponse, 0, len(orgs))
	for _, o := range orgs {
		out = append(out, FromOrganisation(o))
	}
	return out
}

type OrganisationContactResponse struct {
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

func FromOrganisationContact(rel entities.OrganisationContact) OrganisationContactResponse {
	return OrganisationContactResponse{
		ID:             rel.ID,
		OrganisationID: rel.OrganisationID,
		ContactID:      rel.ContactID,
		ContactName:    rel.ContactName,
		Role:           rel.Role,
		IsPrimary:      rel.IsPrimary,
		Priority:       rel.Priority,
		CreatedAt:      rel.CreatedAt,
		UpdatedAt:      rel.UpdatedAt,
	}
}

func FromOrganisationContacts(rels []entities.OrganisationContact) []OrganisationContactResponse {
	out := make([]OrganisationContactResponse, 0, len(rels))
	for _, rel := range rels {
		out = append(out, FromOrganisationContact(rel))
	}
	return out
}
