package request

type CreateWebsiteRequest struct {
	Name           string `json:"name"`
	Domain         string `json:"domain" binding:"required"`
	Status         string `json:"status"`
	OrganisationID string `json:"organisation_id"`
	Notes          string `json:"notes"`
}

// UpdateWebsiteRequest is a partial update; absent fields are left
// untouched. An explicit empty organisation_id clears the organisation link.
type UpdateWebsiteRequest struct {
	Name           *string `json:"name"`
	Domain         *string `json:"domain"`
	Status         *string `json:"status"`
	OrganisationID *string `json:"organisation_id"`
	Notes          *string `json:"notes"`
}
