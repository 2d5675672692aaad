package request

type CreateOrganisationRequest struct {
	Name     string `json:"name" binding:"required"`
	Industry string `json:"industry"`
	Website  string `json:"website"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Notes    string `json:"notes"`
}

// UpdateOrganisationRequest is a partial update; absent fields are left
// untouched.
type UpdateOrganisationRequest struct {
	Name     *string `json:"name"`
	Industry *string `json:"industry"`
	Website  *string `json:"website"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	Country  *string `json:"country"`
	Notes    *string `json:"notes"`
}

// LinkOrganisationContactRequest is the payload of
// POST /organisations/:id/contacts.
type LinkOrganisationContactRequest struct {
	ContactID string `json:"contact_id" binding:"required"`
	Role      string `json:"role"`
	IsPrimary bool   `json:"is_primary"`
	Priority  int    `json:"priority"`
}

// UpdateOrganisationContactRequest is the payload of
// PATCH /organisation-contacts/:id.
type UpdateOrganisationContactRequest struct {
	Role      *string `json:"role"`
	IsPrimary *bool   `json:"is_primary"`
	Priority  *int    `json:"priority"`
}
