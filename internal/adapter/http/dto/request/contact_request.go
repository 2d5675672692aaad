package request

type CreateContactRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone"`
	Mobile    string `json:"mobile"`
	JobTitle  string `json:"job_title"`
	Notes     string `json:"notes"`
}

// UpdateContactRequest is a partial update; absent fields are left
// untouched.
type UpdateContactRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone"`
	Mobile    *string `json:"mobile"`
	JobTitle  *string `json:"job_title"`
	Notes     *string `json:"notes"`
}
