package request

type CreateFieldValueRequest struct {
	Value        string `json:"value" binding:"required"`
	Label        string `json:"label"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

// Active defaults new options to visible unless the client says otherwise.
func (r CreateFieldValueRequest) Active() bool {
	if r.IsActive == nil {
		return true
	}
	return *r.IsActive
}

// UpdateFieldValueRequest is a partial update; absent fields are left
// untouched.
type UpdateFieldValueRequest struct {
	Value        *string `json:"value"`
	Label        *string `json:"label"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}
