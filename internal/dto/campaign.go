package dto

// CreateCampaignRequest carries the payload for POST /campaigns.
type CreateCampaignRequest struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Description string   `json:"description" validate:"required,max=1000"`
	Leads       []string `json:"leads" validate:"omitempty,dive,linkedin_url"`
	AccountIDs  []string `json:"accountIDs"`
}

// UpdateCampaignRequest carries the partial payload for PUT /campaigns/:id.
// Every field is optional but must satisfy its constraint when present;
// DELETED is not settable here, only through the delete operation.
type UpdateCampaignRequest struct {
	Name        *string   `json:"name" validate:"omitempty,max=200"`
	Description *string   `json:"description" validate:"omitempty,max=1000"`
	Status      *string   `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	Leads       *[]string `json:"leads" validate:"omitempty,dive,linkedin_url"`
	AccountIDs  *[]string `json:"accountIDs"`
}

// Empty reports whether the update carries no recognized field at all.
func (r *UpdateCampaignRequest) Empty() bool {
	return r.Name == nil && r.Description == nil && r.Status == nil &&
		r.Leads == nil && r.AccountIDs == nil
}

// ListFilter controls optional pagination of campaign listings. The zero
// value returns the full set, newest first.
type ListFilter struct {
	Page    int
	PerPage int
}
