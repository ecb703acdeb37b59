package validation

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/outflo/campaign-manager/internal/dto"
)

var (
	linkedInProfileURL = regexp.MustCompile(`^https?://(?:www\.)?linkedin\.com/in/[\w-]+/?$`)
	sliceIndexExpr     = regexp.MustCompile(`\[\d+\]`)

	validate = newValidator()
)

// Error reports the first violated input constraint.
type Error struct {
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

func newError(message string) *Error { return &Error{Message: message} }

// messages maps struct field violations to the exact wording surfaced to API
// callers. Keyed by <Struct>.<Field>.<tag>.
var messages = map[string]string{
	"CreateCampaignRequest.Name.required":        "Campaign name is required",
	"CreateCampaignRequest.Name.max":             "Campaign name cannot exceed 200 characters",
	"CreateCampaignRequest.Description.required": "Campaign description is required",
	"CreateCampaignRequest.Description.max":      "Campaign description cannot exceed 1000 characters",
	"CreateCampaignRequest.Leads.linkedin_url":   "Invalid LinkedIn profile URL format",

	"UpdateCampaignRequest.Name.max":           "Campaign name cannot exceed 200 characters",
	"UpdateCampaignRequest.Description.max":    "Campaign description cannot exceed 1000 characters",
	"UpdateCampaignRequest.Status.oneof":       "Status must be either ACTIVE or INACTIVE",
	"UpdateCampaignRequest.Leads.linkedin_url": "Invalid LinkedIn profile URL format",

	"MessageRequest.Name.required":     "Name is required",
	"MessageRequest.Name.max":          "Name cannot exceed 100 characters",
	"MessageRequest.JobTitle.required": "Job title is required",
	"MessageRequest.JobTitle.max":      "Job title cannot exceed 150 characters",
	"MessageRequest.Company.required":  "Company is required",
	"MessageRequest.Company.max":       "Company cannot exceed 100 characters",
	"MessageRequest.Location.required": "Location is required",
	"MessageRequest.Location.max":      "Location cannot exceed 100 characters",
	"MessageRequest.Summary.required":  "Summary is required",
	"MessageRequest.Summary.max":       "Summary cannot exceed 1000 characters",
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("linkedin_url", func(fl validator.FieldLevel) bool {
		return linkedInProfileURL.MatchString(fl.Field().String())
	})
	return v
}

// ValidateCreateCampaign normalizes and validates a create payload in place.
// Leads and account IDs default to empty sequences when omitted.
func ValidateCreateCampaign(req *dto.CreateCampaignRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	req.AccountIDs = trimAll(req.AccountIDs)

	if err := validate.Struct(req); err != nil {
		return firstViolation(err)
	}

	if req.Leads == nil {
		req.Leads = []string{}
	}
	if req.AccountIDs == nil {
		req.AccountIDs = []string{}
	}
	return nil
}

// ValidateUpdateCampaign normalizes and validates a partial update in place.
// At least one recognized field must be present.
func ValidateUpdateCampaign(req *dto.UpdateCampaignRequest) error {
	if req.Empty() {
		return newError("At least one field must be provided for update")
	}

	if req.Name != nil {
		*req.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		*req.Description = strings.TrimSpace(*req.Description)
	}
	if req.AccountIDs != nil {
		*req.AccountIDs = trimAll(*req.AccountIDs)
	}

	if err := validate.Struct(req); err != nil {
		return firstViolation(err)
	}
	return nil
}

// ValidateMessageRequest normalizes and validates a LinkedIn profile payload
// in place.
func ValidateMessageRequest(req *dto.MessageRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.JobTitle = strings.TrimSpace(req.JobTitle)
	req.Company = strings.TrimSpace(req.Company)
	req.Location = strings.TrimSpace(req.Location)
	req.Summary = strings.TrimSpace(req.Summary)

	if err := validate.Struct(req); err != nil {
		return firstViolation(err)
	}
	return nil
}

// firstViolation maps the first failed constraint to its API-facing message.
func firstViolation(err error) *Error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return newError("invalid input")
	}

	fe := verrs[0]
	key := sliceIndexExpr.ReplaceAllString(fe.StructNamespace(), "") + "." + fe.Tag()
	if msg, ok := messages[key]; ok {
		return newError(msg)
	}
	return newError(strings.ToLower(fe.StructField()) + " is invalid")
}

func trimAll(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimSpace(v)
	}
	return out
}
