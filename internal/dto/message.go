package dto

// MessageRequest is the LinkedIn profile payload for POST /personalized-message.
type MessageRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	JobTitle string `json:"job_title" validate:"required,max=150"`
	Company  string `json:"company" validate:"required,max=100"`
	Location string `json:"location" validate:"required,max=100"`
	Summary  string `json:"summary" validate:"required,max=1000"`
}

// MessageResponse is the body returned by the personalized-message endpoint.
// Source identifies which generation tier produced the message.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Source  string `json:"source"`
	Note    string `json:"note,omitempty"`
}
