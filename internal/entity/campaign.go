package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a campaign.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
	StatusDeleted  Status = "DELETED"
)

// Valid reports whether the value is a known lifecycle state.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusDeleted:
		return true
	}
	return false
}

// AssignableOnUpdate reports whether the status may be set through a partial
// update. DELETED is terminal and only reachable through the delete operation.
func (s Status) AssignableOnUpdate() bool {
	return s == StatusActive || s == StatusInactive
}

// Campaign represents an outreach campaign targeting LinkedIn leads.
type Campaign struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Leads       []string  `json:"leads"`
	AccountIDs  []string  `json:"accountIDs"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// LeadCount returns the number of leads attached to the campaign.
func (c *Campaign) LeadCount() int {
	return len(c.Leads)
}

// MarshalJSON adds the derived leadCount field, which is never stored.
func (c Campaign) MarshalJSON() ([]byte, error) {
	type alias Campaign
	return json.Marshal(struct {
		alias
		LeadCount int `json:"leadCount"`
	}{
		alias:     alias(c),
		LeadCount: len(c.Leads),
	})
}
