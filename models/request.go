package models

import "time"

// Status is the lifecycle state of a staff request.
type Status string

const (
	StatusSubmitted Status = "Submitted"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
)

// Valid reports whether s is one of the three lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusSubmitted, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// Request is a staff request as confirmed by the remote request store. Local
// copies are always replaced wholesale by the store's canonical record after
// a create or status patch, never merged.
type Request struct {
	ID        string    `json:"id"`
	UserID    int       `json:"userId"`
	Type      string    `json:"type"`
	Comment   string    `json:"comment"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Summary holds the per-status counts shown on the HR dashboard.
type Summary struct {
	Total     int `json:"total"`
	Submitted int `json:"submitted"`
	Approved  int `json:"approved"`
	Rejected  int `json:"rejected"`
}
