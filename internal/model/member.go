package model

import "time"

// Member represents one guild member on the roster
type Member struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Class     string    `json:"class"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// Business constraints
const (
	MaxMemberNameLength = 40
)

// CreateMemberRequest represents a request to add a member to the roster
type CreateMemberRequest struct {
	Name  string `json:"name" validate:"required,max=40"`
	Class string `json:"class" validate:"required"`
}

// UpdateMemberRequest represents a request to update a roster member
type UpdateMemberRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=40"`
	Class *string `json:"class,omitempty" validate:"omitempty,min=1"`
}
