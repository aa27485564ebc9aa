package model

import "time"

// Group is a display container that orders parties on an operator's
// board. Groups carry no slot semantics; occupancy invariants live
// entirely on parties.
type Group struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        PartyType `json:"type"`
	Description string    `json:"description,omitempty"`
	PartyIDs    []string  `json:"party_ids"`
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
}

// Business constraints
const (
	MaxGroupNameLength = 50
	MaxGroupDescLength = 200
)

// CreateGroupRequest represents a request to create a group
type CreateGroupRequest struct {
	Name        string    `json:"name" validate:"required,max=50"`
	Type        PartyType `json:"type" validate:"required,oneof=kvm gvg"`
	Description string    `json:"description,omitempty" validate:"max=200"`
}

// UpdateGroupRequest represents a request to update a group. PartyIDs
// replaces the display ordering wholesale when present.
type UpdateGroupRequest struct {
	Name        *string   `json:"name,omitempty" validate:"omitempty,min=1,max=50"`
	Description *string   `json:"description,omitempty" validate:"omitempty,max=200"`
	PartyIDs    *[]string `json:"party_ids,omitempty"`
}
