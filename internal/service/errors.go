package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Roster Errors =====
var (
	ErrMemberNotFound    = errors.New("member not found")
	ErrMemberNameTooLong = errors.New("member name exceeds maximum length")
	ErrUnknownClass      = errors.New("unknown class")
)

// ===== Party Errors =====
var (
	ErrPartyNotFound          = errors.New("party not found")
	ErrPartyNameTooLong       = errors.New("party name exceeds maximum length")
	ErrInvalidPartyType       = errors.New("invalid party type")
	ErrPartyTypeMismatch      = errors.New("party does not belong to the requested type")
	ErrInvalidSlot            = errors.New("slot index out of range")
	ErrSlotOccupied           = errors.New("slot is already occupied")
	ErrMemberAlreadyAssigned  = errors.New("member is already assigned to a party of this type")
	ErrMemberNotSeated        = errors.New("member is not seated where the request says")
	ErrPositionChanged        = errors.New("party composition changed, reload and retry")
	ErrSwapMembersIdentical   = errors.New("cannot swap a member with itself")
)

// ===== Group Errors =====
var (
	ErrGroupNotFound       = errors.New("group not found")
	ErrGroupNameTooLong    = errors.New("group name exceeds maximum length")
	ErrGroupDescTooLong    = errors.New("group description exceeds maximum length")
	ErrPartyNotInGroup     = errors.New("party does not belong to this group")
	ErrGroupOrderIncomplete = errors.New("ordering must list every party in the group exactly once")
)
