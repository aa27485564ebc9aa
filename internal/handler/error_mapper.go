package handler

import (
	"errors"

	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/model"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring
// consistent HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrMemberNotFound):
		return model.NewNotFoundError("member")
	case errors.Is(err, service.ErrPartyNotFound):
		return model.NewNotFoundError("party")
	case errors.Is(err, service.ErrGroupNotFound):
		return model.NewNotFoundError("group")

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrSlotOccupied),
		errors.Is(err, service.ErrMemberAlreadyAssigned),
		errors.Is(err, service.ErrMemberNotSeated),
		errors.Is(err, service.ErrPositionChanged):
		return model.NewConflictError(err.Error())

	// ===== Bad Request Errors → 400 =====
	case errors.Is(err, service.ErrInvalidPartyType),
		errors.Is(err, service.ErrInvalidSlot),
		errors.Is(err, service.ErrPartyTypeMismatch),
		errors.Is(err, service.ErrSwapMembersIdentical),
		errors.Is(err, service.ErrUnknownClass),
		errors.Is(err, service.ErrMemberNameTooLong),
		errors.Is(err, service.ErrPartyNameTooLong),
		errors.Is(err, service.ErrGroupNameTooLong),
		errors.Is(err, service.ErrGroupDescTooLong),
		errors.Is(err, service.ErrPartyNotInGroup),
		errors.Is(err, service.ErrGroupOrderIncomplete):
		return model.NewBadRequestError(err.Error())

	// ===== Everything else → 500 =====
	default:
		return model.NewInternalError("")
	}
}
