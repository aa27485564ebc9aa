package handler

import (
	"net/http"
	"strings"

	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/model"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/service"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/validator"
)

// PartyHandler handles party HTTP requests: CRUD plus the slot
// mutations assign, remove, swap, and clear
type PartyHandler struct {
	svc      *service.PartyService
	validate *validator.Validator
}

// NewPartyHandler creates a new party handler
func NewPartyHandler(svc *service.PartyService, v *validator.Validator) *PartyHandler {
	return &PartyHandler{svc: svc, validate: v}
}

// Create handles POST /v1/parties
func (h *PartyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePartyRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if err := h.validate.Validate(req); err != nil {
		WriteError(w, model.NewValidationError(fieldErrors(err)))
		return
	}
	req.GroupID = recordID("group", req.GroupID)

	party, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, party)
}

// List handles GET /v1/parties?type={kvm|gvg}. Without a type filter,
// parties of both types are returned.
func (h *PartyHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		parties []model.PartyWithMembers
		err     error
	)
	if t := r.URL.Query().Get("type"); t != "" {
		parties, err = h.svc.ListByType(r.Context(), model.PartyType(t))
	} else {
		parties, err = h.svc.ListAll(r.Context())
	}
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, parties)
}

// Get handles GET /v1/parties/{partyId}
func (h *PartyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := recordID("party", r.PathValue("partyId"))

	party, err := h.svc.GetWithMembers(r.Context(), id)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, party)
}

// Update handles PATCH /v1/parties/{partyId}
func (h *PartyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := recordID("party", r.PathValue("partyId"))

	var req model.UpdatePartyRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if err := h.validate.Validate(req); err != nil {
		WriteError(w, model.NewValidationError(fieldErrors(err)))
		return
	}
	if req.GroupID != nil && *req.GroupID != "" {
		normalized := recordID("group", *req.GroupID)
		req.GroupID = &normalized
	}

	party, err := h.svc.Update(r.Context(), id, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, party)
}

// Delete handles DELETE /v1/parties/{partyId}
func (h *PartyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := recordID("party", r.PathValue("partyId"))

	if err := h.svc.Delete(r.Context(), id); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

// Assign handles POST /v1/parties/assign
func (h *PartyHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req model.AssignMemberRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if err := h.validate.Validate(req); err != nil {
		WriteError(w, model.NewValidationError(fieldErrors(err)))
		return
	}
	req.PartyID = recordID("party", req.PartyID)

	party, err := h.svc.Assign(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, party)
}

// Remove handles POST /v1/parties/remove
func (h *PartyHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req model.RemoveMemberRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if err := h.validate.Validate(req); err != nil {
		WriteError(w, model.NewValidationError(fieldErrors(err)))
		return
	}
	req.PartyID = recordID("party", req.PartyID)

	party, err := h.svc.Remove(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, party)
}

// Swap handles POST /v1/parties/swap
func (h *PartyHandler) Swap(w http.ResponseWriter, r *http.Request) {
	var req model.SwapMembersRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if err := h.validate.Validate(req); err != nil {
		WriteError(w, model.NewValidationError(fieldErrors(err)))
		return
	}
	req.Member1PartyID = recordID("party", req.Member1PartyID)
	req.Member2PartyID = recordID("party", req.Member2PartyID)

	if err := h.svc.Swap(r.Context(), &req); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, map[string]bool{"swapped": true})
}

// Clear handles POST /v1/parties/clear
func (h *PartyHandler) Clear(w http.ResponseWriter, r *http.Request) {
	var req model.ClearPartiesRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if err := h.validate.Validate(req); err != nil {
		WriteError(w, model.NewValidationError(fieldErrors(err)))
		return
	}

	if err := h.svc.ClearAll(r.Context(), &req); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, map[string]bool{"cleared": true})
}

// recordID normalizes a path or payload id to table:key form
func recordID(table, id string) string {
	if id == "" || strings.Contains(id, ":") {
		return id
	}
	return table + ":" + id
}
