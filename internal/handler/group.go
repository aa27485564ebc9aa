package handler

import (
	"net/http"

	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/model"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/service"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/validator"
)

// GroupHandler handles party group HTTP requests
type GroupHandler struct {
	svc      *service.GroupService
	validate *validator.Validator
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(svc *service.GroupService, v *validator.Validator) *GroupHandler {
	return &GroupHandler{svc: svc, validate: v}
}

// Create handles POST /v1/groups
func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateGroupRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if err := h.validate.Validate(req); err != nil {
		WriteError(w, model.NewValidationError(fieldErrors(err)))
		return
	}

	group, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, group)
}

// List handles GET /v1/groups?type={kvm|gvg}
func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		groups []model.Group
		err    error
	)
	if t := r.URL.Query().Get("type"); t != "" {
		groups, err = h.svc.ListByType(r.Context(), model.PartyType(t))
	} else {
		groups, err = h.svc.ListAll(r.Context())
	}
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, groups)
}

// Get handles GET /v1/groups/{groupId}
func (h *GroupHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := recordID("group", r.PathValue("groupId"))

	group, err := h.svc.Get(r.Context(), id)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, group)
}

// Update handles PATCH /v1/groups/{groupId}
func (h *GroupHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := recordID("group", r.PathValue("groupId"))

	var req model.UpdateGroupRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if err := h.validate.Validate(req); err != nil {
		WriteError(w, model.NewValidationError(fieldErrors(err)))
		return
	}
	if req.PartyIDs != nil {
		normalized := make([]string, len(*req.PartyIDs))
		for i, pid := range *req.PartyIDs {
			normalized[i] = recordID("party", pid)
		}
		req.PartyIDs = &normalized
	}

	group, err := h.svc.Update(r.Context(), id, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, group)
}

// Delete handles DELETE /v1/groups/{groupId}. The group's parties are
// deleted with it.
func (h *GroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := recordID("group", r.PathValue("groupId"))

	if err := h.svc.Delete(r.Context(), id); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}
