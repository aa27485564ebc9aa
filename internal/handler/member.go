package handler

import (
	"net/http"
	"strconv"

	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/model"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/service"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/validator"
)

// MemberHandler handles roster HTTP requests
type MemberHandler struct {
	svc      *service.MemberService
	catalog  *service.ClassCatalog
	validate *validator.Validator
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(svc *service.MemberService, catalog *service.ClassCatalog, v *validator.Validator) *MemberHandler {
	return &MemberHandler{svc: svc, catalog: catalog, validate: v}
}

// Create handles POST /v1/members
func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateMemberRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if err := h.validate.Validate(req); err != nil {
		WriteError(w, model.NewValidationError(fieldErrors(err)))
		return
	}

	member, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, member)
}

// List handles GET /v1/members
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.svc.List(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, members)
}

// Get handles GET /v1/members/{memberId}
func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := memberID(w, r)
	if !ok {
		return
	}

	member, err := h.svc.Get(r.Context(), id)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, member)
}

// Update handles PATCH /v1/members/{memberId}
func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := memberID(w, r)
	if !ok {
		return
	}

	var req model.UpdateMemberRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if err := h.validate.Validate(req); err != nil {
		WriteError(w, model.NewValidationError(fieldErrors(err)))
		return
	}

	member, err := h.svc.Update(r.Context(), id, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, member)
}

// Delete handles DELETE /v1/members/{memberId}
func (h *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := memberID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

// Unassigned handles GET /v1/members/unassigned?type={kvm|gvg}
func (h *MemberHandler) Unassigned(w http.ResponseWriter, r *http.Request) {
	partyType := model.PartyType(r.URL.Query().Get("type"))
	if partyType == "" {
		WriteError(w, model.NewBadRequestError("type query parameter is required"))
		return
	}

	members, err := h.svc.Unassigned(r.Context(), partyType)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, members)
}

// Classes handles GET /v1/classes
func (h *MemberHandler) Classes(w http.ResponseWriter, r *http.Request) {
	type classInfo struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}

	names := h.catalog.Classes()
	classes := make([]classInfo, 0, len(names))
	for _, name := range names {
		classes = append(classes, classInfo{Name: name, Color: h.catalog.Color(name)})
	}
	WriteData(w, http.StatusOK, classes)
}

// memberID parses the path id; member ids are positive integers.
func memberID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("memberId"), 10, 64)
	if err != nil || id < 1 {
		WriteError(w, model.NewBadRequestError("invalid member id"))
		return 0, false
	}
	return id, true
}

// fieldErrors converts validator failures into response field errors
func fieldErrors(err error) []model.FieldError {
	fields := validator.Fields(err)
	out := make([]model.FieldError, 0, len(fields))
	for field, msg := range fields {
		out = append(out, model.FieldError{Field: field, Message: msg})
	}
	return out
}
