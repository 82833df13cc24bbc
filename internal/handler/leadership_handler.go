package handler

import (
	"encoding/json"
	"net/http"

	"github.com/foliosite/backend/internal/model"
	"github.com/foliosite/backend/internal/schema"
	"github.com/foliosite/backend/internal/service"
)

// LeadershipHandler handles the public leadership listing and admin CRUD.
type LeadershipHandler struct {
	leadership service.LeadershipService
}

func NewLeadershipHandler(leadership service.LeadershipService) *LeadershipHandler {
	return &LeadershipHandler{leadership: leadership}
}

// List handles GET /api/leadership.
func (h *LeadershipHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.leadership.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if entries == nil {
		entries = []*model.Leadership{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// Create handles POST /api/admin/leadership.
func (h *LeadershipHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in schema.LeadershipCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if errs := schema.Validate(in); errs != nil {
		writeInvalidInput(w, errs)
		return
	}

	entry, err := h.leadership.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// Update handles PUT /api/admin/leadership/{id} as a partial update.
func (h *LeadershipHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in schema.LeadershipUpdate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if errs := schema.Validate(in); errs != nil {
		writeInvalidInput(w, errs)
		return
	}

	entry, err := h.leadership.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// Delete handles DELETE /api/admin/leadership/{id}.
func (h *LeadershipHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.leadership.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
