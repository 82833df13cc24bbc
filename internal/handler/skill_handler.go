package handler

import (
	"encoding/json"
	"net/http"

	"github.com/foliosite/backend/internal/model"
	"github.com/foliosite/backend/internal/schema"
	"github.com/foliosite/backend/internal/service"
)

// SkillHandler handles the public skill listing and admin CRUD.
type SkillHandler struct {
	skills service.SkillService
}

func NewSkillHandler(skills service.SkillService) *SkillHandler {
	return &SkillHandler{skills: skills}
}

// List handles GET /api/skills. Rows come back ordered by category then
// display order; grouping happens client-side.
func (h *SkillHandler) List(w http.ResponseWriter, r *http.Request) {
	skills, err := h.skills.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if skills == nil {
		skills = []*model.Skill{}
	}
	writeJSON(w, http.StatusOK, skills)
}

// Create handles POST /api/admin/skills.
func (h *SkillHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in schema.SkillCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if errs := schema.Validate(in); errs != nil {
		writeInvalidInput(w, errs)
		return
	}

	skill, err := h.skills.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, skill)
}

// Update handles PUT /api/admin/skills/{id} as a partial update.
func (h *SkillHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in schema.SkillUpdate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if errs := schema.Validate(in); errs != nil {
		writeInvalidInput(w, errs)
		return
	}

	skill, err := h.skills.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, skill)
}

// Delete handles DELETE /api/admin/skills/{id}.
func (h *SkillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.skills.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
