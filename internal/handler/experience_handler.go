package handler

import (
	"encoding/json"
	"net/http"

	"github.com/foliosite/backend/internal/model"
	"github.com/foliosite/backend/internal/schema"
	"github.com/foliosite/backend/internal/service"
)

// ExperienceHandler handles the public experience listing and admin CRUD.
type ExperienceHandler struct {
	experiences service.ExperienceService
}

func NewExperienceHandler(experiences service.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{experiences: experiences}
}

// List handles GET /api/experiences.
func (h *ExperienceHandler) List(w http.ResponseWriter, r *http.Request) {
	experiences, err := h.experiences.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if experiences == nil {
		experiences = []*model.Experience{}
	}
	writeJSON(w, http.StatusOK, experiences)
}

// Create handles POST /api/admin/experiences.
func (h *ExperienceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in schema.ExperienceCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if errs := schema.Validate(in); errs != nil {
		writeInvalidInput(w, errs)
		return
	}

	experience, err := h.experiences.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, experience)
}

// Update handles PUT /api/admin/experiences/{id} as a partial update.
func (h *ExperienceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in schema.ExperienceUpdate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if errs := schema.Validate(in); errs != nil {
		writeInvalidInput(w, errs)
		return
	}

	experience, err := h.experiences.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, experience)
}

// Delete handles DELETE /api/admin/experiences/{id}.
func (h *ExperienceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.experiences.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
