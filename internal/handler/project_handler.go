package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/foliosite/backend/internal/model"
	"github.com/foliosite/backend/internal/repository"
	"github.com/foliosite/backend/internal/schema"
	"github.com/foliosite/backend/internal/service"
)

// ProjectHandler handles the public project reads and the admin CRUD.
type ProjectHandler struct {
	projects service.ProjectService
}

// NewProjectHandler creates a ProjectHandler with the given service.
func NewProjectHandler(projects service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// List handles GET /api/projects. The list is unfiltered; published and
// featured flags are applied by the presentation layer.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	// Return [] not null for empty lists
	if projects == nil {
		projects = []*model.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

// GetBySlug handles GET /api/projects/{slug}.
func (h *ProjectHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	project, err := h.projects.GetBySlug(r.Context(), r.PathValue("slug"))
	if errors.Is(err, repository.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// Create handles POST /api/admin/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in schema.ProjectCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if errs := schema.Validate(in); errs != nil {
		writeInvalidInput(w, errs)
		return
	}

	project, err := h.projects.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// Update handles PUT /api/admin/projects/{id} as a partial update.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in schema.ProjectUpdate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if errs := schema.Validate(in); errs != nil {
		writeInvalidInput(w, errs)
		return
	}

	project, err := h.projects.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// Delete handles DELETE /api/admin/projects/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.projects.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
