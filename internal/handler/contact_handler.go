package handler

import (
	"encoding/json"
	"net/http"

	"github.com/foliosite/backend/internal/model"
	"github.com/foliosite/backend/internal/schema"
	"github.com/foliosite/backend/internal/service"
)

// ContactHandler handles the public contact form and the admin inbox.
type ContactHandler struct {
	contacts service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contacts service.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// Submit handles POST /api/contact. name, email and message are required;
// subject is optional.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in schema.ContactCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if errs := schema.Validate(in); errs != nil {
		writeInvalidInput(w, errs)
		return
	}

	submission, err := h.contacts.Submit(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, submission)
}

// AdminList handles GET /api/admin/contacts, newest first.
func (h *ContactHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.contacts.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	// Return [] not null for empty lists
	if submissions == nil {
		submissions = []*model.ContactSubmission{}
	}
	writeJSON(w, http.StatusOK, submissions)
}

// MarkRead handles PUT /api/admin/contacts/{id}/read. Repeating the call
// on an already-read submission succeeds.
func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	if err := h.contacts.MarkRead(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// Delete handles DELETE /api/admin/contacts/{id}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.contacts.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
