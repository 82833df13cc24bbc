package handler

import (
	"encoding/json"
	"net/http"

	"github.com/foliosite/backend/internal/schema"
	"github.com/foliosite/backend/internal/service"
)

// SiteContentHandler handles the singleton site configuration.
type SiteContentHandler struct {
	siteContent service.SiteContentService
}

func NewSiteContentHandler(siteContent service.SiteContentService) *SiteContentHandler {
	return &SiteContentHandler{siteContent: siteContent}
}

// Get handles GET /api/site-content. A never-configured site yields {}
// rather than an error.
func (h *SiteContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	content, err := h.siteContent.Get(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if content == nil {
		writeJSON(w, http.StatusOK, struct{}{})
		return
	}
	writeJSON(w, http.StatusOK, content)
}

// Upsert handles PUT /api/admin/site-content. The first call creates the
// singleton; later calls merge the supplied fields in place.
func (h *SiteContentHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var in schema.SiteContentUpdate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	content, err := h.siteContent.Upsert(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, content)
}
