package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resumemint/internal/document"
	"github.com/jonathan/resumemint/internal/templates"
)

// SaveDraftRequest is a full draft snapshot for one profile.
type SaveDraftRequest struct {
	Document *document.Document `json:"document" validate:"required"`
	Template string             `json:"template" validate:"required"`
	Premium  bool               `json:"premium"`
}

// Validate validates the SaveDraftRequest using the validator.
func (r *SaveDraftRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// DraftResponse mirrors SaveDraftRequest on the way back out.
type DraftResponse struct {
	Document *document.Document `json:"document"`
	Template string             `json:"template"`
	Premium  bool               `json:"premium"`
}

// handleSaveDraft persists a draft snapshot. Writes are
// last-writer-wins across tabs.
func (s *Server) handleSaveDraft(w http.ResponseWriter, r *http.Request) {
	profile := r.PathValue("profile")

	var req SaveDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "document and template are required")
		return
	}
	if !templates.IsValid(req.Template) {
		s.errorResponse(w, http.StatusBadRequest, "unknown template: "+req.Template)
		return
	}

	if err := s.adapter.Save(r.Context(), profile, req.Document, req.Template, req.Premium); err != nil {
		log.Printf("Error saving draft for %s: %v", profile, err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to save draft")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "saved"})
}

// handleLoadDraft returns the stored draft for a profile, or 404 when
// nothing has been saved yet.
func (s *Server) handleLoadDraft(w http.ResponseWriter, r *http.Request) {
	profile := r.PathValue("profile")

	state, err := s.adapter.Load(r.Context(), profile)
	if err != nil {
		log.Printf("Error loading draft for %s: %v", profile, err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to load draft")
		return
	}
	if state.Document == nil {
		s.errorResponse(w, http.StatusNotFound, "draft not found")
		return
	}

	template := state.TemplateID
	if template == "" {
		template = templates.DefaultTemplate
	}

	s.jsonResponse(w, http.StatusOK, DraftResponse{
		Document: state.Document,
		Template: template,
		Premium:  state.Premium,
	})
}
