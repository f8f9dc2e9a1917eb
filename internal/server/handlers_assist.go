package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resumemint/internal/assist"
	"github.com/jonathan/resumemint/internal/document"
)

// AIImproveRequest selects a resume fragment to rewrite. The field
// matching Kind must be populated; the others are ignored.
type AIImproveRequest struct {
	Kind       string                   `json:"kind" validate:"required,oneof=objective skills experience"`
	Objective  string                   `json:"objective,omitempty"`
	Skills     string                   `json:"skills,omitempty"`
	Experience document.ExperienceEntry `json:"experience,omitempty"`
}

// Validate validates the AIImproveRequest using the validator.
func (r *AIImproveRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// handleAIImprove rewrites the submitted fragment through the
// completion gateway. The originals are never modified server-side; the
// client decides whether to accept the suggestion.
func (s *Server) handleAIImprove(w http.ResponseWriter, r *http.Request) {
	if s.assist == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "AI service is not configured")
		return
	}

	var req AIImproveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "kind must be one of: objective, skills, experience")
		return
	}

	improved, err := s.assist.Improve(r.Context(), assist.Request{
		Kind:       assist.Kind(req.Kind),
		Objective:  req.Objective,
		Skills:     req.Skills,
		Experience: req.Experience,
	})
	if err != nil {
		if errors.Is(err, assist.ErrEmptyInput) {
			s.errorResponse(w, http.StatusBadRequest, "nothing to improve: payload is empty")
			return
		}
		log.Printf("Error improving %s: %v", req.Kind, err)
		s.errorResponse(w, http.StatusBadGateway, "AI service request failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"improved": improved})
}
