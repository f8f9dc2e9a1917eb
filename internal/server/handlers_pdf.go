package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resumemint/internal/export"
)

// GeneratePDFRequest carries the rendered resume page to print.
type GeneratePDFRequest struct {
	HTML string `json:"html" validate:"required"`
}

// Validate validates the GeneratePDFRequest using the validator.
func (r *GeneratePDFRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// handleGeneratePDF prints the submitted HTML to an A4 PDF with a
// headless browser and streams it back as an attachment.
func (s *Server) handleGeneratePDF(w http.ResponseWriter, r *http.Request) {
	var req GeneratePDFRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "html is required")
		return
	}

	pdf, err := export.PrintHTML(r.Context(), req.HTML)
	if err != nil {
		log.Printf("Error generating PDF: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
	if _, err := w.Write(pdf); err != nil {
		// Headers are already gone; nothing to send the client.
		log.Printf("Error writing PDF response: %v", err)
	}
}
