package export

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"io"

	"github.com/jonathan/resumemint/internal/render"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Exporter packages rendered resumes as PDF documents.
type Exporter struct {
	oversample float64
}

// NewExporter creates an exporter with the standard oversampling factor.
func NewExporter() *Exporter {
	return &Exporter{oversample: Oversample}
}

// ExportPDF rasterizes a rendered tree and packages it as a single-page
// A4 PDF.
func (e *Exporter) ExportPDF(ctx context.Context, tree *render.Node) ([]byte, error) {
	html := render.PageHTML(tree)

	capture, err := captureScreenshot(ctx, html, e.oversample)
	if err != nil {
		return nil, err
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(capture))
	if err != nil {
		return nil, fmt.Errorf("failed to read capture dimensions: %w", err)
	}

	fit := FitToPage(cfg.Width, cfg.Height)
	return packagePDF(capture, fit)
}

// packagePDF places a PNG capture onto a single A4 page at the computed
// scale.
func packagePDF(capture []byte, fit Fit) ([]byte, error) {
	if fit.Scale <= 0 {
		return nil, fmt.Errorf("capture has no printable area")
	}

	imp, err := api.Import(fmt.Sprintf("form:A4, pos:tl, scale:%.5f abs", fit.Scale), types.POINTS)
	if err != nil {
		return nil, fmt.Errorf("failed to build page import: %w", err)
	}

	var out bytes.Buffer
	if err := api.ImportImages(nil, &out, []io.Reader{bytes.NewReader(capture)}, imp, nil); err != nil {
		return nil, fmt.Errorf("failed to package PDF: %w", err)
	}
	return out.Bytes(), nil
}
