// Package export turns a rendered resume into a downloadable PDF. The
// raster pipeline screenshots the rendered markup in a headless browser
// at a fixed oversampling factor, fits the capture onto an A4 page, and
// packages it as a single-page document. Content taller than the page is
// a known limitation of the single-page export.
package export

// A4 page size in PDF points.
const (
	PageWidthPt  = 595.28
	PageHeightPt = 841.89
)

// Oversample is the device scale factor used for captures. Higher values
// give crisper output at the cost of capture size.
const Oversample = 3.0

// Fit describes how a captured image maps onto the page.
type Fit struct {
	// Scale converts capture pixels to page points.
	Scale float64
	// Width and Height are the placed image dimensions in points.
	Width  float64
	Height float64
	// Overflow reports that the capture was taller than the page at
	// full width, so the fit was limited by height.
	Overflow bool
}

// FitToPage computes the page-fitting scale for a capture, preserving
// the source aspect ratio against the fixed A4 page.
func FitToPage(widthPx, heightPx int) Fit {
	if widthPx <= 0 || heightPx <= 0 {
		return Fit{}
	}

	scale := PageWidthPt / float64(widthPx)
	overflow := false
	if float64(heightPx)*scale > PageHeightPt {
		scale = PageHeightPt / float64(heightPx)
		overflow = true
	}

	return Fit{
		Scale:    scale,
		Width:    float64(widthPx) * scale,
		Height:   float64(heightPx) * scale,
		Overflow: overflow,
	}
}
