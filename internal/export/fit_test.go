package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitToPage_WidthLimited(t *testing.T) {
	// A capture with the page's aspect ratio or squatter fits by width.
	fit := FitToPage(2382, 3000)

	assert.False(t, fit.Overflow)
	assert.InDelta(t, PageWidthPt/2382.0, fit.Scale, 1e-9)
	assert.InDelta(t, PageWidthPt, fit.Width, 1e-6)
	assert.Less(t, fit.Height, PageHeightPt)
}

func TestFitToPage_HeightLimited(t *testing.T) {
	// A very tall capture is limited by page height instead.
	fit := FitToPage(1000, 5000)

	assert.True(t, fit.Overflow)
	assert.InDelta(t, PageHeightPt/5000.0, fit.Scale, 1e-9)
	assert.InDelta(t, PageHeightPt, fit.Height, 1e-6)
	assert.Less(t, fit.Width, PageWidthPt)
}

func TestFitToPage_PreservesAspectRatio(t *testing.T) {
	fit := FitToPage(2400, 3200)
	assert.InDelta(t, 2400.0/3200.0, fit.Width/fit.Height, 1e-9)
}

func TestFitToPage_DegenerateInput(t *testing.T) {
	assert.Zero(t, FitToPage(0, 100).Scale)
	assert.Zero(t, FitToPage(100, -1).Scale)
}

func TestPackagePDF_ProducesSinglePageDocument(t *testing.T) {
	// A small solid PNG standing in for a capture.
	img := image.NewRGBA(image.Rect(0, 0, 40, 56))
	for y := 0; y < 56; y++ {
		for x := 0; x < 40; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	out, err := packagePDF(buf.Bytes(), FitToPage(40, 56))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestPackagePDF_RejectsZeroFit(t *testing.T) {
	_, err := packagePDF(nil, Fit{})
	assert.Error(t, err)
}
