package photo

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodePNG builds a data URL for a blank PNG of the given dimensions.
func encodePNG(t *testing.T, width, height int) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestOrientation(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		want   string
	}{
		{"landscape", 4, 3, Landscape},
		{"portrait", 3, 4, Portrait},
		{"square", 2, 2, Square},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Orientation(encodePNG(t, tt.width, tt.height))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrientation_RejectsNonImage(t *testing.T) {
	_, err := Orientation("hello")
	assert.Error(t, err)

	_, err = Orientation("data:image/png;base64,not-base64!!!")
	assert.Error(t, err)
}

func TestSuggestions_LandscapeGetsExtraNote(t *testing.T) {
	got := Suggestions(encodePNG(t, 4, 3))
	require.Len(t, got, len(baseSuggestions)+1)
	assert.Contains(t, got[0], "landscape")
}

func TestSuggestions_PortraitGetsGenericAdvice(t *testing.T) {
	got := Suggestions(encodePNG(t, 3, 4))
	assert.Equal(t, baseSuggestions, got)
}

func TestSuggestions_UndecodableStillAdvises(t *testing.T) {
	got := Suggestions("garbage")
	assert.Equal(t, baseSuggestions, got)
}
