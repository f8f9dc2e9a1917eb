// Package photo inspects embedded profile photos and produces upload advice.
package photo

import (
	"encoding/base64"
	"fmt"
	"image"
	"strings"

	// Registered decoders for the formats the builder accepts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Orientation classes for an uploaded photo.
const (
	Landscape = "landscape"
	Portrait  = "portrait"
	Square    = "square"
)

// baseSuggestions is shown for every uploaded photo.
var baseSuggestions = []string{
	"Use a clear, professional background",
	"Wear formal or business-casual attire",
	"Maintain a neutral or friendly expression",
	"Avoid sunglasses, hats, or casual selfies",
	"Ensure good lighting on your face",
}

// Orientation decodes an embedded image (data URL) and classifies its
// aspect ratio.
func Orientation(encoded string) (string, error) {
	cfg, err := decodeConfig(encoded)
	if err != nil {
		return "", err
	}
	switch {
	case cfg.Width > cfg.Height:
		return Landscape, nil
	case cfg.Height > cfg.Width:
		return Portrait, nil
	default:
		return Square, nil
	}
}

// Suggestions returns upload advice for an embedded photo. Landscape
// photos get an extra leading note since portrait or square crops sit
// better in the templates. An undecodable image still gets the generic
// advice.
func Suggestions(encoded string) []string {
	orientation, err := Orientation(encoded)
	out := make([]string, 0, len(baseSuggestions)+1)
	if err == nil && orientation == Landscape {
		out = append(out, "Your photo is landscape. A portrait or square crop works best for resumes.")
	}
	return append(out, baseSuggestions...)
}

// decodeConfig parses a base64 data URL and reads the image header.
func decodeConfig(encoded string) (image.Config, error) {
	idx := strings.Index(encoded, ";base64,")
	if !strings.HasPrefix(encoded, "data:image/") || idx < 0 {
		return image.Config{}, fmt.Errorf("not an embedded image")
	}

	raw, err := base64.StdEncoding.DecodeString(encoded[idx+len(";base64,"):])
	if err != nil {
		return image.Config{}, fmt.Errorf("failed to decode image payload: %w", err)
	}

	cfg, _, err := image.DecodeConfig(strings.NewReader(string(raw)))
	if err != nil {
		return image.Config{}, fmt.Errorf("failed to read image header: %w", err)
	}
	return cfg, nil
}
