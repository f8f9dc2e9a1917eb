// Package templates provides the registry of visual resume templates and
// their per-template photo presentation rules.
package templates

import "fmt"

// PhotoShape describes how a profile photo is cropped by a template.
type PhotoShape string

// Photo shape constants
const (
	ShapeCircle    PhotoShape = "circle"
	ShapeSquare    PhotoShape = "square"
	ShapeRectangle PhotoShape = "rectangle"
)

// PhotoSize describes the size class a template renders the photo at.
type PhotoSize string

// Photo size constants
const (
	SizeRegular PhotoSize = "regular"
	SizeSmall   PhotoSize = "small"
)

// PhotoStyle is the photo presentation rule of a template.
type PhotoStyle struct {
	Shape PhotoShape
	Size  PhotoSize
}

// DefaultTemplate is the template selected for a fresh session.
const DefaultTemplate = "classic"

// ErrUnknownTemplate is returned when a template id is not registered.
// Unknown ids are rejected rather than silently falling back, so callers
// always get an explicit failure for a bad id.
var ErrUnknownTemplate = fmt.Errorf("unknown template")

// registry is the fixed set of templates. The set is closed: adding a
// template means adding an entry here, there is no dynamic registration.
var registry = map[string]PhotoStyle{
	"classic":   {Shape: ShapeCircle, Size: SizeRegular},
	"modern":    {Shape: ShapeCircle, Size: SizeRegular},
	"minimal":   {Shape: ShapeCircle, Size: SizeSmall},
	"creative":  {Shape: ShapeRectangle, Size: SizeRegular},
	"executive": {Shape: ShapeSquare, Size: SizeRegular},
	"compact":   {Shape: ShapeCircle, Size: SizeSmall},
}

// IsValid reports whether id names a registered template.
func IsValid(id string) bool {
	_, ok := registry[id]
	return ok
}

// Lookup returns the photo style for a template id.
func Lookup(id string) (PhotoStyle, error) {
	style, ok := registry[id]
	if !ok {
		return PhotoStyle{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
	}
	return style, nil
}

// IDs returns all registered template ids in a stable order.
func IDs() []string {
	return []string{"classic", "modern", "minimal", "creative", "executive", "compact"}
}
