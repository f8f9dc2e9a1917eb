// Package render maps a resume document, a template id, and the premium
// flag to a declarative visual tree. Rendering is pure: identical inputs
// produce identical trees, which keeps the export pipeline reproducible.
package render

import (
	"strings"

	"github.com/jonathan/resumemint/internal/document"
	"github.com/jonathan/resumemint/internal/templates"
)

// Placeholder labels shown for empty scalar fields.
const (
	PlaceholderName    = "Your Name"
	PlaceholderContact = "Email | Phone | Address"
	PlaceholderTitle   = "Job Title"
	PlaceholderCompany = "Company Name"
	PlaceholderDegree  = "Degree"
	PlaceholderSchool  = "University"
)

// ContactSeparator joins the present contact fields.
const ContactSeparator = " | "

// WatermarkText is appended to every non-premium rendering.
const WatermarkText = "Built with ResumeMint 3.0"

// Render builds the visual tree for a document snapshot. The template id
// must name a registered template; unknown ids are rejected.
func Render(doc *document.Document, templateID string, premium bool) (*Node, error) {
	style, err := templates.Lookup(templateID)
	if err != nil {
		return nil, err
	}

	root := el("div", "resume template-"+templateID)

	if doc.Photo != "" {
		root.Children = append(root.Children, photoNode(doc.Photo, style))
	}

	root.Children = append(root.Children,
		text("h1", "name", orPlaceholder(doc.FullName, PlaceholderName)),
		text("div", "contact", contactLine(doc)),
	)

	if doc.Objective != "" {
		root.Children = append(root.Children, section("objective", "Objective",
			text("p", "objective-text", doc.Objective)))
	}

	if len(doc.Experience) > 0 {
		items := make([]*Node, 0, len(doc.Experience))
		for _, exp := range doc.Experience {
			items = append(items, experienceItem(exp))
		}
		root.Children = append(root.Children, section("experience", "Experience", items...))
	}

	if len(doc.Education) > 0 {
		items := make([]*Node, 0, len(doc.Education))
		for _, edu := range doc.Education {
			items = append(items, educationItem(edu))
		}
		root.Children = append(root.Children, section("education", "Education", items...))
	}

	if doc.Skills != "" {
		root.Children = append(root.Children, section("skills", "Skills",
			text("p", "skills-text", doc.Skills)))
	}

	if !premium {
		root.Children = append(root.Children, text("div", "watermark", WatermarkText))
	}

	return root, nil
}

// photoNode wraps the embedded photo in the template's presentation class.
func photoNode(encoded string, style templates.PhotoStyle) *Node {
	classes := []string{"photo", "photo-" + string(style.Shape)}
	if style.Size == templates.SizeSmall {
		classes = append(classes, "photo-small")
	}

	img := &Node{Tag: "img", Attrs: []Attr{
		{Key: "src", Value: encoded},
		{Key: "alt", Value: "Profile"},
	}}
	return el("div", strings.Join(classes, " "), img)
}

// contactLine joins the present contact fields, or falls back to the
// placeholder string when all are absent.
func contactLine(doc *document.Document) string {
	parts := make([]string, 0, 4)
	for _, v := range []string{doc.Email, doc.Phone, doc.Address, doc.LinkedIn} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return PlaceholderContact
	}
	return strings.Join(parts, ContactSeparator)
}

func section(class, heading string, body ...*Node) *Node {
	children := append([]*Node{text("h2", "section-heading", heading)}, body...)
	return el("section", class, children...)
}

func experienceItem(exp document.ExperienceEntry) *Node {
	item := el("div", "item",
		el("div", "item-header",
			text("span", "item-title", orPlaceholder(exp.Title, PlaceholderTitle)),
			text("span", "item-date", exp.Date),
		),
		text("div", "item-subtitle", orPlaceholder(exp.Company, PlaceholderCompany)),
	)
	if exp.Description != "" {
		item.Children = append(item.Children, text("p", "item-description", exp.Description))
	}
	return item
}

func educationItem(edu document.EducationEntry) *Node {
	return el("div", "item",
		el("div", "item-header",
			text("span", "item-title", orPlaceholder(edu.Degree, PlaceholderDegree)),
			text("span", "item-date", edu.Date),
		),
		text("div", "item-subtitle", orPlaceholder(edu.School, PlaceholderSchool)),
	)
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}
