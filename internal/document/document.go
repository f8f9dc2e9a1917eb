// Package document provides the canonical in-memory representation of a
// single resume and its mutation operations.
//
// The document is always fully defined: absent data is an empty string,
// an empty slice, or an empty photo encoding, never a missing key. All
// mutators are synchronous and total; a snapshot taken immediately after
// a mutator returns reflects that mutation.
package document

import "github.com/google/uuid"

// Section names for the list-valued parts of the document.
const (
	SectionExperience = "experience"
	SectionEducation  = "education"
)

// Scalar field names accepted by SetField.
const (
	FieldFullName  = "fullName"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldAddress   = "address"
	FieldLinkedIn  = "linkedin"
	FieldObjective = "objective"
	FieldSkills    = "skills"
)

// ExperienceEntry is one item in the experience section.
type ExperienceEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// EducationEntry is one item in the education section.
type EducationEntry struct {
	ID     string `json:"id"`
	Degree string `json:"degree"`
	School string `json:"school"`
	Date   string `json:"date"`
}

// Document is the complete resume data record.
type Document struct {
	FullName   string            `json:"fullName"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	Address    string            `json:"address"`
	LinkedIn   string            `json:"linkedin"`
	Objective  string            `json:"objective"`
	Skills     string            `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`

	// Photo holds the embedded image as a data URL, or "" when absent.
	Photo string `json:"photo"`
}

// New returns an empty, fully defined document.
func New() *Document {
	return &Document{
		Experience: []ExperienceEntry{},
		Education:  []EducationEntry{},
	}
}

// SetField sets a scalar field by name. Unknown field names are ignored,
// keeping the mutator total.
func (d *Document) SetField(name, value string) {
	switch name {
	case FieldFullName:
		d.FullName = value
	case FieldEmail:
		d.Email = value
	case FieldPhone:
		d.Phone = value
	case FieldAddress:
		d.Address = value
	case FieldLinkedIn:
		d.LinkedIn = value
	case FieldObjective:
		d.Objective = value
	case FieldSkills:
		d.Skills = value
	}
}

// AddEntry appends a blank entry to the named section and returns the
// identity assigned to it. Identities are unique for the lifetime of the
// process. Unknown sections return an empty identity and change nothing.
func (d *Document) AddEntry(section string) string {
	id := uuid.NewString()
	switch section {
	case SectionExperience:
		d.Experience = append(d.Experience, ExperienceEntry{ID: id})
	case SectionEducation:
		d.Education = append(d.Education, EducationEntry{ID: id})
	default:
		return ""
	}
	return id
}

// UpdateEntry sets one field of the entry with the given identity.
// Unknown identities, sections, and field names are no-ops.
func (d *Document) UpdateEntry(section, id, field, value string) {
	switch section {
	case SectionExperience:
		for i := range d.Experience {
			if d.Experience[i].ID != id {
				continue
			}
			switch field {
			case "title":
				d.Experience[i].Title = value
			case "company":
				d.Experience[i].Company = value
			case "date":
				d.Experience[i].Date = value
			case "description":
				d.Experience[i].Description = value
			}
			return
		}
	case SectionEducation:
		for i := range d.Education {
			if d.Education[i].ID != id {
				continue
			}
			switch field {
			case "degree":
				d.Education[i].Degree = value
			case "school":
				d.Education[i].School = value
			case "date":
				d.Education[i].Date = value
			}
			return
		}
	}
}

// RemoveEntry removes the entry with the given identity from the named
// section, preserving the relative order of the remaining entries.
// A missing identity is a no-op.
func (d *Document) RemoveEntry(section, id string) {
	switch section {
	case SectionExperience:
		for i := range d.Experience {
			if d.Experience[i].ID == id {
				d.Experience = append(d.Experience[:i], d.Experience[i+1:]...)
				return
			}
		}
	case SectionEducation:
		for i := range d.Education {
			if d.Education[i].ID == id {
				d.Education = append(d.Education[:i], d.Education[i+1:]...)
				return
			}
		}
	}
}

// SetPhoto stores the encoded photo. An empty string clears it.
func (d *Document) SetPhoto(encoded string) {
	d.Photo = encoded
}

// Snapshot returns a deep copy of the document, safe to serialize or
// render while the original keeps being mutated.
func (d *Document) Snapshot() *Document {
	out := *d
	out.Experience = make([]ExperienceEntry, len(d.Experience))
	copy(out.Experience, d.Experience)
	out.Education = make([]EducationEntry, len(d.Education))
	copy(out.Education, d.Education)
	return &out
}

// Entry lookup helpers used by the assist gateway.

// FindExperience returns the experience entry with the given identity.
func (d *Document) FindExperience(id string) (ExperienceEntry, bool) {
	for _, e := range d.Experience {
		if e.ID == id {
			return e, true
		}
	}
	return ExperienceEntry{}, false
}
