package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FullyDefined(t *testing.T) {
	doc := New()

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	// Absent data is empty values, never missing keys.
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"fullName", "email", "phone", "address", "linkedin", "objective", "skills", "experience", "education", "photo"} {
		assert.Contains(t, raw, key)
	}
	assert.Equal(t, []any{}, raw["experience"])
	assert.Equal(t, []any{}, raw["education"])
}

func TestSetField(t *testing.T) {
	doc := New()

	doc.SetField(FieldFullName, "Ada Lovelace")
	doc.SetField(FieldEmail, "ada@example.com")
	doc.SetField(FieldPhone, "555-0100")
	doc.SetField(FieldAddress, "London")
	doc.SetField(FieldLinkedIn, "linkedin.com/in/ada")
	doc.SetField(FieldObjective, "Compute things")
	doc.SetField(FieldSkills, "Mathematics, Analytical Engines")

	assert.Equal(t, "Ada Lovelace", doc.FullName)
	assert.Equal(t, "ada@example.com", doc.Email)
	assert.Equal(t, "555-0100", doc.Phone)
	assert.Equal(t, "London", doc.Address)
	assert.Equal(t, "linkedin.com/in/ada", doc.LinkedIn)
	assert.Equal(t, "Compute things", doc.Objective)
	assert.Equal(t, "Mathematics, Analytical Engines", doc.Skills)
}

func TestSetField_UnknownNameIsNoOp(t *testing.T) {
	doc := New()
	doc.SetField("favoriteColor", "blue")
	assert.Equal(t, *New(), *doc.Snapshot())
}

func TestAddEntry_AssignsUniqueIdentities(t *testing.T) {
	doc := New()

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		id := doc.AddEntry(SectionExperience)
		require.NotEmpty(t, id)
		assert.False(t, seen[id], "identity %q reused", id)
		seen[id] = true
	}
	assert.Len(t, doc.Experience, 10)
}

func TestAddEntry_UnknownSection(t *testing.T) {
	doc := New()
	id := doc.AddEntry("awards")
	assert.Empty(t, id)
	assert.Empty(t, doc.Experience)
	assert.Empty(t, doc.Education)
}

func TestUpdateEntry(t *testing.T) {
	doc := New()
	expID := doc.AddEntry(SectionExperience)
	eduID := doc.AddEntry(SectionEducation)

	doc.UpdateEntry(SectionExperience, expID, "title", "Engineer")
	doc.UpdateEntry(SectionExperience, expID, "company", "Acme")
	doc.UpdateEntry(SectionExperience, expID, "date", "2020 - Present")
	doc.UpdateEntry(SectionExperience, expID, "description", "Built widgets")
	doc.UpdateEntry(SectionEducation, eduID, "degree", "BSc")
	doc.UpdateEntry(SectionEducation, eduID, "school", "MIT")
	doc.UpdateEntry(SectionEducation, eduID, "date", "2016 - 2020")

	assert.Equal(t, ExperienceEntry{
		ID: expID, Title: "Engineer", Company: "Acme", Date: "2020 - Present", Description: "Built widgets",
	}, doc.Experience[0])
	assert.Equal(t, EducationEntry{
		ID: eduID, Degree: "BSc", School: "MIT", Date: "2016 - 2020",
	}, doc.Education[0])
}

func TestUpdateEntry_UnknownIdentityIsNoOp(t *testing.T) {
	doc := New()
	doc.AddEntry(SectionExperience)
	before := doc.Snapshot()

	doc.UpdateEntry(SectionExperience, "nope", "title", "Engineer")
	assert.Equal(t, *before, *doc.Snapshot())
}

func TestRemoveEntry_PreservesOrder(t *testing.T) {
	doc := New()
	first := doc.AddEntry(SectionExperience)
	second := doc.AddEntry(SectionExperience)
	third := doc.AddEntry(SectionExperience)

	doc.RemoveEntry(SectionExperience, second)

	require.Len(t, doc.Experience, 2)
	assert.Equal(t, first, doc.Experience[0].ID)
	assert.Equal(t, third, doc.Experience[1].ID)
}

func TestRemoveEntry_UnknownIdentityIsNoOp(t *testing.T) {
	doc := New()
	id := doc.AddEntry(SectionEducation)

	doc.RemoveEntry(SectionEducation, "missing")
	doc.RemoveEntry(SectionExperience, id) // wrong section

	require.Len(t, doc.Education, 1)
	assert.Equal(t, id, doc.Education[0].ID)
}

func TestAddThenRemove_LeavesSectionEmpty(t *testing.T) {
	doc := New()
	id := doc.AddEntry(SectionExperience)
	doc.RemoveEntry(SectionExperience, id)
	assert.Empty(t, doc.Experience)
}

func TestSetPhoto(t *testing.T) {
	doc := New()
	doc.SetPhoto("data:image/png;base64,iVBORw0KGgo=")
	assert.Equal(t, "data:image/png;base64,iVBORw0KGgo=", doc.Photo)

	doc.SetPhoto("")
	assert.Empty(t, doc.Photo)
}

func TestSnapshot_IsDeepCopy(t *testing.T) {
	doc := New()
	id := doc.AddEntry(SectionExperience)
	doc.UpdateEntry(SectionExperience, id, "title", "Engineer")

	snap := doc.Snapshot()
	doc.UpdateEntry(SectionExperience, id, "title", "Director")

	assert.Equal(t, "Engineer", snap.Experience[0].Title)
	assert.Equal(t, "Director", doc.Experience[0].Title)
}

func TestSnapshot_ReflectsNetEffectOfMutations(t *testing.T) {
	doc := New()
	doc.SetField(FieldFullName, "Ada")
	doc.SetField(FieldFullName, "Ada Lovelace")
	a := doc.AddEntry(SectionExperience)
	b := doc.AddEntry(SectionExperience)
	doc.UpdateEntry(SectionExperience, a, "company", "Babbage & Co")
	doc.RemoveEntry(SectionExperience, b)

	snap := doc.Snapshot()
	assert.Equal(t, "Ada Lovelace", snap.FullName)
	require.Len(t, snap.Experience, 1)
	assert.Equal(t, "Babbage & Co", snap.Experience[0].Company)
}

func TestFindExperience(t *testing.T) {
	doc := New()
	id := doc.AddEntry(SectionExperience)
	doc.UpdateEntry(SectionExperience, id, "title", "Engineer")

	entry, ok := doc.FindExperience(id)
	require.True(t, ok)
	assert.Equal(t, "Engineer", entry.Title)

	_, ok = doc.FindExperience("missing")
	assert.False(t, ok)
}
