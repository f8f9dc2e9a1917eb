package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_KnownTemplates(t *testing.T) {
	tests := []struct {
		id    string
		shape PhotoShape
		size  PhotoSize
	}{
		{"classic", ShapeCircle, SizeRegular},
		{"modern", ShapeCircle, SizeRegular},
		{"minimal", ShapeCircle, SizeSmall},
		{"creative", ShapeRectangle, SizeRegular},
		{"executive", ShapeSquare, SizeRegular},
		{"compact", ShapeCircle, SizeSmall},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			style, err := Lookup(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.shape, style.Shape)
			assert.Equal(t, tt.size, style.Size)
		})
	}
}

func TestLookup_UnknownTemplate(t *testing.T) {
	_, err := Lookup("holographic")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestLookup_EmptyID(t *testing.T) {
	_, err := Lookup("")
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("classic"))
	assert.True(t, IsValid("compact"))
	assert.False(t, IsValid("Classic"))
	assert.False(t, IsValid(""))
}

func TestIDs_CoversRegistry(t *testing.T) {
	ids := IDs()
	assert.Len(t, ids, len(registry))
	for _, id := range ids {
		assert.True(t, IsValid(id), "id %q from IDs() must be registered", id)
	}
}

func TestDefaultTemplate_IsRegistered(t *testing.T) {
	assert.True(t, IsValid(DefaultTemplate))
}
