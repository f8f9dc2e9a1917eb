// Package session owns the live editing state for one profile: the resume
// document, the active template, and the premium flag. Components receive
// the session explicitly instead of reaching for shared globals.
//
// A session has single-writer semantics: all mutations happen on the one
// event-handling flow, so no locking is done here. Every mutation is
// followed by a snapshot save, keeping the durable store in step with
// memory.
package session

import (
	"context"
	"fmt"

	"github.com/jonathan/resumemint/internal/document"
	"github.com/jonathan/resumemint/internal/photo"
	"github.com/jonathan/resumemint/internal/render"
	"github.com/jonathan/resumemint/internal/store"
	"github.com/jonathan/resumemint/internal/templates"
)

// Session is the owned context threaded through the builder's operations.
type Session struct {
	profile    string
	doc        *document.Document
	templateID string
	premium    bool
	adapter    *store.Adapter
}

// Open restores a session from the store, or starts an empty one when the
// profile has no saved state. A persisted template id that is no longer
// registered falls back to the default rather than failing the whole
// restore.
func Open(ctx context.Context, adapter *store.Adapter, profile string) (*Session, error) {
	state, err := adapter.Load(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}

	s := &Session{
		profile:    profile,
		doc:        state.Document,
		templateID: state.TemplateID,
		premium:    state.Premium,
		adapter:    adapter,
	}
	if s.doc == nil {
		s.doc = document.New()
	}
	if !templates.IsValid(s.templateID) {
		s.templateID = templates.DefaultTemplate
	}
	return s, nil
}

// Document returns a snapshot of the current document.
func (s *Session) Document() *document.Document {
	return s.doc.Snapshot()
}

// TemplateID returns the active template id.
func (s *Session) TemplateID() string {
	return s.templateID
}

// Premium reports whether the watermark-free tier is unlocked.
func (s *Session) Premium() bool {
	return s.premium
}

// SetField sets a scalar document field and persists.
func (s *Session) SetField(ctx context.Context, name, value string) error {
	s.doc.SetField(name, value)
	return s.save(ctx)
}

// AddEntry appends a blank entry to a section and persists. The new
// entry's identity is returned.
func (s *Session) AddEntry(ctx context.Context, section string) (string, error) {
	id := s.doc.AddEntry(section)
	return id, s.save(ctx)
}

// UpdateEntry updates one entry field and persists.
func (s *Session) UpdateEntry(ctx context.Context, section, id, field, value string) error {
	s.doc.UpdateEntry(section, id, field, value)
	return s.save(ctx)
}

// RemoveEntry removes an entry and persists. Unknown identities are a
// no-op, matching the document model.
func (s *Session) RemoveEntry(ctx context.Context, section, id string) error {
	s.doc.RemoveEntry(section, id)
	return s.save(ctx)
}

// SetPhoto stores an embedded photo, persists, and returns upload advice.
// An empty encoding clears the photo and yields no advice.
func (s *Session) SetPhoto(ctx context.Context, encoded string) ([]string, error) {
	s.doc.SetPhoto(encoded)
	if err := s.save(ctx); err != nil {
		return nil, err
	}
	if encoded == "" {
		return nil, nil
	}
	return photo.Suggestions(encoded), nil
}

// SelectTemplate switches the active template and persists. Unknown ids
// are rejected and leave the selection unchanged.
func (s *Session) SelectTemplate(ctx context.Context, id string) error {
	if !templates.IsValid(id) {
		return fmt.Errorf("%w: %q", templates.ErrUnknownTemplate, id)
	}
	s.templateID = id
	return s.save(ctx)
}

// UnlockPremium flips the premium flag to true and persists. The flag
// never transitions back to false.
func (s *Session) UnlockPremium(ctx context.Context) error {
	if s.premium {
		return nil
	}
	s.premium = true
	return s.save(ctx)
}

// Render builds the visual tree for the current state.
func (s *Session) Render() (*render.Node, error) {
	return render.Render(s.doc, s.templateID, s.premium)
}

func (s *Session) save(ctx context.Context) error {
	if err := s.adapter.Save(ctx, s.profile, s.doc, s.templateID, s.premium); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}
