// Package store persists resume snapshots and view-state flags to a
// durable key-value store scoped to a profile.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jonathan/resumemint/internal/document"
)

// Stable keys under which session state is persisted.
const (
	KeyDocument = "resumeData"
	KeyTemplate = "currentTemplate"
	KeyPremium  = "isPremium"
)

// ErrNotFound is returned by KV implementations for a missing key.
var ErrNotFound = fmt.Errorf("key not found")

// KV is a durable string key-value store scoped by profile.
// Writes are last-writer-wins; no cross-session conflict detection.
type KV interface {
	Get(ctx context.Context, profile, key string) (string, error)
	Put(ctx context.Context, profile, key, value string) error
}

// State is everything the adapter persists for one profile.
type State struct {
	// Document is nil when no snapshot has been saved yet.
	Document   *document.Document
	TemplateID string
	Premium    bool
}

// Adapter serializes session state into a KV store and back.
type Adapter struct {
	kv KV
}

// NewAdapter wraps a KV store.
func NewAdapter(kv KV) *Adapter {
	return &Adapter{kv: kv}
}

// Save writes the document snapshot, active template, and premium flag
// under their stable keys.
func (a *Adapter) Save(ctx context.Context, profile string, doc *document.Document, templateID string, premium bool) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	if err := a.kv.Put(ctx, profile, KeyDocument, string(data)); err != nil {
		return fmt.Errorf("failed to persist document: %w", err)
	}
	if err := a.kv.Put(ctx, profile, KeyTemplate, templateID); err != nil {
		return fmt.Errorf("failed to persist template: %w", err)
	}
	premiumValue := "false"
	if premium {
		premiumValue = "true"
	}
	if err := a.kv.Put(ctx, profile, KeyPremium, premiumValue); err != nil {
		return fmt.Errorf("failed to persist premium flag: %w", err)
	}
	return nil
}

// Load restores persisted state. Missing keys yield zero values: a nil
// document, an empty template id, and premium false. A stored document
// that does not match the snapshot schema is rejected rather than
// restored partially.
func (a *Adapter) Load(ctx context.Context, profile string) (*State, error) {
	state := &State{}

	raw, err := a.kv.Get(ctx, profile, KeyDocument)
	switch {
	case err == nil:
		if err := ValidateSnapshot([]byte(raw)); err != nil {
			return nil, fmt.Errorf("stored document rejected: %w", err)
		}
		doc := document.New()
		if err := json.Unmarshal([]byte(raw), doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		state.Document = doc
	case errors.Is(err, ErrNotFound):
		// no snapshot yet
	default:
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	if tmpl, err := a.kv.Get(ctx, profile, KeyTemplate); err == nil {
		state.TemplateID = tmpl
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}

	if premium, err := a.kv.Get(ctx, profile, KeyPremium); err == nil {
		state.Premium = premium == "true"
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to load premium flag: %w", err)
	}

	return state, nil
}
