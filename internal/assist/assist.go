// Package assist is a thin gateway to an external text-completion service
// for rewriting free-text resume fields. The gateway formats a per-kind
// prompt, calls the provider, and hands the trimmed text back; it never
// mutates the document itself.
package assist

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resumemint/internal/document"
)

// Kind selects which prompt template a request uses.
type Kind string

// Improvement kinds
const (
	KindObjective  Kind = "objective"
	KindSkills     Kind = "skills"
	KindExperience Kind = "experience"
)

// ErrEmptyInput is returned when the payload has nothing to improve.
// The remote service is never called in that case.
var ErrEmptyInput = fmt.Errorf("nothing to improve: payload is empty")

// Request carries the document fragment to improve. Exactly the fields
// relevant to Kind are read.
type Request struct {
	Kind       Kind
	Objective  string
	Skills     string
	Experience document.ExperienceEntry
}

// Gateway formats prompts and delegates to a completion client.
type Gateway struct {
	client Client
}

// NewGateway wraps a completion client.
func NewGateway(client Client) *Gateway {
	return &Gateway{client: client}
}

// Improve rewrites the requested fragment and returns the trimmed result.
// Empty payloads are rejected before any network call; the caller bounds
// the call with ctx.
func (g *Gateway) Improve(ctx context.Context, req Request) (string, error) {
	input, err := req.input()
	if err != nil {
		return "", err
	}

	template, err := promptFor(req.Kind)
	if err != nil {
		return "", err
	}
	prompt := formatPrompt(template, map[string]string{"Input": input})

	text, err := g.client.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("improvement failed: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("improvement failed: empty response")
	}
	return text, nil
}

// input extracts and validates the payload for the request's kind.
func (r Request) input() (string, error) {
	switch r.Kind {
	case KindObjective:
		if strings.TrimSpace(r.Objective) == "" {
			return "", ErrEmptyInput
		}
		return r.Objective, nil
	case KindSkills:
		if strings.TrimSpace(r.Skills) == "" {
			return "", ErrEmptyInput
		}
		return r.Skills, nil
	case KindExperience:
		exp := r.Experience
		if strings.TrimSpace(exp.Title) == "" && strings.TrimSpace(exp.Company) == "" && strings.TrimSpace(exp.Description) == "" {
			return "", ErrEmptyInput
		}
		return formatExperience(exp), nil
	default:
		return "", fmt.Errorf("unknown improvement kind %q", r.Kind)
	}
}

// formatExperience lays the entry out as a labelled block, with N/A for
// absent parts.
func formatExperience(exp document.ExperienceEntry) string {
	return fmt.Sprintf("Company: %s\nRole: %s\nDuration: %s\nDescription: %s",
		orNA(exp.Company), orNA(exp.Title), orNA(exp.Date), exp.Description)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
