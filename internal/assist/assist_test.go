package assist

import (
	"context"
	"fmt"
	"testing"

	"github.com/jonathan/resumemint/internal/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient records the prompt it receives and returns a canned response.
type stubClient struct {
	prompt   string
	response string
	err      error
	calls    int
}

func (s *stubClient) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.prompt = prompt
	return s.response, s.err
}

func (s *stubClient) Close() error { return nil }

func TestImprove_Objective(t *testing.T) {
	client := &stubClient{response: "  Polished objective.  \n"}
	gateway := NewGateway(client)

	got, err := gateway.Improve(context.Background(), Request{
		Kind:      KindObjective,
		Objective: "I want a job doing computers",
	})
	require.NoError(t, err)

	assert.Equal(t, "Polished objective.", got)
	assert.Contains(t, client.prompt, `"I want a job doing computers"`)
	assert.Contains(t, client.prompt, "career objective")
}

func TestImprove_Skills(t *testing.T) {
	client := &stubClient{response: "Go, PostgreSQL, Kubernetes"}
	gateway := NewGateway(client)

	got, err := gateway.Improve(context.Background(), Request{
		Kind:   KindSkills,
		Skills: "go, postgres, k8s",
	})
	require.NoError(t, err)

	assert.Equal(t, "Go, PostgreSQL, Kubernetes", got)
	assert.Contains(t, client.prompt, "skills list")
}

func TestImprove_ExperienceFormatsLabelledBlock(t *testing.T) {
	client := &stubClient{response: "- Led the team"}
	gateway := NewGateway(client)

	_, err := gateway.Improve(context.Background(), Request{
		Kind: KindExperience,
		Experience: document.ExperienceEntry{
			Title:       "Engineer",
			Description: "did stuff",
		},
	})
	require.NoError(t, err)

	assert.Contains(t, client.prompt, "Company: N/A")
	assert.Contains(t, client.prompt, "Role: Engineer")
	assert.Contains(t, client.prompt, "Duration: N/A")
	assert.Contains(t, client.prompt, "Description: did stuff")
}

func TestImprove_EmptyPayloadRejectedBeforeCall(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{"objective", Request{Kind: KindObjective}},
		{"whitespace objective", Request{Kind: KindObjective, Objective: "   "}},
		{"skills", Request{Kind: KindSkills}},
		{"experience", Request{Kind: KindExperience}},
		{"experience with only date", Request{Kind: KindExperience, Experience: document.ExperienceEntry{Date: "2020"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &stubClient{response: "should never be used"}
			_, err := NewGateway(client).Improve(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrEmptyInput)
			assert.Zero(t, client.calls, "remote service must not be called for empty input")
		})
	}
}

func TestImprove_UnknownKind(t *testing.T) {
	client := &stubClient{}
	_, err := NewGateway(client).Improve(context.Background(), Request{Kind: "poetry"})
	require.Error(t, err)
	assert.Zero(t, client.calls)
}

func TestImprove_RemoteFailureSurfaces(t *testing.T) {
	client := &stubClient{err: fmt.Errorf("deadline exceeded")}
	_, err := NewGateway(client).Improve(context.Background(), Request{
		Kind:      KindObjective,
		Objective: "something",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deadline exceeded")
}

func TestImprove_EmptyResponseIsError(t *testing.T) {
	client := &stubClient{response: "   "}
	_, err := NewGateway(client).Improve(context.Background(), Request{
		Kind:      KindObjective,
		Objective: "something",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}

func TestPromptTemplates_AllKindsPresent(t *testing.T) {
	for _, kind := range []Kind{KindObjective, KindSkills, KindExperience} {
		template, err := promptFor(kind)
		require.NoError(t, err)
		assert.Contains(t, template, "{{.Input}}")
	}
}
