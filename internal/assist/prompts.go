package assist

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed prompts.json
var promptFiles embed.FS

var (
	promptsOnce sync.Once
	prompts     map[string]string
	promptsErr  error
)

// promptFor returns the instructional prompt template for a kind.
func promptFor(kind Kind) (string, error) {
	promptsOnce.Do(func() {
		data, err := promptFiles.ReadFile("prompts.json")
		if err != nil {
			promptsErr = fmt.Errorf("failed to read prompt file: %w", err)
			return
		}
		if err := json.Unmarshal(data, &prompts); err != nil {
			promptsErr = fmt.Errorf("failed to parse prompt file: %w", err)
		}
	})
	if promptsErr != nil {
		return "", promptsErr
	}

	prompt, ok := prompts[string(kind)]
	if !ok {
		return "", fmt.Errorf("no prompt template for kind %q", kind)
	}
	return prompt, nil
}

// formatPrompt replaces {{.Key}} placeholders with values from data.
func formatPrompt(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		result = strings.ReplaceAll(result, fmt.Sprintf("{{.%s}}", key), value)
	}
	return result
}
