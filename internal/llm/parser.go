package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Veraticus/power-desk/internal/model"
)

// parseLabel extracts the label index from a model reply. Indexes outside
// the known range become model.LabelUnknown rather than an error so the
// caller can fall back to the default reply.
func parseLabel(content string) (model.Label, error) {
	content = cleanMarkdownWrapper(content)

	var resp struct {
		Label *int `json:"label"`
	}
	if err := json.Unmarshal([]byte(content), &resp); err != nil {
		return model.LabelUnknown, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	if resp.Label == nil {
		return model.LabelUnknown, fmt.Errorf("no label found in response")
	}

	return model.LabelFromIndex(*resp.Label), nil
}

// cleanMarkdownWrapper strips ```json fences and any text around the
// outermost JSON object.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		return content[start : end+1]
	}
	return content
}
