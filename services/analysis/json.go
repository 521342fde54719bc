package analysis

import (
	"encoding/json"
	"strings"
)

// StripCodeFence removes a markdown code fence wrapping an LLM reply, with or
// without a language tag. Text without a fence is returned trimmed.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = text[len("```json"):]
	} else if strings.HasPrefix(text, "```") {
		text = text[len("```"):]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")

	return strings.TrimSpace(text)
}

// DecodeJSON parses a JSON object out of an LLM reply, tolerating markdown
// code fences around the payload.
func DecodeJSON(text string, v interface{}) error {
	return json.Unmarshal([]byte(StripCodeFence(text)), v)
}

// SplitLines breaks an LLM bullet reply into cleaned list items, dropping
// blank lines and leading bullet markers.
func SplitLines(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "•-* \t")
		if line == "" {
			continue
		}
		if !strings.ContainsFunc(line, func(r rune) bool {
			return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		}) {
			continue
		}
		items = append(items, line)
	}
	return items
}
