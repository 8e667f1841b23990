package extract

import (
	"encoding/json"
	"strings"
)

// RecoverJSON finds the JSON object embedded in a model reply and parses it.
// Models sometimes wrap the object in explanatory prose despite instructions,
// so the span from the first '{' to the last '}' is taken greedily (newlines
// included) rather than requiring the whole reply to be valid JSON. An empty
// reply, a missing brace pair, or a parse failure all yield (nil, false).
//
// Braces inside string values are not specially handled; a reply whose prose
// contains a stray '}' after the object will fail to parse. Known edge case.
func RecoverJSON(content string) (map[string]any, bool) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")

	if start == -1 || end == -1 || end <= start {
		return nil, false
	}

	var candidate map[string]any
	if err := json.Unmarshal([]byte(content[start:end+1]), &candidate); err != nil {
		return nil, false
	}

	return candidate, true
}
