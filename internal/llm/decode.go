package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeJSON decodes a structured response, tolerating a surrounding markdown code fence.
func DecodeJSON(text string, v any) error {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	if s == "" {
		return fmt.Errorf("%w: empty body", ErrResponseInvalid)
	}
	if err := json.Unmarshal([]byte(s), v); err != nil {
		return fmt.Errorf("%w: %w", ErrResponseInvalid, err)
	}
	return nil
}
