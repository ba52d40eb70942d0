package analysis

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Normalize parses raw model output into a Report. The model is told to emit
// a bare JSON object with the three arrays, but may wrap it in markdown
// fences or reply with prose; fences are stripped before parsing. The
// returned error exists for logging only — callers substitute EmptyReport()
// and never surface it to the client.
func Normalize(raw string) (Report, error) {
	cleaned := StripCodeFences(raw)
	if cleaned == "" {
		return EmptyReport(), fmt.Errorf("empty model output")
	}

	var r Report
	if err := json.Unmarshal([]byte(cleaned), &r); err != nil {
		return EmptyReport(), fmt.Errorf("model output is not the expected JSON object: %w", err)
	}
	if !r.Aligned() {
		return EmptyReport(), fmt.Errorf("array length mismatch: problems=%d problem_types=%d suggestions=%d",
			len(r.Problems), len(r.ProblemTypes), len(r.Suggestions))
	}
	if r.Problems == nil {
		return EmptyReport(), nil
	}
	if r.ProblemTypes == nil {
		r.ProblemTypes = []string{}
	}
	if r.Suggestions == nil {
		r.Suggestions = []string{}
	}
	return r, nil
}

// StripCodeFences removes a surrounding ```json / ``` block if present.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
