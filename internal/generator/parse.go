package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/neexbeast/tripmuse/internal/engine"
)

type candidateEnvelope struct {
	Candidates []engine.RawCandidate `json:"candidates"`
}

// ExtractCandidates parses model output into raw candidate records. It
// tolerates valid JSON, JSON embedded in extra prose, and JSON inside a
// fenced code block. Unparsable text or an empty candidate list is an error.
func ExtractCandidates(text string) ([]engine.RawCandidate, error) {
	text = stripFences(text)

	blob, err := extractJSONObject(text)
	if err != nil {
		return nil, err
	}

	var env candidateEnvelope
	if err := json.Unmarshal([]byte(blob), &env); err != nil {
		return nil, fmt.Errorf("unmarshaling candidates: %w", err)
	}
	if len(env.Candidates) == 0 {
		return nil, fmt.Errorf("no candidates in response")
	}
	return env.Candidates, nil
}

// stripFences removes markdown code fences when the payload is fenced.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.Contains(text, "```") {
		return text
	}
	start := strings.Index(text, "```")
	rest := text[start+3:]
	// Drop an optional language tag on the fence line.
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		first := strings.TrimSpace(rest[:nl])
		if len(first) <= 10 && !strings.ContainsAny(first, "{}") {
			rest = rest[nl+1:]
		}
	}
	if end := strings.Index(rest, "```"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}

// extractJSONObject returns the first balanced top-level JSON object in raw,
// skipping any surrounding prose. String literals and escapes are honored so
// braces inside values don't break the scan.
func extractJSONObject(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty response")
	}

	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return "", fmt.Errorf("no json object start found")
	}

	inString := false
	escape := false
	depth := 0
	for i := start; i < len(raw); i++ {
		ch := raw[i]
		if inString {
			if escape {
				escape = false
				continue
			}
			if ch == '\\' {
				escape = true
				continue
			}
			if ch == '"' {
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return raw[start : i+1], nil
			}
		}
	}

	return "", fmt.Errorf("unterminated json object")
}
