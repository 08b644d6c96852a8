// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// numberPattern matches the first decimal number anywhere in a response.
var numberPattern = regexp.MustCompile(`-?\d+(\.\d+)?`)

// ParseScore extracts a numeric score from an LLM response. Models
// asked for a bare number still wrap it in prose or markdown often
// enough that a strict strconv.ParseFloat of the whole response is
// useless in practice.
func ParseScore(text string) (float64, error) {
	cleaned := strings.TrimSpace(CleanCodeBlock(text))
	if cleaned == "" {
		return 0, fmt.Errorf("empty response")
	}

	// Fast path: the whole response is the number
	if v, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return v, nil
	}

	match := numberPattern.FindString(cleaned)
	if match == "" {
		return 0, fmt.Errorf("no numeric score in response %q", truncate(cleaned, 60))
	}

	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable score %q: %w", match, err)
	}
	return v, nil
}

// CleanCodeBlock removes markdown code block wrappers from responses.
// LLMs often wrap output in ``` blocks even when instructed not to.
func CleanCodeBlock(text string) string {
	text = strings.TrimSpace(text)

	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	// Skip potential language identifier on first line
	if idx := strings.Index(text, "\n"); idx >= 0 {
		firstLine := text[:idx]
		if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
			text = text[idx+1:]
		}
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
