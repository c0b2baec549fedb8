package core

import "strings"

// EstimateTokens provides a rough token count estimation for usage accounting.
// The hosted API only reports exact counts on successful calls; estimation
// keeps accounting total on degraded paths too.
func EstimateTokens(content string) int {
	if content == "" {
		return 0
	}

	// Hybrid estimation:
	// - ~1.3 tokens per word for English text
	// - character-based fallback for very short texts
	// - small buffer for punctuation and formatting
	words := strings.Fields(content)
	wordCount := len(words)

	charCount := len(strings.ReplaceAll(content, " ", ""))

	tokenEstimate := float64(wordCount) * 1.3
	if wordCount < 10 {
		tokenEstimate = float64(charCount) / 3.5
	}
	tokenEstimate *= 1.1

	return int(tokenEstimate)
}
