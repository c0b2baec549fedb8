package responses

import (
	"regexp"
	"strings"
)

const (
	// EmptyResponseMessage replaces empty or non-textual model output
	EmptyResponseMessage = "Sorry, the assistant could not generate a valid response. Please try asking your question again."
	// TooShortResponseMessage replaces degenerate short output
	TooShortResponseMessage = "Sorry, the assistant's response was too short to be useful. Please rephrase your question or provide more detail."
	// ErrorEchoResponseMessage replaces output that echoes an upstream failure
	// instead of answering the question
	ErrorEchoResponseMessage = "Sorry, something went wrong while generating that response. Please try asking your question again."

	minResponseLength = 40
)

// matchScorePattern captures percentage tokens like "82%" (1-3 digits).
var matchScorePattern = regexp.MustCompile(`\b\d{1,3}%`)

// ResponsesService rejects or replaces degenerate LLM output and enriches
// replies that mention match percentages. Validate is pure and total: it
// never fails and always returns non-empty text.
type ResponsesService struct{}

func NewResponsesService() *ResponsesService {
	return &ResponsesService{}
}

func (s *ResponsesService) Validate(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return EmptyResponseMessage
	}
	if len(trimmed) < minResponseLength {
		return TooShortResponseMessage
	}

	lower := strings.ToLower(trimmed)
	// Models occasionally relay upstream failures verbatim; those are never a
	// useful answer, so any mention of "error" is swallowed. A legitimate
	// answer discussing errors is an accepted false positive.
	if strings.Contains(lower, "error") {
		return ErrorEchoResponseMessage
	}

	if strings.Contains(lower, "match") || strings.Contains(lower, "role") {
		// Best-effort enrichment: every occurrence is kept in order of
		// appearance, duplicates included.
		if scores := matchScorePattern.FindAllString(trimmed, -1); len(scores) > 0 {
			return trimmed + "\n\n✅ Parsed Match Scores: " + strings.Join(scores, ", ")
		}
	}

	return trimmed
}
