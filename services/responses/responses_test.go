package responses

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_EmptyResponse(t *testing.T) {
	service := NewResponsesService()

	assert.Equal(t, EmptyResponseMessage, service.Validate(""))
	assert.Equal(t, EmptyResponseMessage, service.Validate("   \n\t "))
}

func TestValidate_TooShortResponse(t *testing.T) {
	service := NewResponsesService()

	assert.Equal(t, TooShortResponseMessage, service.Validate("ok"))
	assert.Equal(t, TooShortResponseMessage, service.Validate("Sounds good to me."))
}

func TestValidate_ErrorEchoReplaced(t *testing.T) {
	service := NewResponsesService()

	raw := "Error: the upstream API returned an error while generating your analysis. Please see the service logs."
	assert.Equal(t, ErrorEchoResponseMessage, service.Validate(raw))
	assert.Equal(t, ErrorEchoResponseMessage, service.Validate("An internal ERROR occurred somewhere deep inside the pipeline today."))
}

func TestValidate_AppendsMatchScores(t *testing.T) {
	service := NewResponsesService()

	raw := "Your profile shows a strong 85% match for this role based on your skills."
	result := service.Validate(raw)

	assert.Contains(t, result, raw)
	assert.Contains(t, result, "✅ Parsed Match Scores: 85%")
	assert.Equal(t, 2, strings.Count(result, "85%"))
}

func TestValidate_KeepsAllScoreOccurrencesInOrder(t *testing.T) {
	service := NewResponsesService()

	raw := "Data Analyst - 80% match. Product Manager - 65% match. Another at 80% too."
	result := service.Validate(raw)

	assert.True(t, strings.HasSuffix(result, "✅ Parsed Match Scores: 80%, 65%, 80%"))
}

func TestValidate_NoEnrichmentWithoutMatchOrRoleKeyword(t *testing.T) {
	service := NewResponsesService()

	raw := "Your headline could improve by about 50% with stronger verbs, in my estimation."
	result := service.Validate(raw)

	assert.Equal(t, raw, result)
}

func TestValidate_PassthroughTrimsWhitespace(t *testing.T) {
	service := NewResponsesService()

	raw := "  Here is a detailed analysis of your profile with recommendations.  "
	assert.Equal(t, strings.TrimSpace(raw), service.Validate(raw))
}
