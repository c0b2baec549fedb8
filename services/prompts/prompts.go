package prompts

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"profilecoach/models"
)

//go:embed templates/*.md
var templatesFS embed.FS

// Parsed once at package init; reused on every Compose call.
var promptTemplates = template.Must(template.ParseFS(templatesFS, "templates/*.md"))

type promptData struct {
	ProfileSummary string
	Query          string
	JobRole        string
}

// PromptsService builds the system-level instruction text for each intent.
// Every template interpolates the profile summary, the user question, and the
// optional target role, and carries the standing guardrail section.
type PromptsService struct{}

func NewPromptsService() *PromptsService {
	return &PromptsService{}
}

func (s *PromptsService) Compose(
	intent models.Intent,
	profileSummary, query, jobRole string,
) (string, error) {
	if !intent.IsValid() {
		intent = models.IntentProfileAnalysis
	}

	var buf bytes.Buffer
	err := promptTemplates.ExecuteTemplate(&buf, string(intent), promptData{
		ProfileSummary: profileSummary,
		Query:          query,
		JobRole:        jobRole,
	})
	if err != nil {
		return "", fmt.Errorf("failed to execute prompt template %q: %w", intent, err)
	}
	return buf.String(), nil
}
