package services

import (
	"github.com/samber/mo"
	"github.com/shopspring/decimal"

	"profilecoach/models"
)

// ProfilesService condenses raw profile records into bounded, prompt-ready
// textual summaries
type ProfilesService interface {
	Summarize(profile *models.ProfileRecord) string
}

// IntentsService classifies user queries into intents and extracts a
// best-effort target job role
type IntentsService interface {
	Route(query string) models.Intent
	ExtractJobRole(query string) string
}

// PromptsService builds the intent-specific system prompt sent to the LLM
type PromptsService interface {
	Compose(intent models.Intent, profileSummary, query, jobRole string) (string, error)
}

// ResponsesService post-validates and enriches raw LLM output
type ResponsesService interface {
	Validate(raw string) string
}

// SessionsService owns all per-session conversational state and serializes
// work per session id
type SessionsService interface {
	GetSession(sessionID string) (mo.Option[*models.SessionState], error)
	UpdateSession(sessionID string, update func(*models.SessionState)) error
	DeleteSession(sessionID string) error
	Run(sessionID string, task func()) error
}

// UsageService accumulates per-session token and cost estimates
type UsageService interface {
	RecordExchange(sessionID, promptText, completionText string)
	Snapshot(sessionID string) (mo.Option[UsageSnapshot], error)
	Clear(sessionID string)
}

// UsageSnapshot is a point-in-time view of one session's accumulated usage
type UsageSnapshot struct {
	PromptTokens     int
	CompletionTokens int
	EstimatedCost    decimal.Decimal
}
