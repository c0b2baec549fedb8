package clients

import (
	"context"

	"github.com/samber/mo"

	"profilecoach/models"
)

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

// ChatMessage is one role-tagged message in the sequence sent to the LLM
type ChatMessage struct {
	Role    string
	Content string
}

// ProfileScraperClient fetches a normalized profile record via the scraping
// actor. None means the profile could not be retrieved; transport failures are
// returned as errors and flattened to a user-facing sentinel by the caller.
type ProfileScraperClient interface {
	FetchProfile(ctx context.Context, profileURL string) (mo.Option[*models.ProfileRecord], error)
}

// LLMClient sends a system prompt plus an ordered conversation to the hosted
// model and returns its raw text reply.
type LLMClient interface {
	Complete(ctx context.Context, systemPrompt string, messages []ChatMessage) (string, error)
}
