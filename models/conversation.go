package models

type TurnRole string

const (
	TurnRoleUser      TurnRole = "user"
	TurnRoleAssistant TurnRole = "assistant"
)

// ConversationTurn is one user or assistant message in a conversation.
type ConversationTurn struct {
	Role    TurnRole `json:"role"`
	Content string   `json:"content"`
}

// ChatHistory is the ordered sequence of turns for one session. The
// orchestrator appends turns in (user, assistant) pairs.
type ChatHistory []ConversationTurn

// Truncated returns the most recent maxPairs user/assistant pairs. Older
// turns are dropped entirely, never summarized.
func (h ChatHistory) Truncated(maxPairs int) ChatHistory {
	if maxPairs <= 0 {
		return ChatHistory{}
	}
	limit := maxPairs * 2
	if len(h) <= limit {
		return h
	}
	return h[len(h)-limit:]
}
