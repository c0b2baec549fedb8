package api

// ChatRequest is the payload for POST /api/chat
type ChatRequest struct {
	ProfileURL string `json:"profile_url"`
	Query      string `json:"query"`
	SessionID  string `json:"session_id,omitempty"`
}

// ChatResponse carries the assistant's reply back to the UI
type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

// LoadProfileRequest is the payload for POST /api/profile/load
type LoadProfileRequest struct {
	ProfileURL string `json:"profile_url"`
	SessionID  string `json:"session_id,omitempty"`
}

// LoadProfileResponse confirms an explicit profile load/refresh
type LoadProfileResponse struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// TurnModel is one conversation turn as returned by the API
type TurnModel struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// HistoryResponse is the payload for GET /api/sessions/{id}/history
type HistoryResponse struct {
	SessionID string      `json:"session_id"`
	Turns     []TurnModel `json:"turns"`
}

// UsageResponse is the payload for GET /api/sessions/{id}/usage. Token counts
// are estimates; the cost is a decimal string in USD.
type UsageResponse struct {
	SessionID        string `json:"session_id"`
	PromptTokens     int    `json:"prompt_tokens"`
	CompletionTokens int    `json:"completion_tokens"`
	EstimatedCost    string `json:"estimated_cost"`
}
