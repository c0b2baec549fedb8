package chat

import (
	"context"
	"fmt"
	"log"
	"strings"

	"profilecoach/clients"
	"profilecoach/models"
	"profilecoach/services"
	"profilecoach/utils"
)

// User-visible fallback messages. Every per-query path terminates in one of
// these or in validated model output; errors never cross the usecase boundary.
const (
	EmptyQueryMessage = "Please enter a question about your profile, job fit, content, or skills."

	FetchFailedMessage = "I couldn't fetch that LinkedIn profile. " +
		"Please check the profile URL and try loading it again."

	LLMUnavailableMessage = "I'm having trouble reaching the language model right now. " +
		"Please try again in a moment."

	InternalErrorMessage = "I apologize, but I encountered an unexpected error processing your request. " +
		"Please try again or rephrase your question."
)

// ChatUseCase sequences one query through the workflow:
// fetch (if needed) -> route -> compose -> call -> validate -> persist.
type ChatUseCase struct {
	scraperClient    clients.ProfileScraperClient
	llmClient        clients.LLMClient
	profilesService  services.ProfilesService
	intentsService   services.IntentsService
	promptsService   services.PromptsService
	responsesService services.ResponsesService
	sessionsService  services.SessionsService
	usageService     services.UsageService
	maxHistoryPairs  int
}

func NewChatUseCase(
	scraperClient clients.ProfileScraperClient,
	llmClient clients.LLMClient,
	profilesService services.ProfilesService,
	intentsService services.IntentsService,
	promptsService services.PromptsService,
	responsesService services.ResponsesService,
	sessionsService services.SessionsService,
	usageService services.UsageService,
	maxHistoryPairs int,
) *ChatUseCase {
	utils.AssertInvariant(maxHistoryPairs > 0, "maxHistoryPairs must be positive")
	return &ChatUseCase{
		scraperClient:    scraperClient,
		llmClient:        llmClient,
		profilesService:  profilesService,
		intentsService:   intentsService,
		promptsService:   promptsService,
		responsesService: responsesService,
		sessionsService:  sessionsService,
		usageService:     usageService,
		maxHistoryPairs:  maxHistoryPairs,
	}
}

// ProcessQuery runs the full workflow for one user query and returns
// human-readable text. It never returns an empty string and never propagates
// an error to the caller. Queries for the same session id execute strictly in
// submission order; distinct sessions run concurrently.
func (u *ChatUseCase) ProcessQuery(ctx context.Context, profileURL, query, sessionID string) string {
	if strings.TrimSpace(query) == "" {
		return EmptyQueryMessage
	}

	var response string
	if err := u.sessionsService.Run(sessionID, func() {
		response = u.runWorkflow(ctx, profileURL, query, sessionID)
	}); err != nil {
		log.Printf("❌ Failed to schedule workflow for session %s: %v", sessionID, err)
		return InternalErrorMessage
	}
	return response
}

func (u *ChatUseCase) runWorkflow(ctx context.Context, profileURL, query, sessionID string) (response string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ Workflow panic for session %s: %v", sessionID, r)
			response = InternalErrorMessage
		}
	}()

	log.Printf("📋 Starting to process query for session %s: %s", sessionID, utils.TruncateString(query, 50))

	maybeSession, err := u.sessionsService.GetSession(sessionID)
	if err != nil {
		log.Printf("❌ Failed to read session %s: %v", sessionID, err)
		return InternalErrorMessage
	}

	var lastJobRole string
	var history models.ChatHistory
	var profile *models.ProfileRecord
	if maybeSession.IsPresent() {
		state := maybeSession.MustGet()
		lastJobRole = state.LastJobRole
		history = state.History
		profile = state.Profile
	}

	// Fetch only when the session has no cached profile. A failed fetch
	// short-circuits the workflow and caches nothing.
	freshlyFetched := false
	if profile == nil {
		fetched, ok := u.fetchProfile(ctx, profileURL)
		if !ok {
			return FetchFailedMessage
		}
		profile = fetched
		freshlyFetched = true
	}

	// Routing is total: it always yields an intent, defaulting to profile
	// analysis, and never aborts the workflow.
	routed := models.RoutedQuery{
		Query:   query,
		Intent:  u.intentsService.Route(query),
		JobRole: u.intentsService.ExtractJobRole(query),
	}
	if routed.JobRole == "" {
		routed.JobRole = lastJobRole
	}
	log.Printf("🧭 Routed query to intent %s (job role: %q)", routed.Intent, routed.JobRole)

	profileSummary := u.profilesService.Summarize(profile)

	systemPrompt, err := u.promptsService.Compose(routed.Intent, profileSummary, query, routed.JobRole)
	if err != nil {
		log.Printf("❌ Failed to compose prompt for session %s: %v", sessionID, err)
		return InternalErrorMessage
	}

	messages := buildMessages(history.Truncated(u.maxHistoryPairs), query)

	raw, err := u.llmClient.Complete(ctx, systemPrompt, messages)
	if err != nil {
		// Transport failures degrade to apology text that still flows through
		// validation and the persist step like any other reply, so the
		// exchange lands in the chat history.
		log.Printf("⚠️ LLM call failed for session %s: %v", sessionID, err)
		raw = LLMUnavailableMessage
	}

	final := u.responsesService.Validate(raw)

	if err := u.sessionsService.UpdateSession(sessionID, func(state *models.SessionState) {
		if freshlyFetched {
			state.Profile = profile
		}
		state.History = append(state.History,
			models.ConversationTurn{Role: models.TurnRoleUser, Content: query},
			models.ConversationTurn{Role: models.TurnRoleAssistant, Content: final},
		)
		if routed.JobRole != "" {
			state.LastJobRole = routed.JobRole
		}
	}); err != nil {
		log.Printf("⚠️ Failed to persist session %s: %v", sessionID, err)
	}

	u.usageService.RecordExchange(sessionID, systemPrompt+"\n"+flattenMessages(messages), final)

	log.Printf("📋 Completed successfully - generated %d character response for session %s", len(final), sessionID)
	return final
}

func (u *ChatUseCase) fetchProfile(ctx context.Context, profileURL string) (*models.ProfileRecord, bool) {
	maybeProfile, err := u.scraperClient.FetchProfile(ctx, profileURL)
	if err != nil {
		log.Printf("⚠️ Profile fetch failed for %s: %v", profileURL, err)
		return nil, false
	}
	if !maybeProfile.IsPresent() {
		log.Printf("⚠️ Profile not found for %s", profileURL)
		return nil, false
	}
	return maybeProfile.MustGet(), true
}

// LoadProfile explicitly (re)fetches the profile for a session, replacing any
// cached record wholesale and resetting the chat history. It backs the UI's
// "Load Profile" action.
func (u *ChatUseCase) LoadProfile(ctx context.Context, profileURL, sessionID string) (string, error) {
	log.Printf("📋 Starting to load profile for session %s: %s", sessionID, profileURL)

	var confirmation string
	var loadErr error
	if err := u.sessionsService.Run(sessionID, func() {
		profile, ok := u.fetchProfile(ctx, profileURL)
		if !ok {
			loadErr = fmt.Errorf("could not fetch profile from %s", profileURL)
			return
		}

		if err := u.sessionsService.UpdateSession(sessionID, func(state *models.SessionState) {
			state.Profile = profile
			state.History = models.ChatHistory{}
			state.LastJobRole = ""
		}); err != nil {
			loadErr = fmt.Errorf("failed to store fetched profile: %w", err)
			return
		}

		if profile.Name != "" {
			confirmation = fmt.Sprintf("Profile loaded for %s. Start chatting below!", profile.Name)
		} else {
			confirmation = "Profile loaded! Start chatting below."
		}
	}); err != nil {
		return "", fmt.Errorf("failed to schedule profile load: %w", err)
	}

	if loadErr != nil {
		return "", loadErr
	}
	log.Printf("📋 Completed successfully - loaded profile for session %s", sessionID)
	return confirmation, nil
}

// ClearSession drops all state for the session id. Idempotent.
func (u *ChatUseCase) ClearSession(sessionID string) {
	if err := u.sessionsService.DeleteSession(sessionID); err != nil {
		log.Printf("⚠️ Failed to clear session %s: %v", sessionID, err)
		return
	}
	u.usageService.Clear(sessionID)
}

// Usage returns the session's accumulated token and cost estimates; sessions
// with no recorded usage yield a zero snapshot.
func (u *ChatUseCase) Usage(sessionID string) (services.UsageSnapshot, error) {
	maybeUsage, err := u.usageService.Snapshot(sessionID)
	if err != nil {
		return services.UsageSnapshot{}, fmt.Errorf("failed to read usage: %w", err)
	}
	if !maybeUsage.IsPresent() {
		return services.UsageSnapshot{}, nil
	}
	return maybeUsage.MustGet(), nil
}

// SessionHistory returns a copy of the session's chat history; unknown
// sessions yield an empty history.
func (u *ChatUseCase) SessionHistory(sessionID string) (models.ChatHistory, error) {
	maybeSession, err := u.sessionsService.GetSession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if !maybeSession.IsPresent() {
		return models.ChatHistory{}, nil
	}
	return maybeSession.MustGet().History, nil
}

func buildMessages(history models.ChatHistory, query string) []clients.ChatMessage {
	messages := make([]clients.ChatMessage, 0, len(history)+1)
	for _, turn := range history {
		role := clients.MessageRoleUser
		if turn.Role == models.TurnRoleAssistant {
			role = clients.MessageRoleAssistant
		}
		messages = append(messages, clients.ChatMessage{Role: role, Content: turn.Content})
	}
	return append(messages, clients.ChatMessage{Role: clients.MessageRoleUser, Content: query})
}

func flattenMessages(messages []clients.ChatMessage) string {
	var sb strings.Builder
	for _, msg := range messages {
		sb.WriteString(msg.Content)
		sb.WriteString("\n")
	}
	return sb.String()
}
