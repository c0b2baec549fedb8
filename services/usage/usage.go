package usage

import (
	"fmt"
	"log"
	"sync"

	"github.com/samber/mo"
	"github.com/shopspring/decimal"

	"profilecoach/core"
	"profilecoach/services"
)

var million = decimal.NewFromInt(1_000_000)

// UsageService accumulates estimated token counts and cost per session.
// Counts are estimates (see core.EstimateTokens); the numbers are
// informational and never gate a request.
type UsageService struct {
	mu         sync.Mutex
	perSession map[string]*services.UsageSnapshot

	promptPricePerMTok     decimal.Decimal
	completionPricePerMTok decimal.Decimal
}

// NewUsageService creates a usage accountant with per-million-token prices
func NewUsageService(promptPricePerMTok, completionPricePerMTok decimal.Decimal) *UsageService {
	return &UsageService{
		perSession:             make(map[string]*services.UsageSnapshot),
		promptPricePerMTok:     promptPricePerMTok,
		completionPricePerMTok: completionPricePerMTok,
	}
}

// RecordExchange adds one prompt/completion exchange to the session's tally
func (s *UsageService) RecordExchange(sessionID, promptText, completionText string) {
	if sessionID == "" {
		return
	}

	promptTokens := core.EstimateTokens(promptText)
	completionTokens := core.EstimateTokens(completionText)

	cost := decimal.NewFromInt(int64(promptTokens)).Mul(s.promptPricePerMTok).Div(million).
		Add(decimal.NewFromInt(int64(completionTokens)).Mul(s.completionPricePerMTok).Div(million))

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, ok := s.perSession[sessionID]
	if !ok {
		snapshot = &services.UsageSnapshot{EstimatedCost: decimal.Zero}
		s.perSession[sessionID] = snapshot
	}
	snapshot.PromptTokens += promptTokens
	snapshot.CompletionTokens += completionTokens
	snapshot.EstimatedCost = snapshot.EstimatedCost.Add(cost)

	log.Printf("💰 Session %s usage: ~%d prompt + ~%d completion tokens ($%s estimated total)",
		sessionID, snapshot.PromptTokens, snapshot.CompletionTokens, snapshot.EstimatedCost.StringFixed(6))
}

// Snapshot returns the session's accumulated usage, or None when nothing has
// been recorded for it.
func (s *UsageService) Snapshot(sessionID string) (mo.Option[services.UsageSnapshot], error) {
	if sessionID == "" {
		return mo.None[services.UsageSnapshot](), fmt.Errorf("session ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, ok := s.perSession[sessionID]
	if !ok {
		return mo.None[services.UsageSnapshot](), nil
	}
	return mo.Some(*snapshot), nil
}

// Clear drops the session's usage tally; unknown ids are a no-op
func (s *UsageService) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.perSession, sessionID)
}
