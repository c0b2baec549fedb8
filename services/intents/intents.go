package intents

import (
	"strings"

	"profilecoach/models"
)

// Keyword sets are tested in priority order; the first set with a hit wins.
// Matching is plain substring membership, so false positives like "benefit"
// triggering the job set are accepted - routing is a deterministic heuristic,
// not an understanding of the query.
var (
	jobFitKeywords      = []string{"job", "role", "position", "career", "suited", "fit"}
	enhancementKeywords = []string{"improve", "enhance", "better", "rewrite", "content"}
	skillGapKeywords    = []string{"skill", "learn", "gap", "missing", "development"}
)

// jobRolePatterns are scanned first-match-wins; specific titles come before
// generic catch-all nouns.
var jobRolePatterns = []string{
	"data scientist", "data analyst", "software engineer", "product manager", "marketing manager",
	"business analyst", "project manager", "designer", "developer", "analyst",
	"consultant", "manager", "director", "engineer", "specialist", "coordinator",
}

// IntentsService classifies user queries with keyword heuristics. Both
// operations are total: they never fail and always return a usable value.
type IntentsService struct{}

func NewIntentsService() *IntentsService {
	return &IntentsService{}
}

// Route classifies the query into one of the four intents, defaulting to
// profile analysis when nothing matches.
func (s *IntentsService) Route(query string) models.Intent {
	q := strings.ToLower(query)
	switch {
	case containsAny(q, jobFitKeywords):
		return models.IntentJobFit
	case containsAny(q, enhancementKeywords):
		return models.IntentContentEnhancement
	case containsAny(q, skillGapKeywords):
		return models.IntentSkillGap
	default:
		return models.IntentProfileAnalysis
	}
}

// ExtractJobRole returns the first known role pattern found in the query,
// title-cased, or "" when none is found. Best-effort context only, never
// authoritative.
func (s *IntentsService) ExtractJobRole(query string) string {
	q := strings.ToLower(query)
	for _, pattern := range jobRolePatterns {
		if strings.Contains(q, pattern) {
			return titleCase(pattern)
		}
	}
	return ""
}

func containsAny(query string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(query, keyword) {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
