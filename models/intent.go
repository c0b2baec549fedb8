package models

import "strings"

// Intent is the classified purpose of a user query. It selects which prompt
// template applies. The enumeration is closed; anything unrecognized falls
// back to IntentProfileAnalysis.
type Intent string

const (
	IntentProfileAnalysis    Intent = "profile_analysis"
	IntentJobFit             Intent = "job_fit"
	IntentContentEnhancement Intent = "content_enhancement"
	IntentSkillGap           Intent = "skill_gap"
)

// IsValid reports whether the intent is one of the four known values.
func (i Intent) IsValid() bool {
	switch i {
	case IntentProfileAnalysis, IntentJobFit, IntentContentEnhancement, IntentSkillGap:
		return true
	}
	return false
}

// ParseIntent maps free text to an Intent, defaulting to profile analysis
// for anything it does not recognize.
func ParseIntent(raw string) Intent {
	intent := Intent(strings.ToLower(strings.TrimSpace(raw)))
	if intent.IsValid() {
		return intent
	}
	return IntentProfileAnalysis
}

// RoutedQuery is the result of classifying one user query. It is derived per
// workflow run and not persisted, except JobRole which may update the
// session's last known role.
type RoutedQuery struct {
	Query   string
	Intent  Intent
	JobRole string
}
