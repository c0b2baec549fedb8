package profiles

import (
	"fmt"
	"strings"

	"profilecoach/models"
	"profilecoach/utils"
)

const (
	// NotAvailableMessage is returned when there is no profile data to summarize
	NotAvailableMessage = "Profile data not available"
	// LimitedInfoMessage is returned when a record exists but carries nothing usable
	LimitedInfoMessage = "Limited profile information available"

	summaryMaxChars      = 500
	maxExperienceEntries = 4
	maxSkillNames        = 12
)

// ProfilesService condenses a raw profile record into a bounded summary
// suitable for interpolation into an LLM prompt. Summarize is deterministic
// and has no side effects.
type ProfilesService struct{}

func NewProfilesService() *ProfilesService {
	return &ProfilesService{}
}

func (s *ProfilesService) Summarize(profile *models.ProfileRecord) string {
	if profile.IsEmpty() {
		return NotAvailableMessage
	}

	var parts []string

	if profile.Name != "" {
		parts = append(parts, fmt.Sprintf("Name: %s", profile.Name))
	}
	if profile.Headline != "" {
		parts = append(parts, fmt.Sprintf("Headline: %s", profile.Headline))
	}
	if profile.Summary != "" {
		parts = append(parts, fmt.Sprintf("Summary: %s", utils.TruncateString(profile.Summary, summaryMaxChars)))
	}

	if lines := experienceLines(profile.Experience); len(lines) > 0 {
		parts = append(parts, "Experience:")
		parts = append(parts, lines...)
	}

	if skills := skillNames(profile.Skills); len(skills) > 0 {
		parts = append(parts, fmt.Sprintf("Skills: %s", strings.Join(skills, ", ")))
	}

	if len(parts) == 0 {
		return LimitedInfoMessage
	}
	return strings.Join(parts, "\n")
}

func experienceLines(entries []models.ExperienceEntry) []string {
	var lines []string
	for _, entry := range entries {
		if len(lines) == maxExperienceEntries {
			break
		}
		if entry.Title == "" && entry.Company == "" {
			continue
		}

		var line string
		switch {
		case entry.Title != "" && entry.Company != "":
			line = fmt.Sprintf("%s at %s", entry.Title, entry.Company)
		case entry.Title != "":
			line = entry.Title
		default:
			line = entry.Company
		}
		if entry.Duration != "" {
			line = fmt.Sprintf("%s (%s)", line, entry.Duration)
		}
		lines = append(lines, "  - "+line)
	}
	return lines
}

func skillNames(skills []models.Skill) []string {
	var names []string
	for _, skill := range skills {
		if len(names) == maxSkillNames {
			break
		}
		if skill.Name == "" {
			continue
		}
		names = append(names, skill.Name)
	}
	return names
}
