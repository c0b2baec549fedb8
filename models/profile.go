package models

import (
	"encoding/json"
	"fmt"
)

// ProfileRecord is the normalized representation of a scraped professional
// profile. The scraper emits semi-structured data, so every field is optional;
// shape coercion happens at the JSON boundary. A record is immutable once
// cached for a session and only replaced wholesale on explicit re-fetch.
type ProfileRecord struct {
	Name       string            `json:"name,omitempty"`
	Headline   string            `json:"headline,omitempty"`
	Summary    string            `json:"summary,omitempty"`
	Experience []ExperienceEntry `json:"experience,omitempty"`
	Skills     []Skill           `json:"skills,omitempty"`
	Education  []EducationEntry  `json:"education,omitempty"`
}

// IsEmpty reports whether the record carries no usable content at all.
func (p *ProfileRecord) IsEmpty() bool {
	if p == nil {
		return true
	}
	return p.Name == "" && p.Headline == "" && p.Summary == "" &&
		len(p.Experience) == 0 && len(p.Skills) == 0 && len(p.Education) == 0
}

type ExperienceEntry struct {
	Title    string `json:"title,omitempty"`
	Company  string `json:"company,omitempty"`
	Duration string `json:"duration,omitempty"`
}

type EducationEntry struct {
	School string `json:"school,omitempty"`
	Degree string `json:"degree,omitempty"`
	Field  string `json:"field,omitempty"`
}

// Skill appears in scraper payloads either as a bare string or as an object
// with a "name" field. UnmarshalJSON accepts both shapes.
type Skill struct {
	Name string `json:"name"`
}

func (s *Skill) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		s.Name = plain
		return nil
	}

	var structured struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &structured); err != nil {
		return fmt.Errorf("skill must be a string or an object with a name field: %w", err)
	}
	s.Name = structured.Name
	return nil
}
