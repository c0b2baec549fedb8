package models

import "time"

// SessionState is the per-session mutable state: the cached profile record,
// the bounded chat history, and the last job role extracted from a query.
// It is exclusively owned by the sessions store and lives for the process
// lifetime unless explicitly cleared.
type SessionState struct {
	ID          string        `json:"id"`
	Profile     *ProfileRecord `json:"profile,omitempty"`
	History     ChatHistory   `json:"history"`
	LastJobRole string        `json:"last_job_role,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// HasProfile reports whether a profile record has been cached for the session.
func (s *SessionState) HasProfile() bool {
	return s != nil && s.Profile != nil
}
