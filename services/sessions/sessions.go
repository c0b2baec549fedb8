package sessions

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/samber/mo"

	"profilecoach/models"
)

// sessionEntry pairs one session's state with a single-worker pool. All
// workflow runs for the session are submitted to that pool, so they execute
// strictly in submission order; the mutex covers direct state access from
// outside the pool (reads, explicit updates).
type sessionEntry struct {
	mu     sync.Mutex
	closed bool
	state  *models.SessionState
	pool   *workerpool.WorkerPool
}

// SessionsService is the in-memory session table. State lives for the
// process lifetime and is dropped only by DeleteSession.
type SessionsService struct {
	mu      sync.RWMutex
	entries map[string]*sessionEntry
}

func NewSessionsService() *SessionsService {
	return &SessionsService{
		entries: make(map[string]*sessionEntry),
	}
}

func (s *SessionsService) getOrCreateEntry(sessionID string) *sessionEntry {
	s.mu.RLock()
	entry, ok := s.entries[sessionID]
	s.mu.RUnlock()
	if ok {
		return entry
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.entries[sessionID]; ok {
		return entry
	}

	now := time.Now()
	entry = &sessionEntry{
		state: &models.SessionState{
			ID:        sessionID,
			History:   models.ChatHistory{},
			CreatedAt: now,
			UpdatedAt: now,
		},
		pool: workerpool.New(1), // Sequential processing per session
	}
	s.entries[sessionID] = entry
	log.Printf("📋 Created new session: %s", sessionID)
	return entry
}

// GetSession returns a snapshot copy of the session state, or None for an
// unknown session id. Callers can inspect the copy freely without racing
// in-flight workflow runs.
func (s *SessionsService) GetSession(sessionID string) (mo.Option[*models.SessionState], error) {
	if sessionID == "" {
		return mo.None[*models.SessionState](), fmt.Errorf("session ID cannot be empty")
	}

	s.mu.RLock()
	entry, ok := s.entries[sessionID]
	s.mu.RUnlock()
	if !ok {
		return mo.None[*models.SessionState](), nil
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return mo.Some(snapshotState(entry.state)), nil
}

// UpdateSession applies update to the session's live state under the entry
// lock, creating the session first if needed.
func (s *SessionsService) UpdateSession(sessionID string, update func(*models.SessionState)) error {
	if sessionID == "" {
		return fmt.Errorf("session ID cannot be empty")
	}
	if update == nil {
		return fmt.Errorf("update function cannot be nil")
	}

	entry := s.getOrCreateEntry(sessionID)
	entry.mu.Lock()
	defer entry.mu.Unlock()
	update(entry.state)
	entry.state.UpdatedAt = time.Now()
	return nil
}

// DeleteSession drops all state for the session id. Deleting an unknown
// session is a no-op, so the operation is idempotent.
func (s *SessionsService) DeleteSession(sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("session ID cannot be empty")
	}

	s.mu.Lock()
	entry, ok := s.entries[sessionID]
	delete(s.entries, sessionID)
	s.mu.Unlock()

	if ok {
		entry.mu.Lock()
		entry.closed = true
		entry.mu.Unlock()
		// Drain queued work in the background; the pool rejects nothing that
		// was already submitted, it just stops existing afterwards.
		go entry.pool.StopWait()
		log.Printf("🧹 Cleared session: %s", sessionID)
	}
	return nil
}

// Run executes task on the session's single-worker pool and waits for it to
// finish. Tasks for one session run strictly in submission order; tasks for
// different sessions run concurrently.
func (s *SessionsService) Run(sessionID string, task func()) error {
	if sessionID == "" {
		return fmt.Errorf("session ID cannot be empty")
	}
	if task == nil {
		return fmt.Errorf("task cannot be nil")
	}

	done := make(chan struct{})
	wrapped := func() {
		defer close(done)
		task()
	}

	// A concurrent DeleteSession may close the entry between lookup and
	// submit; retry against the fresh entry the next lookup creates.
	for {
		entry := s.getOrCreateEntry(sessionID)
		entry.mu.Lock()
		if entry.closed {
			entry.mu.Unlock()
			continue
		}
		entry.pool.Submit(wrapped)
		entry.mu.Unlock()
		break
	}

	<-done
	return nil
}

func snapshotState(state *models.SessionState) *models.SessionState {
	snapshot := *state
	snapshot.History = make(models.ChatHistory, len(state.History))
	copy(snapshot.History, state.History)
	return &snapshot
}
