package sessions

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profilecoach/models"
)

func TestGetSession_UnknownIDIsNone(t *testing.T) {
	service := NewSessionsService()

	maybeSession, err := service.GetSession("sess_unknown")
	require.NoError(t, err)
	assert.False(t, maybeSession.IsPresent())
}

func TestGetSession_EmptyIDIsError(t *testing.T) {
	service := NewSessionsService()

	_, err := service.GetSession("")
	assert.Error(t, err)
}

func TestUpdateSession_CreatesAndMutates(t *testing.T) {
	service := NewSessionsService()

	require.NoError(t, service.UpdateSession("sess_a", func(state *models.SessionState) {
		state.Profile = &models.ProfileRecord{Name: "Jane"}
		state.LastJobRole = "Data Scientist"
	}))

	maybeSession, err := service.GetSession("sess_a")
	require.NoError(t, err)
	require.True(t, maybeSession.IsPresent())

	state := maybeSession.MustGet()
	assert.Equal(t, "sess_a", state.ID)
	assert.True(t, state.HasProfile())
	assert.Equal(t, "Jane", state.Profile.Name)
	assert.Equal(t, "Data Scientist", state.LastJobRole)
	assert.False(t, state.UpdatedAt.IsZero())
}

func TestGetSession_ReturnsSnapshot(t *testing.T) {
	service := NewSessionsService()

	require.NoError(t, service.UpdateSession("sess_a", func(state *models.SessionState) {
		state.History = append(state.History, models.ConversationTurn{Role: models.TurnRoleUser, Content: "hi"})
	}))

	maybeSession, err := service.GetSession("sess_a")
	require.NoError(t, err)
	snapshot := maybeSession.MustGet()

	// Mutating the snapshot must not leak into the stored state
	snapshot.History[0].Content = "tampered"
	snapshot.LastJobRole = "Hacker"

	maybeAgain, err := service.GetSession("sess_a")
	require.NoError(t, err)
	assert.Equal(t, "hi", maybeAgain.MustGet().History[0].Content)
	assert.Equal(t, "", maybeAgain.MustGet().LastJobRole)
}

func TestSessions_AreIsolated(t *testing.T) {
	service := NewSessionsService()

	require.NoError(t, service.UpdateSession("sess_a", func(state *models.SessionState) {
		state.Profile = &models.ProfileRecord{Name: "A"}
		state.History = append(state.History, models.ConversationTurn{Role: models.TurnRoleUser, Content: "from a"})
	}))
	require.NoError(t, service.UpdateSession("sess_b", func(state *models.SessionState) {
		state.Profile = &models.ProfileRecord{Name: "B"}
	}))

	require.NoError(t, service.DeleteSession("sess_a"))

	maybeA, err := service.GetSession("sess_a")
	require.NoError(t, err)
	assert.False(t, maybeA.IsPresent())

	maybeB, err := service.GetSession("sess_b")
	require.NoError(t, err)
	require.True(t, maybeB.IsPresent())
	assert.Equal(t, "B", maybeB.MustGet().Profile.Name)
}

func TestDeleteSession_Idempotent(t *testing.T) {
	service := NewSessionsService()

	require.NoError(t, service.UpdateSession("sess_a", func(*models.SessionState) {}))
	require.NoError(t, service.DeleteSession("sess_a"))
	require.NoError(t, service.DeleteSession("sess_a"))
	require.NoError(t, service.DeleteSession("sess_never_existed"))
}

func TestRun_AtMostOneTaskPerSession(t *testing.T) {
	service := NewSessionsService()

	var mu sync.Mutex
	active := 0
	maxActive := 0

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := service.Run("sess_a", func() {
				mu.Lock()
				active++
				if active > maxActive {
					maxActive = active
				}
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				active--
				mu.Unlock()
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxActive, "tasks for one session must never overlap")
}

func TestRun_DifferentSessionsOverlap(t *testing.T) {
	service := NewSessionsService()

	started := make(chan struct{})
	release := make(chan struct{})

	go func() {
		_ = service.Run("sess_a", func() {
			close(started)
			<-release
		})
	}()
	<-started

	// sess_b is not blocked behind sess_a's in-flight task
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = service.Run("sess_b", func() {})
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("cross-session work was serialized")
	}
	close(release)
}

func TestRun_BlocksUntilTaskCompletes(t *testing.T) {
	service := NewSessionsService()

	ran := false
	require.NoError(t, service.Run("sess_a", func() {
		time.Sleep(10 * time.Millisecond)
		ran = true
	}))
	assert.True(t, ran)
}

func TestRun_NilTaskIsError(t *testing.T) {
	service := NewSessionsService()
	assert.Error(t, service.Run("sess_a", nil))
}
