package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildHistory(pairs int) ChatHistory {
	history := ChatHistory{}
	for i := 0; i < pairs; i++ {
		history = append(history,
			ConversationTurn{Role: TurnRoleUser, Content: fmt.Sprintf("question %d", i)},
			ConversationTurn{Role: TurnRoleAssistant, Content: fmt.Sprintf("answer %d", i)},
		)
	}
	return history
}

func TestChatHistory_Truncated_KeepsMostRecentPairs(t *testing.T) {
	history := buildHistory(15) // 30 turns

	truncated := history.Truncated(10)

	require.Len(t, truncated, 20)
	assert.Equal(t, "question 5", truncated[0].Content)
	assert.Equal(t, "answer 14", truncated[len(truncated)-1].Content)
}

func TestChatHistory_Truncated_ShortHistoryUntouched(t *testing.T) {
	history := buildHistory(3)
	assert.Len(t, history.Truncated(10), 6)
}

func TestChatHistory_Truncated_ZeroPairs(t *testing.T) {
	assert.Empty(t, buildHistory(5).Truncated(0))
}
