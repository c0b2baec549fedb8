package usage

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *UsageService {
	return NewUsageService(decimal.NewFromInt(3), decimal.NewFromInt(15))
}

func TestSnapshot_UnknownSessionIsNone(t *testing.T) {
	service := newTestService()

	maybeSnapshot, err := service.Snapshot("sess_unknown")
	require.NoError(t, err)
	assert.False(t, maybeSnapshot.IsPresent())
}

func TestRecordExchange_Accumulates(t *testing.T) {
	service := newTestService()
	prompt := strings.Repeat("prompt words here ", 50)
	completion := strings.Repeat("reply words here ", 50)

	service.RecordExchange("sess_a", prompt, completion)

	maybeFirst, err := service.Snapshot("sess_a")
	require.NoError(t, err)
	require.True(t, maybeFirst.IsPresent())
	first := maybeFirst.MustGet()
	assert.Greater(t, first.PromptTokens, 0)
	assert.Greater(t, first.CompletionTokens, 0)
	assert.True(t, first.EstimatedCost.GreaterThan(decimal.Zero))

	service.RecordExchange("sess_a", prompt, completion)

	maybeSecond, err := service.Snapshot("sess_a")
	require.NoError(t, err)
	second := maybeSecond.MustGet()
	assert.Equal(t, first.PromptTokens*2, second.PromptTokens)
	assert.True(t, second.EstimatedCost.Equal(first.EstimatedCost.Mul(decimal.NewFromInt(2))))
}

func TestClear_RemovesTally(t *testing.T) {
	service := newTestService()
	service.RecordExchange("sess_a", "some prompt", "some longer completion text")
	service.RecordExchange("sess_b", "other prompt", "other completion")

	service.Clear("sess_a")
	service.Clear("sess_never_existed")

	maybeA, err := service.Snapshot("sess_a")
	require.NoError(t, err)
	assert.False(t, maybeA.IsPresent())

	maybeB, err := service.Snapshot("sess_b")
	require.NoError(t, err)
	assert.True(t, maybeB.IsPresent())
}
