package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateTokens_Empty(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
}

func TestEstimateTokens_ShortText(t *testing.T) {
	tokens := EstimateTokens("hello world")
	assert.Greater(t, tokens, 0)
}

func TestEstimateTokens_GrowsWithContent(t *testing.T) {
	short := EstimateTokens(strings.Repeat("word ", 20))
	long := EstimateTokens(strings.Repeat("word ", 200))
	assert.Greater(t, long, short)
}
