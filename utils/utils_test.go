package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssertInvariant(t *testing.T) {
	assert.NotPanics(t, func() { AssertInvariant(true, "should not panic") })
	assert.PanicsWithValue(t, "invariant violated - boom", func() {
		AssertInvariant(false, "boom")
	})
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "exact", TruncateString("exact", 5))
	assert.Equal(t, "abc...", TruncateString("abcdef", 3))
	assert.Equal(t, "", TruncateString("anything", 0))

	// Trailing whitespace at the cut point is trimmed before the marker
	assert.Equal(t, "one...", TruncateString("one two three", 4))
}
