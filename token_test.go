package docopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPatternTokens(t *testing.T) {
	toks := newPatternTokens("( [-v] <file>... )")
	var got []string
	for toks.hasMore() {
		got = append(got, toks.pop())
	}
	assert.Equal(t, []string{"(", "[", "-v", "]", "<file>", "...", ")"}, got)
}

func TestArgvTokens(t *testing.T) {
	toks := newArgvTokens([]string{"ship", "new", "Guardian"})
	assert.True(t, toks.isArgv)

	first, ok := toks.current()
	assert.True(t, ok)
	assert.Equal(t, "ship", first)

	assert.Equal(t, "ship", toks.pop())
	assert.Equal(t, "new Guardian", toks.rest())
	assert.Equal(t, "new", toks.pop())
	assert.Equal(t, "Guardian", toks.pop())
	assert.False(t, toks.hasMore())
}
