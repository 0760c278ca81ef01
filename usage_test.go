package docopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSections(t *testing.T) {
	doc := `Naval Fate.

Usage:
  navalfate ship new <name>...
  navalfate ship <name> move <x> <y> [--speed=<kn>]

Options:
  -h --help     Show this screen.
  --speed=<kn>  Speed in knots [default: 10].
`
	usage := extractSections("usage:", doc)
	require.Len(t, usage, 1)
	assert.Contains(t, usage[0], "navalfate ship new <name>...")

	options := extractSections("options:", doc)
	require.Len(t, options, 1)
	assert.Contains(t, options[0], "--speed=<kn>")
}

func TestFormalUsage(t *testing.T) {
	got := formalUsage("Usage: prog [-v] <file>")
	assert.Equal(t, "( [-v] <file> )", got)
}

func TestFormalUsageMultipleInvocations(t *testing.T) {
	got := formalUsage("Usage: prog run <x>\n  prog stop")
	assert.Equal(t, "( run <x> ) | ( stop )", got)
}

func TestBuildPatternTree(t *testing.T) {
	catalogue := []optionDesc{{short: "-v", value: BoolValue(false)}}
	tree, err := buildPatternTree(formalUsage("Usage: prog [-v] <file>"), &catalogue)
	require.NoError(t, err)

	var leaves []*leaf
	tree.collectLeaves(&leaves)
	require.Len(t, leaves, 2)
	assert.Equal(t, "-v", leaves[0].name())
	assert.Equal(t, "<file>", leaves[1].name())
}

func TestBuildPatternTreeRejectsTrailingGarbage(t *testing.T) {
	catalogue := []optionDesc{}
	_, err := buildPatternTree("<file> ]", &catalogue)
	assert.Error(t, err)
}

func TestExpandOptionsShortcuts(t *testing.T) {
	catalogue := []optionDesc{
		{short: "-v", value: BoolValue(false)},
		{long: "--output", argCount: 1, value: EmptyValue()},
	}
	tree, err := buildPatternTree(formalUsage("Usage: prog -v [options]"), &catalogue)
	require.NoError(t, err)

	expandOptionsShortcuts(tree, catalogue)

	var leaves []*leaf
	tree.collectLeaves(&leaves)
	names := make(map[string]bool)
	for _, l := range leaves {
		names[l.name()] = true
	}
	assert.True(t, names["-v"])
	assert.True(t, names["--output"], "the shortcut must contribute options not already referenced")
}
