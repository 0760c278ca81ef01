package docopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareIdentities(t *testing.T) {
	a := newOption("-v", "", 0, BoolValue(false))
	b := newOption("-v", "", 0, BoolValue(false))
	tree := newRequired(newOptional(a), newOptional(b))

	shareIdentities(tree, map[uint64]pattern{})

	first := tree.children[0].(*branch).children[0]
	second := tree.children[1].(*branch).children[0]
	assert.Same(t, first, second, "two structurally-equal options must share one instance")
}

func TestFixRepeatingArgumentsPromotesFlagToCounter(t *testing.T) {
	// A reduced form of [-v | -vv]: an Either of Required(-v) and
	// Required(-v, -v), with three separate -v instances before
	// canonicalization. transformToSequences flattens the Either and each
	// OneOrMore-free Required alternative directly.
	v1 := newOption("-v", "", 0, BoolValue(false))
	v2 := newOption("-v", "", 0, BoolValue(false))
	v3 := newOption("-v", "", 0, BoolValue(false))
	tree := newRequired(newEither(
		newRequired(v1),
		newRequired(v2, v3),
	))

	canonicalize(tree)

	var leaves []*leaf
	tree.collectLeaves(&leaves)
	for _, l := range leaves {
		assert.Equal(t, KindInt, l.value.Kind(), "a flag repeated within any alternative becomes a counter")
	}
}

func TestFixRepeatingArgumentsPromotesArgumentToList(t *testing.T) {
	name := newOneOrMore(newArgument("<name>", EmptyValue()))
	tree := newRequired(name)

	canonicalize(tree)

	var leaves []*leaf
	tree.collectLeaves(&leaves)
	require.Len(t, leaves, 1)
	assert.Equal(t, KindList, leaves[0].value.Kind())
}

func TestTransformToSequencesExpandsOneOrMore(t *testing.T) {
	child := newArgument("<x>", EmptyValue())
	seqs := transformToSequences([]pattern{newOneOrMore(child)})
	require.Len(t, seqs, 1)
	assert.Len(t, seqs[0], 2)
}
