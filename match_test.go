package docopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeafMatchArgument(t *testing.T) {
	pat := newArgument("<file>", EmptyValue())
	left := []*leaf{newArgument("", StringValue("a.txt"))}

	ok, newLeft, collected := pat.match(left, nil)
	require.True(t, ok)
	assert.Empty(t, newLeft)
	require.Len(t, collected, 1)
	assert.Equal(t, "<file>", collected[0].name())
	assert.True(t, StringValue("a.txt").Equal(collected[0].value))
}

func TestLeafMatchCommandStopsAtFirstArgument(t *testing.T) {
	pat := newCommand("ship")
	left := []*leaf{
		newOption("-v", "", 0, BoolValue(true)),
		newArgument("", StringValue("shoot")),
	}
	ok, _, _ := pat.match(left, nil)
	assert.False(t, ok, "shoot != ship, and the search must not skip past the first positional")
}

func TestRequiredFailsAllOrNothing(t *testing.T) {
	req := newRequired(newCommand("ship"), newCommand("new"))
	left := []*leaf{newArgument("", StringValue("ship"))}

	ok, newLeft, collected := req.match(left, nil)
	assert.False(t, ok)
	assert.Equal(t, left, newLeft)
	assert.Nil(t, collected)
}

func TestOptionalAlwaysSucceeds(t *testing.T) {
	opt := newOptional(newOption("-v", "", 0, BoolValue(false)))
	ok, left, _ := opt.match(nil, nil)
	assert.True(t, ok)
	assert.Empty(t, left)
}

func TestOneOrMoreMatchesGreedily(t *testing.T) {
	// canonicalize would have already promoted this leaf's value to a List,
	// since it recurs under the OneOrMore; match itself never inspects
	// arity, only the declared Value's kind.
	oom := newOneOrMore(newArgument("<x>", ListValue()))
	left := []*leaf{
		newArgument("", StringValue("a")),
		newArgument("", StringValue("b")),
	}
	ok, newLeft, collected := oom.match(left, nil)
	require.True(t, ok)
	assert.Empty(t, newLeft)
	require.Len(t, collected, 1)
	assert.True(t, ListValue("a", "b").Equal(collected[0].value))
}

func TestOneOrMoreRequiresAtLeastOne(t *testing.T) {
	oom := newOneOrMore(newArgument("<x>", EmptyValue()))
	ok, _, _ := oom.match(nil, nil)
	assert.False(t, ok)
}

func TestEitherPicksSmallestResidual(t *testing.T) {
	either := newEither(
		newRequired(newArgument("<a>", EmptyValue())),
		newRequired(newArgument("<a>", EmptyValue()), newArgument("<b>", EmptyValue())),
	)
	left := []*leaf{
		newArgument("", StringValue("x")),
		newArgument("", StringValue("y")),
	}
	ok, newLeft, collected := either.match(left, nil)
	require.True(t, ok)
	assert.Empty(t, newLeft)
	require.Len(t, collected, 2)
}

func TestAccumulateCounter(t *testing.T) {
	declared := newOption("-v", "", 0, IntValue(0))
	matched := newOption("-v", "", 0, BoolValue(true))

	collected := accumulate(declared, matched, nil)
	collected = accumulate(declared, matched, collected)
	collected = accumulate(declared, matched, collected)

	require.Len(t, collected, 1)
	assert.True(t, IntValue(3).Equal(collected[0].value))
}
