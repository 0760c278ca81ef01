package docopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueRender(t *testing.T) {
	for _, tc := range []struct {
		name string
		v    Value
		want string
	}{
		{"empty", EmptyValue(), "null"},
		{"bool true", BoolValue(true), "true"},
		{"bool false", BoolValue(false), "false"},
		{"int", IntValue(3), "3"},
		{"string", StringValue("out.txt"), `"out.txt"`},
		{"empty list", ListValue(), "[]"},
		{"list", ListValue("Alpha", "Bravo"), `[ "Alpha", "Bravo" ]`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.v.Render())
			assert.Equal(t, tc.want, tc.v.String())
		})
	}
}

func TestValueEqual(t *testing.T) {
	assert.True(t, EmptyValue().Equal(EmptyValue()))
	assert.True(t, IntValue(2).Equal(IntValue(2)))
	assert.False(t, IntValue(2).Equal(IntValue(3)))
	assert.True(t, ListValue("a", "b").Equal(ListValue("a", "b")))
	assert.False(t, ListValue("a", "b").Equal(ListValue("b", "a")))
	assert.False(t, IntValue(0).Equal(BoolValue(false)))
}

func TestValueAsInt(t *testing.T) {
	n, err := StringValue("42").AsInt()
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	n, err = IntValue(7).AsInt()
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = StringValue("7cm").AsInt()
	assert.Error(t, err)
}

func TestValueBytes(t *testing.T) {
	n, err := StringValue("10MB").Bytes()
	require.NoError(t, err)
	assert.Equal(t, uint64(10*1000*1000), n)

	_, err = IntValue(1).Bytes()
	assert.Error(t, err)
}

func TestValueList(t *testing.T) {
	v := ListValue("a", "b")
	got := v.List()
	got[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, v.List(), "List must return a copy")
}
