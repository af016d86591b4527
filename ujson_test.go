package ujson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildComplexValue covers every variant of the value model.
func buildComplexValue() Value {
	inner := NewObject()
	inner.Object().Set("x", Bool(true))
	inner.Object().Set("y", Null())

	list := NewArray()
	list.Array().Append(Int(1))
	list.Array().Append(Int(-42))
	list.Array().Append(Float(3.14))
	list.Array().Append(Float(1))
	list.Array().Append(String("two"))
	list.Array().Append(String("with \"quotes\" and \n control"))
	list.Array().Append(NewArray())

	root := NewObject()
	root.Object().Set("name", String("test"))
	root.Object().Set("values", list)
	root.Object().Set("nested", inner)
	root.Object().Set("empty", NewObject())
	root.Object().Set("big", Float(1e300))
	root.Object().Set("tiny", Float(5e-324))
	return root
}

func TestRoundTrip(t *testing.T) {
	v := buildComplexValue()

	text, err := Dumps(v, nil)
	require.NoError(t, err)

	back, err := Loads(text)
	require.NoError(t, err)
	assert.True(t, Equal(v, back), "round trip changed the value:\n in: %s\nout: %s", v, back)
}

func TestRoundTrip_IndentAndSortDoNotChangeTheValue(t *testing.T) {
	v := buildComplexValue()

	for _, opts := range []*EncodeOptions{
		{Indent: 2},
		{Indent: 7},
		{SortKeys: true},
		{Indent: 4, SortKeys: true},
	} {
		text, err := Dumps(v, opts)
		require.NoError(t, err)
		back, err := Loads(text)
		require.NoError(t, err)
		assert.True(t, Equal(v, back), "options %+v changed the value", opts)
	}
}

func TestReencodeIsIdempotent(t *testing.T) {
	inputs := []string{
		`{"name": "test", "values": [1, 2, 3], "nested": {"x": true, "y": null}, "empty": []}`,
		`[1.5, -7, "x", false]`,
		`"lonely"`,
		`1e10`,
	}
	for _, input := range inputs {
		v, err := Loads(input)
		require.NoError(t, err)
		once, err := Dumps(v, nil)
		require.NoError(t, err)

		v2, err := Loads(once)
		require.NoError(t, err)
		twice, err := Dumps(v2, nil)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(`{"a": 1}`))
	assert.True(t, Valid("  null  "))
	assert.False(t, Valid("[1"))
	assert.False(t, Valid(""))
	assert.False(t, Valid("true false"))
}

func TestPretty(t *testing.T) {
	got, err := Pretty(`{"a":[1,2]}`, 2)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": [\n    1,\n    2\n  ]\n}", got)

	// non-positive indent falls back to 4 spaces
	got, err = Pretty(`[1]`, 0)
	require.NoError(t, err)
	assert.Equal(t, "[\n    1\n]", got)

	_, err = Pretty("[1,", 2)
	assert.Error(t, err)
}

func TestMinify(t *testing.T) {
	got, err := Minify("{\n  \"a\": [\n    1,\n    2\n  ],\n  \"b\": null\n}")
	require.NoError(t, err)
	assert.Equal(t, `{"a":[1,2],"b":null}`, got)

	_, err = Minify("{")
	assert.Error(t, err)
}
