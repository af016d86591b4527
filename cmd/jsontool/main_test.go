package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ucharmdev/ujson"
	"github.com/ucharmdev/ujson/internal/config"
)

func TestProcess_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	out, err := process([]byte(`{"a":[1,2]}`), cfg, false)
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"a\": [\n        1,\n        2\n    ]\n}\n", out)
}

func TestProcess_Compact(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Compact = true
	cfg.TrailingNewline = false
	out, err := process([]byte("{\n  \"a\": 1\n}"), cfg, false)
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, out)
}

func TestProcess_SortKeys(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Compact = true
	cfg.SortKeys = true
	cfg.TrailingNewline = false
	out, err := process([]byte(`{"b": 1, "a": 2}`), cfg, false)
	require.NoError(t, err)
	assert.Equal(t, `{"a": 2, "b": 1}`, out)
}

func TestProcess_InvalidInput(t *testing.T) {
	cfg := config.NewConfig()
	_, err := process([]byte(`{"a":`), cfg, false)
	require.Error(t, err)
	var decErr *ujson.DecodeError
	assert.ErrorAs(t, err, &decErr)
}

func TestProcess_ValidateOnly(t *testing.T) {
	cfg := config.NewConfig()
	out, err := process([]byte(`[1, 2, 3]`), cfg, true)
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = process([]byte(`[1, 2,`), cfg, true)
	assert.Error(t, err)
}

func TestUserFriendlyError(t *testing.T) {
	_, err := ujson.Loads("{")
	require.Error(t, err)
	assert.Contains(t, userFriendlyError(err), "Invalid JSON:")

	_, err = ujson.Dumps(struct{}{}, nil)
	require.Error(t, err)
	assert.Contains(t, userFriendlyError(err), "Cannot encode:")

	assert.Contains(t, userFriendlyError(assert.AnError), "Error:")
}
