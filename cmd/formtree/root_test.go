package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"validate", "normalize", "submit", "inspect", "fill", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestOptionsFrom_PositionalDefinition(t *testing.T) {
	cmd := validateCmd
	require.NoError(t, cmd.ParseFlags([]string{"--data", "data.json", "--format", "json", "--strict"}))

	opts := optionsFrom(cmd, []string{"form.yaml"})
	assert.Equal(t, "form.yaml", opts.DefPath)
	assert.Equal(t, "data.json", opts.DataPath)
	assert.Equal(t, "json", opts.Format)
	assert.True(t, opts.Strict)
	assert.False(t, opts.Debug)
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "formtree version")
}
