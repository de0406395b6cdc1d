package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "docck dev (none)\n", out)
}

func TestVerboseFlagAccepted(t *testing.T) {
	_, err := runCLI(t, "--verbose", "version")
	assert.NoError(t, err)
}

func TestDocumentsCommand(t *testing.T) {
	out, err := runCLI(t, "documents", "plugin")
	require.NoError(t, err)
	assert.Contains(t, out, "Documents expected for plugin projects:")
	assert.Contains(t, out, "apt/index.apt")
	assert.Contains(t, out, "**/examples/* | example*")
	assert.Contains(t, out, "resources/example*.html.vm")
}

func TestDocumentsCommand_JSON(t *testing.T) {
	out, err := runCLI(t, "documents", "aggregator", "--json")
	require.NoError(t, err)

	var docs []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	assert.Len(t, docs, 1)
}

func TestDocumentsCommand_UnknownPackaging(t *testing.T) {
	_, err := runCLI(t, "documents", "war")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown packaging "war"`)
}
