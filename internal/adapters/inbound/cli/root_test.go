package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "orderlens dev")
}

func TestMCPCommandExists(t *testing.T) {
	_, err := execute(t, "mcp", "--help")
	assert.NoError(t, err)
}

func TestMCPServeCommandExists(t *testing.T) {
	_, err := execute(t, "mcp", "serve", "--help")
	assert.NoError(t, err)
}

func TestMCPServeRequiresBatch(t *testing.T) {
	_, err := execute(t, "mcp", "serve")
	assert.Error(t, err)
}
