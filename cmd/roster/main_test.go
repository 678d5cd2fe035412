package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_FlagsOverrideCapacity(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("APP_LOG_OUTPUT", "discard")
	t.Setenv("ROSTER_MAX_TEAMS", "")

	var out bytes.Buffer
	input := strings.NewReader("1\nLions\n1\n5\n")
	args := []string{"roster", "--env-file", "", "--max-teams", "1", "--log-level", "debug"}

	require.NoError(t, run(context.Background(), args, input, &out))
	assert.Contains(t, out.String(), "Team Lions has been enrolled successfully.")
	assert.Contains(t, out.String(), "The maximum number of teams has already been enrolled.")
	assert.Contains(t, out.String(), "Exiting...")
}

func TestRun_InvalidConfigFails(t *testing.T) {
	t.Setenv("APP_ENV", "nowhere")
	t.Setenv("APP_LOG_OUTPUT", "discard")

	err := run(context.Background(), []string{"roster", "--env-file", ""}, strings.NewReader(""), &bytes.Buffer{})
	require.Error(t, err)
}
