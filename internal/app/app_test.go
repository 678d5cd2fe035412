package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/riskibarqy/league-roster/internal/config"
	"github.com/riskibarqy/league-roster/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConsole_RunsWithConfiguredCapacity(t *testing.T) {
	cfg := config.Config{AppEnv: config.EnvDev, MaxTeams: 1, MaxPlayersPerTeam: 2}

	var out bytes.Buffer
	handler, err := NewConsole(cfg, strings.NewReader("1\nLions\n1\n5\n"), &out, logging.NewNop())
	require.NoError(t, err)
	require.NoError(t, handler.Run(context.Background()))

	assert.Contains(t, out.String(), "Team Lions has been enrolled successfully.")
	assert.Contains(t, out.String(), "The maximum number of teams has already been enrolled.")
}

func TestNewConsole_RejectsInvalidRules(t *testing.T) {
	_, err := NewConsole(config.Config{MaxTeams: 0, MaxPlayersPerTeam: 5}, strings.NewReader(""), &bytes.Buffer{}, nil)
	require.Error(t, err)
}
