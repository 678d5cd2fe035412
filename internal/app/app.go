package app

import (
	"fmt"
	"io"

	"github.com/riskibarqy/league-roster/internal/config"
	"github.com/riskibarqy/league-roster/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-roster/internal/interfaces/console"
	"github.com/riskibarqy/league-roster/internal/platform/logging"
	"github.com/riskibarqy/league-roster/internal/usecase"
)

// NewConsole wires an empty in-memory roster to a console reading in and
// writing out.
func NewConsole(cfg config.Config, in io.Reader, out io.Writer, logger *logging.Logger) (*console.Handler, error) {
	rules := cfg.Rules()
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid roster rules: %w", err)
	}
	if in == nil || out == nil {
		return nil, fmt.Errorf("console input and output are required")
	}

	teamRepo := memory.NewTeamRepository(nil)
	rosterSvc := usecase.NewRosterService(teamRepo, rules, logger)

	return console.NewHandler(rosterSvc, in, out, logger), nil
}
