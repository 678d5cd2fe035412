package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/league-roster/internal/domain/player"
	"github.com/riskibarqy/league-roster/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams []team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	rows := make([]team.Team, 0, len(teams))
	for _, item := range teams {
		rows = append(rows, item.Clone())
	}

	return &TeamRepository{teams: rows}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.teams))
	for _, item := range r.teams {
		out = append(out, item.Clone())
	}

	return out, nil
}

func (r *TeamRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.teams), nil
}

func (r *TeamRepository) GetByIndex(_ context.Context, teamIndex int) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if teamIndex < 0 || teamIndex >= len(r.teams) {
		return team.Team{}, false, nil
	}

	return r.teams[teamIndex].Clone(), true, nil
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.teams = append(r.teams, item.Clone())

	return len(r.teams) - 1, nil
}

func (r *TeamRepository) AppendPlayer(_ context.Context, teamIndex int, item player.Player) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if teamIndex < 0 || teamIndex >= len(r.teams) {
		return 0, fmt.Errorf("team index %d out of range", teamIndex)
	}

	r.teams[teamIndex].Players = append(r.teams[teamIndex].Players, item)

	return len(r.teams[teamIndex].Players) - 1, nil
}

func (r *TeamRepository) ReplacePlayer(_ context.Context, teamIndex, playerIndex int, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if teamIndex < 0 || teamIndex >= len(r.teams) {
		return fmt.Errorf("team index %d out of range", teamIndex)
	}
	players := r.teams[teamIndex].Players
	if playerIndex < 0 || playerIndex >= len(players) {
		return fmt.Errorf("player index %d out of range for team %d", playerIndex, teamIndex)
	}

	players[playerIndex] = item

	return nil
}
