package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/league-roster/internal/domain/player"
	"github.com/riskibarqy/league-roster/internal/domain/team"
	"github.com/stretchr/testify/mock"
)

// teamRepositoryMock follows the mockery layout used for repository mocks.
type teamRepositoryMock struct {
	mock.Mock
}

func newTeamRepositoryMock(t *testing.T) *teamRepositoryMock {
	m := &teamRepositoryMock{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *teamRepositoryMock) List(ctx context.Context) ([]team.Team, error) {
	ret := m.Called(ctx)

	var out []team.Team
	if v, ok := ret.Get(0).([]team.Team); ok {
		out = v
	}
	return out, ret.Error(1)
}

func (m *teamRepositoryMock) Count(ctx context.Context) (int, error) {
	ret := m.Called(ctx)
	return ret.Int(0), ret.Error(1)
}

func (m *teamRepositoryMock) GetByIndex(ctx context.Context, teamIndex int) (team.Team, bool, error) {
	ret := m.Called(ctx, teamIndex)
	return ret.Get(0).(team.Team), ret.Bool(1), ret.Error(2)
}

func (m *teamRepositoryMock) Create(ctx context.Context, item team.Team) (int, error) {
	ret := m.Called(ctx, item)
	return ret.Int(0), ret.Error(1)
}

func (m *teamRepositoryMock) AppendPlayer(ctx context.Context, teamIndex int, item player.Player) (int, error) {
	ret := m.Called(ctx, teamIndex, item)
	return ret.Int(0), ret.Error(1)
}

func (m *teamRepositoryMock) ReplacePlayer(ctx context.Context, teamIndex, playerIndex int, item player.Player) error {
	ret := m.Called(ctx, teamIndex, playerIndex, item)
	return ret.Error(0)
}

var _ team.Repository = (*teamRepositoryMock)(nil)
