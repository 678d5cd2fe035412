package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/league-roster/internal/domain/player"
	"github.com/riskibarqy/league-roster/internal/domain/team"
	"github.com/stretchr/testify/require"
)

func TestTeamRepository_KeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewTeamRepository(nil)

	for i, name := range []string{"Lions", "Tigers", "Bears"} {
		idx, err := repo.Create(ctx, team.Team{Name: name})
		require.NoError(t, err)
		require.Equal(t, i, idx)
	}

	teams, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 3)
	require.Equal(t, "Lions", teams[0].Name)
	require.Equal(t, "Bears", teams[2].Name)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestTeamRepository_ListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewTeamRepository([]team.Team{{Name: "Lions"}})

	_, err := repo.AppendPlayer(ctx, 0, player.Player{Name: "Messi", KitNumber: 10})
	require.NoError(t, err)

	teams, err := repo.List(ctx)
	require.NoError(t, err)
	teams[0].Players[0].Name = "mutated"
	teams[0].Name = "mutated"

	got, ok, err := repo.GetByIndex(ctx, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Lions", got.Name)
	require.Equal(t, "Messi", got.Players[0].Name)
}

func TestTeamRepository_PlayerIndexes(t *testing.T) {
	ctx := context.Background()
	repo := NewTeamRepository([]team.Team{{Name: "Lions"}})

	idx, err := repo.AppendPlayer(ctx, 0, player.Player{Name: "A", KitNumber: 1})
	require.NoError(t, err)
	require.Equal(t, 0, idx)
	idx, err = repo.AppendPlayer(ctx, 0, player.Player{Name: "B", KitNumber: 2})
	require.NoError(t, err)
	require.Equal(t, 1, idx)

	require.NoError(t, repo.ReplacePlayer(ctx, 0, 1, player.Player{Name: "B", KitNumber: 22}))
	got, _, err := repo.GetByIndex(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, 22, got.Players[1].KitNumber)
	require.Equal(t, 1, got.Players[0].KitNumber)

	_, err = repo.AppendPlayer(ctx, 3, player.Player{Name: "C"})
	require.Error(t, err)
	require.Error(t, repo.ReplacePlayer(ctx, 0, 5, player.Player{}))

	_, ok, err := repo.GetByIndex(ctx, -1)
	require.NoError(t, err)
	require.False(t, ok)
}
