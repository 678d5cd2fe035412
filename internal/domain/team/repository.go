package team

import (
	"context"

	"github.com/riskibarqy/league-roster/internal/domain/player"
)

// Repository stores teams in enrollment order. Indexes are 0-based positions
// in that order. Uniqueness and capacity are enforced by callers.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	Count(ctx context.Context) (int, error)
	GetByIndex(ctx context.Context, teamIndex int) (Team, bool, error)
	Create(ctx context.Context, item Team) (int, error)
	AppendPlayer(ctx context.Context, teamIndex int, item player.Player) (int, error)
	ReplacePlayer(ctx context.Context, teamIndex, playerIndex int, item player.Player) error
}
