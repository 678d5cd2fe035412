package team

import (
	"fmt"

	"github.com/riskibarqy/league-roster/internal/domain/player"
)

// Team is an enrolled club with its players in insertion order.
type Team struct {
	Name    string
	Players []player.Player
}

func (t Team) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}

// Clone returns a copy that does not share the player slice.
func (t Team) Clone() Team {
	out := Team{Name: t.Name}
	if len(t.Players) > 0 {
		out.Players = make([]player.Player, len(t.Players))
		copy(out.Players, t.Players)
	}
	return out
}
