package roster

import "fmt"

// Rules stores roster capacity and field length limits.
type Rules struct {
	MaxTeams             int
	MaxPlayersPerTeam    int
	MaxTeamNameLength    int
	MaxPlayerNameLength  int
	MaxDateOfBirthLength int
	MaxPositionLength    int
}

func DefaultRules() Rules {
	return Rules{
		MaxTeams:             5,
		MaxPlayersPerTeam:    5,
		MaxTeamNameLength:    19,
		MaxPlayerNameLength:  24,
		MaxDateOfBirthLength: 49,
		MaxPositionLength:    49,
	}
}

func (r Rules) Validate() error {
	if r.MaxTeams < 1 {
		return fmt.Errorf("max teams must be >= 1, got %d", r.MaxTeams)
	}
	if r.MaxPlayersPerTeam < 1 {
		return fmt.Errorf("max players per team must be >= 1, got %d", r.MaxPlayersPerTeam)
	}
	if r.MaxTeamNameLength < 1 || r.MaxPlayerNameLength < 1 {
		return fmt.Errorf("name length limits must be >= 1")
	}
	if r.MaxDateOfBirthLength < 1 || r.MaxPositionLength < 1 {
		return fmt.Errorf("date of birth and position length limits must be >= 1")
	}

	return nil
}
