package player

import (
	"fmt"

	"github.com/riskibarqy/league-roster/internal/platform/textfold"
)

const (
	MinKitNumber = 1
	MaxKitNumber = 99
)

// Field names a player attribute that can be changed after creation.
type Field string

const (
	FieldName        Field = "name"
	FieldKitNumber   Field = "kit_number"
	FieldDateOfBirth Field = "dob"
	FieldPosition    Field = "position"
)

var AllFields = map[Field]struct{}{
	FieldName:        {},
	FieldKitNumber:   {},
	FieldDateOfBirth: {},
	FieldPosition:    {},
}

// Player is a squad member of a single team. Position is free-form.
type Player struct {
	Name        string
	KitNumber   int
	DateOfBirth string
	Position    string
}

func (p Player) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if err := ValidateKitNumber(p.KitNumber); err != nil {
		return err
	}

	return nil
}

// ValidateKitNumber checks the 1-99 range only; uniqueness is a roster concern.
func ValidateKitNumber(kit int) error {
	if kit < MinKitNumber || kit > MaxKitNumber {
		return fmt.Errorf("kit number must be between %d and %d, got %d", MinKitNumber, MaxKitNumber, kit)
	}
	return nil
}

// SameName reports whether the player is called name, ignoring case.
func (p Player) SameName(name string) bool {
	return textfold.Equal(p.Name, name)
}
