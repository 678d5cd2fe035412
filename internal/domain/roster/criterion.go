package roster

import (
	"fmt"

	"github.com/riskibarqy/league-roster/internal/domain/player"
)

// CriterionKind selects how a player search matches.
type CriterionKind int

const (
	ByKitNumber CriterionKind = iota + 1
	ByName
)

// Criterion is a single player search key.
type Criterion struct {
	Kind      CriterionKind
	KitNumber int
	Name      string
}

func KitNumberCriterion(kit int) Criterion {
	return Criterion{Kind: ByKitNumber, KitNumber: kit}
}

func NameCriterion(name string) Criterion {
	return Criterion{Kind: ByName, Name: name}
}

func (c Criterion) Validate() error {
	switch c.Kind {
	case ByKitNumber:
		return nil
	case ByName:
		if c.Name == "" {
			return fmt.Errorf("search name is required")
		}
		return nil
	default:
		return fmt.Errorf("unknown search criterion %d", c.Kind)
	}
}

// Matches reports whether p satisfies the criterion.
func (c Criterion) Matches(p player.Player) bool {
	switch c.Kind {
	case ByKitNumber:
		return p.KitNumber == c.KitNumber
	case ByName:
		return p.SameName(c.Name)
	default:
		return false
	}
}

func (c Criterion) String() string {
	switch c.Kind {
	case ByKitNumber:
		return fmt.Sprintf("kit=%d", c.KitNumber)
	case ByName:
		return fmt.Sprintf("name=%q", c.Name)
	default:
		return "unknown"
	}
}
