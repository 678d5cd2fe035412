package player

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BirthDate holds the raw day/month/year components of a DD/MM/YYYY string.
// Components are not range checked.
type BirthDate struct {
	Day   int
	Month int
	Year  int
}

// ParseBirthDate splits s on '/', '-', '.' or spaces and expects three integers.
func ParseBirthDate(s string) (BirthDate, error) {
	parts := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == '/' || r == '-' || r == '.' || r == ' '
	})
	if len(parts) != 3 {
		return BirthDate{}, fmt.Errorf("date of birth %q: expected DD/MM/YYYY", s)
	}

	values := make([]int, 0, 3)
	for _, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return BirthDate{}, fmt.Errorf("date of birth %q: %w", s, err)
		}
		values = append(values, v)
	}

	return BirthDate{Day: values[0], Month: values[1], Year: values[2]}, nil
}

// AgeAt returns full years completed on the calendar date of now.
func (d BirthDate) AgeAt(now time.Time) int {
	age := now.Year() - d.Year
	month := int(now.Month())
	if month < d.Month || (month == d.Month && now.Day() < d.Day) {
		age--
	}
	return age
}

// Age parses the player's date of birth and computes the age at now.
func (p Player) Age(now time.Time) (int, error) {
	dob, err := ParseBirthDate(p.DateOfBirth)
	if err != nil {
		return 0, err
	}
	return dob.AgeAt(now), nil
}
