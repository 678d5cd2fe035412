package usecase

import "github.com/cockroachdb/errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("resource not found")
	ErrCapacityExceeded    = errors.New("capacity exceeded")
	ErrDuplicateTeamName   = errors.New("duplicate team name")
	ErrDuplicatePlayerName = errors.New("duplicate player name")
	ErrDuplicateKitNumber  = errors.New("duplicate kit number")
)

// IsDuplicate reports whether err is any uniqueness violation.
func IsDuplicate(err error) bool {
	return errors.IsAny(err, ErrDuplicateTeamName, ErrDuplicatePlayerName, ErrDuplicateKitNumber)
}

// The message of a marked error is shown to the user as-is, so it carries the
// detail while errors.Is still matches the sentinel.
func markf(kind error, format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), kind)
}
