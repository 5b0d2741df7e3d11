package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is the absence signal returned by every lookup.
	ErrNotFound = errors.New("record not found")

	ErrUsernameTaken   = errors.New("username already in use")
	ErrDuplicateStatus = errors.New("series already in watchlist")
	ErrStillReferenced = errors.New("record is still referenced")
	ErrMissingParent   = errors.New("referenced record does not exist")
)

// lookupErr maps a GORM lookup failure to ErrNotFound or wraps it with op.
func lookupErr(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

// writeErr maps constraint violations on a write. duplicate is returned
// for unique-key conflicts when non-nil.
func writeErr(op string, err error, duplicate error) error {
	switch {
	case duplicate != nil && errors.Is(err, gorm.ErrDuplicatedKey):
		return duplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%s: %w", op, ErrMissingParent)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
