package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a requested row does not exist. Services
// treat it as "no configuration", never as a crash.
var ErrNotFound = errors.New("repository: not found")

// ErrDateAlreadyBooked is returned when a booking insert loses the race for
// a (tier, run date) pair. Callers retry against freshly computed
// availability.
var ErrDateAlreadyBooked = errors.New("repository: date already booked")

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
