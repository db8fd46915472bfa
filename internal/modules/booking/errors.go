package booking

import (
	"errors"
	"fmt"
)

var ErrValidation = errors.New("validation error")

// ConflictError reports the earliest night where the requested cabins would
// exceed capacity.
type ConflictError struct {
	Date         string
	BookedCabins int
	MaxCabins    int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("no capacity on %s: %d of %d cabins already booked", e.Date, e.BookedCabins, e.MaxCabins)
}
