package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrNoActiveLoan = errors.New("no active loan")
	ErrBookExists   = errors.New("book already exists")
)

// NoCapacityError carries the counts the caller shows to the user.
type NoCapacityError struct {
	Active int
	Total  int
}

func (e *NoCapacityError) Error() string {
	return fmt.Sprintf("no copies available: %d of %d on loan", e.Active, e.Total)
}
