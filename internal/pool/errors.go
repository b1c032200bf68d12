package pool

import "fmt"

// PoolError is a custom error type for pool errors
type PoolError string

// Error implements the error interface
func (e PoolError) Error() string {
	return string(e)
}

const (
	ErrNilConfig        PoolError = "config cannot be nil"
	ErrNilRoller        PoolError = "dice roller cannot be nil"
	ErrEmptyInventory   PoolError = "inventory must contain at least one die"
	ErrInvalidDrawCount PoolError = "draw count cannot be negative"
	ErrNilDie           PoolError = "cannot return a nil die"
)

// InsufficientDiceError is returned when a draw asks for more dice than the
// pool holds. The turn engine never does this on purpose, so seeing it means
// a bug.
type InsufficientDiceError struct {
	Requested int
	Available int
}

// Error implements the error interface
func (e *InsufficientDiceError) Error() string {
	return fmt.Sprintf("insufficient dice in pool: requested %d, available %d", e.Requested, e.Available)
}
