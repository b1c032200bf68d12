package dice

// DiceError is a custom error type for dice errors
type DiceError string

// Error implements the error interface
func (e DiceError) Error() string {
	return string(e)
}

const (
	ErrUnknownTier     DiceError = "unknown die tier"
	ErrInvalidQuantity DiceError = "tier quantity cannot be negative"
)
