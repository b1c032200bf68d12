package turn

// TurnError is a custom error type for turn errors
type TurnError string

// Error implements the error interface
func (e TurnError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig         TurnError = "config cannot be nil"
	ErrNilPool           TurnError = "dice pool cannot be nil"
	ErrNilDiceRoller     TurnError = "dice roller cannot be nil"
	ErrNilPrompter       TurnError = "prompter cannot be nil"
	ErrNilPresenter      TurnError = "presenter cannot be nil"
	ErrNilPlayer         TurnError = "player cannot be nil"
	ErrInvalidDrawCount  TurnError = "round draw count plus shot limit minus one cannot exceed the pool inventory size"
	ErrInvalidShotLimit  TurnError = "shot limit must be positive"
	ErrInvalidTransition TurnError = "invalid turn state transition"
)
