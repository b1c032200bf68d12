package match

// MatchError is a custom error type for match-related errors
type MatchError string

// Error implements the error interface
func (e MatchError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound        MatchError = "game not found"
	ErrPlayerNotFound      MatchError = "player not found"
	ErrGameCompleted       MatchError = "game is already completed"
	ErrNotEnoughPlayers    MatchError = "not enough players"
	ErrTooManyPlayers      MatchError = "too many players"
	ErrBlankPlayerName     MatchError = "player name cannot be blank"
	ErrInvalidScoreLimit   MatchError = "score limit must be positive"
	ErrInvalidPlayerLimits MatchError = "invalid player limits"
	ErrNilConfig           MatchError = "config cannot be nil"
	ErrNilGameRepo         MatchError = "game repository cannot be nil"
	ErrNilPlayerRepo       MatchError = "player repository cannot be nil"
	ErrNilTurnLedgerRepo   MatchError = "turn ledger repository cannot be nil"
	ErrNilTurnService      MatchError = "turn service cannot be nil"
)
