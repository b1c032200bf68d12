package turn

import (
	"github.com/KirkDiggler/zombied/internal/common/clock"
	"github.com/KirkDiggler/zombied/internal/common/uuid"
	"github.com/KirkDiggler/zombied/internal/dice"
	"github.com/KirkDiggler/zombied/internal/models"
	"github.com/KirkDiggler/zombied/internal/pool"
	"go.uber.org/zap"
)

const (
	// DefaultRoundDrawCount is how many dice are rolled each cycle
	DefaultRoundDrawCount = 3

	// DefaultShotLimit is the number of shots that busts a turn
	DefaultShotLimit = 3
)

// Config holds configuration for the turn service
type Config struct {
	// Number of dice rolled per cycle
	RoundDrawCount int

	// Shots needed to bust
	ShotLimit int

	// Pool is lent to one turn at a time and rebuilt between turns
	Pool *pool.Pool

	// Collaborator dependencies
	Prompter  Prompter
	Presenter Presenter

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        *zap.Logger
}

// PlayTurnInput contains parameters for playing a turn
type PlayTurnInput struct {
	// Player takes the turn; a banked turn adds to Player.Score
	Player *models.Player

	// GameID is recorded on the turn record
	GameID string

	// Round is the game round, for display and the record
	Round int
}

// PlayTurnOutput contains the result of a turn
type PlayTurnOutput struct {
	// Record is the history entry for the finished turn
	Record *models.TurnRecord
}
