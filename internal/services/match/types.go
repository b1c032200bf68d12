package match

import (
	"github.com/KirkDiggler/zombied/internal/common/clock"
	"github.com/KirkDiggler/zombied/internal/common/uuid"
	"github.com/KirkDiggler/zombied/internal/models"
	gameRepo "github.com/KirkDiggler/zombied/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/zombied/internal/repositories/player"
	ledgerRepo "github.com/KirkDiggler/zombied/internal/repositories/turn_ledger"
	"github.com/KirkDiggler/zombied/internal/services/turn"
	"go.uber.org/zap"
)

const (
	// DefaultScoreLimit is the score that ends the game at the end of a round
	DefaultScoreLimit = 13

	// DefaultMinPlayers is the fewest players a game can start with
	DefaultMinPlayers = 2

	// DefaultMaxPlayers is the most players a game can start with
	DefaultMaxPlayers = 99
)

// Config holds configuration for the match service
type Config struct {
	// ScoreLimit is the score a player must reach to win
	ScoreLimit int

	// MinPlayers and MaxPlayers bound the number of players in a game
	MinPlayers int
	MaxPlayers int

	// Repository dependencies
	GameRepo       gameRepo.Repository
	PlayerRepo     playerRepo.Repository
	TurnLedgerRepo ledgerRepo.Repository

	// Service dependencies
	TurnService   turn.Service
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        *zap.Logger
}

// CreateGameInput contains parameters for creating a game
type CreateGameInput struct {
	// PlayerNames in turn order
	PlayerNames []string
}

// CreateGameOutput contains the result of creating a game
type CreateGameOutput struct {
	GameID  string
	Players []*models.Player
}

// PlayRoundInput contains parameters for playing a round
type PlayRoundInput struct {
	GameID string
}

// PlayRoundOutput contains the result of a round
type PlayRoundOutput struct {
	// Round is the number of the round just played
	Round int

	// Records holds one turn record per contender, in turn order
	Records []*models.TurnRecord

	// Leaders are the players tied on the highest score, once it reached
	// the score limit
	Leaders []*models.Player

	// IsDraw is set when two or more leaders go on to a tiebreak round
	IsDraw bool

	// GameOver is set when a single leader won the game
	GameOver bool

	// Winner is the player who won, when GameOver is set
	Winner *models.Player
}

// GetLeaderboardInput contains parameters for getting the leaderboard
type GetLeaderboardInput struct {
	GameID string
}

// GetLeaderboardOutput contains the leaderboard of a game
type GetLeaderboardOutput struct {
	Status  models.GameStatus
	Round   int
	Entries []*models.LeaderboardEntry
}

// EndGameInput contains parameters for ending a game
type EndGameInput struct {
	GameID string
}

// EndGameOutput contains the result of ending a game
type EndGameOutput struct {
	Success bool
}
