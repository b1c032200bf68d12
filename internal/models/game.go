package models

import (
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusActive indicates a game is in progress
	GameStatusActive GameStatus = "active"

	// GameStatusTiebreak indicates two or more players tied at or above the
	// score limit and only they keep playing
	GameStatusTiebreak GameStatus = "tiebreak"

	// GameStatusCompleted indicates a game has a single winner
	GameStatusCompleted GameStatus = "completed"
)

// IsCompleted reports whether the game has ended
func (s GameStatus) IsCompleted() bool {
	return s == GameStatusCompleted
}

// Game represents a match between players
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// Status is the current state of the game
	Status GameStatus

	// Round is the number of the last round played, starting at 1
	Round int

	// PlayerIDs contains the IDs of players in the game, in turn order
	PlayerIDs []string

	// ContenderIDs are the players who take a turn next round.
	// During a tiebreak only the tied leaders remain.
	ContenderIDs []string

	// HighestScore is the best score reached by any player
	HighestScore int

	// WinnerID is set once the game is completed
	WinnerID string

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time
}
