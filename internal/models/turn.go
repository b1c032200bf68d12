package models

import (
	"time"
)

// TurnOutcome is how a turn ended
type TurnOutcome string

const (
	// TurnOutcomeBanked means the player stopped and kept the brains
	TurnOutcomeBanked TurnOutcome = "banked"

	// TurnOutcomeBusted means the player reached the shot limit
	TurnOutcomeBusted TurnOutcome = "busted"
)

// TurnStatus is the state of a turn in progress, as shown to players
type TurnStatus struct {
	PlayerName string
	Round      int
	Cycle      int
	Tally      Tally
	Picked     int
	Score      int
	DrawQuota  int
	ShotLimit  int
}

// PotentialScore is the score the player would have after banking now
func (s *TurnStatus) PotentialScore() int {
	return s.Score + s.Tally.Brains
}

// TurnRecord is the history entry for one completed turn
type TurnRecord struct {
	// ID is the unique identifier for the turn
	ID string

	// GameID is the game the turn belongs to, empty outside a game
	GameID string

	// PlayerID is the player who took the turn
	PlayerID string

	// Round is the game round the turn was played in
	Round int

	// Outcome is how the turn ended
	Outcome TurnOutcome

	// Tally holds the faces rolled during the turn
	Tally Tally

	// Picked is how many dice were drawn during the turn
	Picked int

	// Rolls holds every roll of the turn in order
	Rolls []Roll

	// PoolRecoveries counts how often table brains went back to the pool
	PoolRecoveries int

	// ScoreBefore and ScoreAfter bracket the commit step
	ScoreBefore int
	ScoreAfter  int

	StartedAt time.Time
	EndedAt   time.Time
}

// Cycles is how many times the player rolled
func (r *TurnRecord) Cycles() int {
	return len(r.Rolls)
}

// BrainsLost is the number of brains discarded by a bust
func (r *TurnRecord) BrainsLost() int {
	if r.Outcome != TurnOutcomeBusted {
		return 0
	}
	return r.Tally.Brains
}
