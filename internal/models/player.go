package models

// Player represents a participant in a game
type Player struct {
	// ID is the unique identifier for the player
	ID string

	// Name is the display name of the player
	Name string

	// Score is the number of brains banked across all turns.
	// Only a banked turn changes it, and never downward.
	Score int

	// CurrentGameID is the ID of the game the player is currently in
	CurrentGameID string
}
