package models

// LeaderboardEntry summarises one player's game
type LeaderboardEntry struct {
	PlayerID   string
	PlayerName string
	Score      int
	Turns      int
	Banks      int
	Busts      int
	BrainsLost int
}
