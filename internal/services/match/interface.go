package match

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/zombied/internal/services/match Service

import "context"

// Service defines the interface for running a game between players
type Service interface {
	// CreateGame registers the players and starts a new game
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// PlayRound gives every contender one turn and settles the round
	PlayRound(ctx context.Context, input *PlayRoundInput) (*PlayRoundOutput, error)

	// GetLeaderboard returns the current standings for a game
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// EndGame removes a game and its turn history and frees its players
	EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error)
}
