package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/zombied/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/zombied/internal/models"
)

// Repository defines the interface for player storage
type Repository interface {
	// SavePlayer stores a player
	SavePlayer(ctx context.Context, input *SavePlayerInput) error

	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// GetPlayersInGame retrieves all players in a game, in the order they joined
	GetPlayersInGame(ctx context.Context, input *GetPlayersInGameInput) (*GetPlayersInGameOutput, error)
}
