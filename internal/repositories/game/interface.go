package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/zombied/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/zombied/internal/models"
)

// Repository defines the interface for game storage
type Repository interface {
	// SaveGame stores a game, replacing any game with the same ID
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// DeleteGame removes a game
	DeleteGame(ctx context.Context, input *DeleteGameInput) error
}
