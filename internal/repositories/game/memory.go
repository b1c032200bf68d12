package game

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/zombied/internal/models"
)

// ErrGameNotFound is returned when a game is not found
var ErrGameNotFound = errors.New("game not found")

// memoryRepository implements the Repository interface in process memory.
// Games live as long as the program does.
type memoryRepository struct {
	mu    sync.RWMutex
	games map[string]*models.Game
}

// NewMemory creates a new in-memory game repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		games: make(map[string]*models.Game),
	}
}

// SaveGame stores a copy of the game
func (r *memoryRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	if input.Game.ID == "" {
		return errors.New("game ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.games[input.Game.ID] = cloneGame(input.Game)
	return nil
}

// GetGame returns a copy of the stored game
func (r *memoryRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	game, ok := r.games[input.GameID]
	if !ok {
		return nil, ErrGameNotFound
	}

	return cloneGame(game), nil
}

// DeleteGame removes a game
func (r *memoryRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.games[input.GameID]; !ok {
		return ErrGameNotFound
	}

	delete(r.games, input.GameID)
	return nil
}

func cloneGame(g *models.Game) *models.Game {
	clone := *g
	clone.PlayerIDs = append([]string(nil), g.PlayerIDs...)
	clone.ContenderIDs = append([]string(nil), g.ContenderIDs...)
	return &clone
}
