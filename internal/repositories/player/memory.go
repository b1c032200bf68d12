package player

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/zombied/internal/models"
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

// memoryRepository implements the Repository interface in process memory
type memoryRepository struct {
	mu          sync.RWMutex
	players     map[string]*models.Player
	gamePlayers map[string][]string
}

// NewMemory creates a new in-memory player repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		players:     make(map[string]*models.Player),
		gamePlayers: make(map[string][]string),
	}
}

// SavePlayer stores a copy of the player and indexes it by its current game
func (r *memoryRepository) SavePlayer(ctx context.Context, input *SavePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	player := input.Player

	if player.ID == "" {
		return errors.New("player ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// If the player moved games, drop them from the old game's list
	if existing, ok := r.players[player.ID]; ok && existing.CurrentGameID != player.CurrentGameID {
		r.removeFromGame(existing.CurrentGameID, player.ID)
	}

	if player.CurrentGameID != "" && !r.inGame(player.CurrentGameID, player.ID) {
		r.gamePlayers[player.CurrentGameID] = append(r.gamePlayers[player.CurrentGameID], player.ID)
	}

	clone := *player
	r.players[player.ID] = &clone

	return nil
}

// GetPlayer returns a copy of the stored player
func (r *memoryRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	player, ok := r.players[input.PlayerID]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	clone := *player
	return &clone, nil
}

// GetPlayersInGame returns copies of every player in a game
func (r *memoryRepository) GetPlayersInGame(ctx context.Context, input *GetPlayersInGameInput) (*GetPlayersInGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	playerIDs := r.gamePlayers[input.GameID]
	players := make([]*models.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		clone := *r.players[id]
		players = append(players, &clone)
	}

	return &GetPlayersInGameOutput{
		Players: players,
	}, nil
}

func (r *memoryRepository) inGame(gameID, playerID string) bool {
	for _, id := range r.gamePlayers[gameID] {
		if id == playerID {
			return true
		}
	}
	return false
}

func (r *memoryRepository) removeFromGame(gameID, playerID string) {
	ids := r.gamePlayers[gameID]
	for i, id := range ids {
		if id == playerID {
			r.gamePlayers[gameID] = append(ids[:i:i], ids[i+1:]...)
			return
		}
	}
}
