package turn_ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/zombied/internal/repositories/turn_ledger Repository

import (
	"context"
)

// Repository defines the interface for turn history persistence
type Repository interface {
	// AddTurnRecord adds a finished turn to the ledger
	AddTurnRecord(ctx context.Context, input *AddTurnRecordInput) error

	// GetTurnRecordsForGame retrieves all turn records for a game, oldest first
	GetTurnRecordsForGame(ctx context.Context, input *GetTurnRecordsForGameInput) (*GetTurnRecordsForGameOutput, error)

	// GetTurnRecordsForPlayer retrieves all turn records for a player, oldest first
	GetTurnRecordsForPlayer(ctx context.Context, input *GetTurnRecordsForPlayerInput) (*GetTurnRecordsForPlayerOutput, error)

	// DeleteTurnRecords deletes all turn records for a game
	DeleteTurnRecords(ctx context.Context, input *DeleteTurnRecordsInput) error
}
