package turn_ledger

import (
	"github.com/KirkDiggler/zombied/internal/models"
)

// AddTurnRecordInput contains parameters for adding a turn record
type AddTurnRecordInput struct {
	Record *models.TurnRecord
}

// GetTurnRecordsForGameInput contains parameters for retrieving turn records for a game
type GetTurnRecordsForGameInput struct {
	GameID string
}

// GetTurnRecordsForGameOutput contains the turn records for a game
type GetTurnRecordsForGameOutput struct {
	Records []*models.TurnRecord
}

// GetTurnRecordsForPlayerInput contains parameters for retrieving turn records for a player
type GetTurnRecordsForPlayerInput struct {
	PlayerID string
}

// GetTurnRecordsForPlayerOutput contains the turn records for a player
type GetTurnRecordsForPlayerOutput struct {
	Records []*models.TurnRecord
}

// DeleteTurnRecordsInput contains parameters for deleting a game's turn records
type DeleteTurnRecordsInput struct {
	GameID string
}
