package turn_ledger

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/KirkDiggler/zombied/internal/models"
)

// ErrDuplicateTurnRecord is returned when a record with the same ID was already added
var ErrDuplicateTurnRecord = errors.New("turn record already exists")

// memoryRepository implements the Repository interface in process memory.
// Records are kept in insertion order.
type memoryRepository struct {
	mu      sync.RWMutex
	records []*models.TurnRecord
	ids     map[string]struct{}
}

// NewMemory creates a new in-memory turn ledger repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		ids: make(map[string]struct{}),
	}
}

// AddTurnRecord adds a copy of the record to the ledger
func (r *memoryRepository) AddTurnRecord(ctx context.Context, input *AddTurnRecordInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	record := input.Record

	if record.ID == "" {
		return errors.New("turn record ID cannot be empty")
	}

	if record.EndedAt.IsZero() {
		record.EndedAt = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ids[record.ID]; ok {
		return ErrDuplicateTurnRecord
	}

	r.records = append(r.records, cloneRecord(record))
	r.ids[record.ID] = struct{}{}

	return nil
}

// GetTurnRecordsForGame retrieves all turn records for a game
func (r *memoryRepository) GetTurnRecordsForGame(ctx context.Context, input *GetTurnRecordsForGameInput) (*GetTurnRecordsForGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	return &GetTurnRecordsForGameOutput{
		Records: r.filter(func(rec *models.TurnRecord) bool {
			return rec.GameID == input.GameID
		}),
	}, nil
}

// GetTurnRecordsForPlayer retrieves all turn records for a player
func (r *memoryRepository) GetTurnRecordsForPlayer(ctx context.Context, input *GetTurnRecordsForPlayerInput) (*GetTurnRecordsForPlayerOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	return &GetTurnRecordsForPlayerOutput{
		Records: r.filter(func(rec *models.TurnRecord) bool {
			return rec.PlayerID == input.PlayerID
		}),
	}, nil
}

// DeleteTurnRecords deletes all turn records for a game
func (r *memoryRepository) DeleteTurnRecords(ctx context.Context, input *DeleteTurnRecordsInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.records[:0]
	for _, rec := range r.records {
		if rec.GameID == input.GameID {
			delete(r.ids, rec.ID)
			continue
		}
		kept = append(kept, rec)
	}
	r.records = kept

	return nil
}

func (r *memoryRepository) filter(match func(*models.TurnRecord) bool) []*models.TurnRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*models.TurnRecord, 0)
	for _, rec := range r.records {
		if match(rec) {
			records = append(records, cloneRecord(rec))
		}
	}

	return records
}

// cloneRecord copies a record deep enough that callers cannot change the
// stored rolls
func cloneRecord(rec *models.TurnRecord) *models.TurnRecord {
	clone := *rec

	if rec.Rolls != nil {
		clone.Rolls = make([]models.Roll, len(rec.Rolls))
		for i, roll := range rec.Rolls {
			clone.Rolls[i] = roll
			clone.Rolls[i].Dice = append([]models.DieView(nil), roll.Dice...)
		}
	}

	return &clone
}
