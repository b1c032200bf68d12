package turn

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/zombied/internal/common/clock"
	"github.com/KirkDiggler/zombied/internal/common/uuid"
	"github.com/KirkDiggler/zombied/internal/dice"
	"github.com/KirkDiggler/zombied/internal/pool"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	pool          *pool.Pool
	diceRoller    dice.Roller
	prompter      Prompter
	presenter     Presenter
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        *zap.Logger

	roundDrawCount int
	shotLimit      int
}

// New creates a new turn service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Pool == nil {
		return nil, ErrNilPool
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Prompter == nil {
		return nil, ErrNilPrompter
	}

	if cfg.Presenter == nil {
		return nil, ErrNilPresenter
	}

	roundDrawCount := cfg.RoundDrawCount
	if roundDrawCount == 0 {
		roundDrawCount = DefaultRoundDrawCount
	}
	if roundDrawCount < 0 {
		return nil, ErrInvalidDrawCount
	}

	shotLimit := cfg.ShotLimit
	if shotLimit == 0 {
		shotLimit = DefaultShotLimit
	}
	if shotLimit < 0 {
		return nil, ErrInvalidShotLimit
	}

	if !cfg.Pool.Inventory().CoversTurn(roundDrawCount, shotLimit) {
		return nil, ErrInvalidDrawCount
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	uuidGenerator := cfg.UUIDGenerator
	if uuidGenerator == nil {
		uuidGenerator = uuid.New()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		pool:           cfg.Pool,
		diceRoller:     cfg.DiceRoller,
		prompter:       cfg.Prompter,
		presenter:      cfg.Presenter,
		clock:          clk,
		uuidGenerator:  uuidGenerator,
		logger:         logger,
		roundDrawCount: roundDrawCount,
		shotLimit:      shotLimit,
	}, nil
}

// PlayTurn runs one player's turn until it is banked or busted. The pool is
// rebuilt before and after the turn, so dice never carry over between turns.
func (s *service) PlayTurn(ctx context.Context, input *PlayTurnInput) (*PlayTurnOutput, error) {
	if input == nil || input.Player == nil {
		return nil, ErrNilPlayer
	}

	if err := s.pool.Reset(); err != nil {
		return nil, fmt.Errorf("failed to rebuild dice pool: %w", err)
	}

	t := s.newTurn(input)
	startedAt := s.clock.Now()

	log := s.logger.With(
		zap.String("turn_id", t.id),
		zap.String("player_id", input.Player.ID),
		zap.Int("round", input.Round),
	)
	log.Debug("turn started", zap.Int("score", input.Player.Score))

	runErr := t.Run(ctx)

	// Whatever happened, the next turn starts from the full inventory
	if err := s.pool.Reset(); err != nil {
		return nil, fmt.Errorf("failed to rebuild dice pool: %w", err)
	}

	if runErr != nil {
		log.Error("turn aborted", zap.String("state", string(t.state)), zap.Error(runErr))
		return nil, fmt.Errorf("turn %s aborted: %w", t.id, runErr)
	}

	record := t.record()
	record.StartedAt = startedAt
	record.EndedAt = s.clock.Now()

	log.Info("turn finished",
		zap.String("outcome", string(record.Outcome)),
		zap.Int("brains", record.Tally.Brains),
		zap.Int("shots", record.Tally.Shots),
		zap.Int("cycles", record.Cycles()),
		zap.Int("score", record.ScoreAfter),
	)

	return &PlayTurnOutput{
		Record: record,
	}, nil
}

func (s *service) newTurn(input *PlayTurnInput) *Turn {
	return &Turn{
		id:             s.uuidGenerator.NewUUID(),
		gameID:         input.GameID,
		round:          input.Round,
		player:         input.Player,
		pool:           s.pool,
		roller:         s.diceRoller,
		prompter:       s.prompter,
		presenter:      s.presenter,
		logger:         s.logger,
		roundDrawCount: s.roundDrawCount,
		shotLimit:      s.shotLimit,
		state:          StateRolling,
		drawQuota:      s.roundDrawCount,
		scoreBefore:    input.Player.Score,
	}
}
