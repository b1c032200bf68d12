package match

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/zombied/internal/common/clock"
	"github.com/KirkDiggler/zombied/internal/common/uuid"
	"github.com/KirkDiggler/zombied/internal/models"
	gameRepo "github.com/KirkDiggler/zombied/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/zombied/internal/repositories/player"
	ledgerRepo "github.com/KirkDiggler/zombied/internal/repositories/turn_ledger"
	"github.com/KirkDiggler/zombied/internal/services/turn"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	gameRepo       gameRepo.Repository
	playerRepo     playerRepo.Repository
	turnLedgerRepo ledgerRepo.Repository
	turnService    turn.Service
	clock          clock.Clock
	uuidGenerator  uuid.UUID
	logger         *zap.Logger

	scoreLimit int
	minPlayers int
	maxPlayers int
}

// New creates a new match service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}

	if cfg.TurnLedgerRepo == nil {
		return nil, ErrNilTurnLedgerRepo
	}

	if cfg.TurnService == nil {
		return nil, ErrNilTurnService
	}

	scoreLimit := cfg.ScoreLimit
	if scoreLimit == 0 {
		scoreLimit = DefaultScoreLimit
	}
	if scoreLimit < 0 {
		return nil, ErrInvalidScoreLimit
	}

	minPlayers := cfg.MinPlayers
	if minPlayers == 0 {
		minPlayers = DefaultMinPlayers
	}

	maxPlayers := cfg.MaxPlayers
	if maxPlayers == 0 {
		maxPlayers = DefaultMaxPlayers
	}

	if minPlayers < 1 || maxPlayers < minPlayers {
		return nil, ErrInvalidPlayerLimits
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
		gameRepo:       cfg.GameRepo,
		playerRepo:     cfg.PlayerRepo,
		turnLedgerRepo: cfg.TurnLedgerRepo,
		turnService:    cfg.TurnService,
		clock:          clk,
		uuidGenerator:  uuidGenerator,
		logger:         logger,
		scoreLimit:     scoreLimit,
		minPlayers:     minPlayers,
		maxPlayers:     maxPlayers,
	}, nil
}

// CreateGame registers the players and starts a new game
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil {
		return nil, ErrNotEnoughPlayers
	}

	if len(input.PlayerNames) < s.minPlayers {
		return nil, ErrNotEnoughPlayers
	}

	if len(input.PlayerNames) > s.maxPlayers {
		return nil, ErrTooManyPlayers
	}

	names := make([]string, len(input.PlayerNames))
	for i, name := range input.PlayerNames {
		names[i] = strings.TrimSpace(name)
		if names[i] == "" {
			return nil, ErrBlankPlayerName
		}
	}

	now := s.clock.Now()
	game := &models.Game{
		ID:        s.uuidGenerator.NewUUID(),
		Status:    models.GameStatusActive,
		PlayerIDs: make([]string, 0, len(names)),
		CreatedAt: now,
		UpdatedAt: now,
	}

	players := make([]*models.Player, 0, len(names))
	for _, name := range names {
		player := &models.Player{
			ID:            s.uuidGenerator.NewUUID(),
			Name:          name,
			CurrentGameID: game.ID,
		}

		if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
			Player: player,
		}); err != nil {
			return nil, fmt.Errorf("failed to save player %q: %w", name, err)
		}

		game.PlayerIDs = append(game.PlayerIDs, player.ID)
		players = append(players, player)
	}

	game.ContenderIDs = append([]string(nil), game.PlayerIDs...)

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	}); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	s.logger.Info("game created",
		zap.String("game_id", game.ID),
		zap.Int("players", len(players)),
		zap.Int("score_limit", s.scoreLimit),
	)

	return &CreateGameOutput{
		GameID:  game.ID,
		Players: players,
	}, nil
}

// PlayRound gives every contender one turn. Once the highest score reaches
// the score limit the round settles the game: a single leader wins, tied
// leaders play on alone.
func (s *service) PlayRound(ctx context.Context, input *PlayRoundInput) (*PlayRoundOutput, error) {
	if input == nil {
		return nil, ErrGameNotFound
	}

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.Status.IsCompleted() {
		return nil, ErrGameCompleted
	}

	game.Round++

	log := s.logger.With(
		zap.String("game_id", game.ID),
		zap.Int("round", game.Round),
	)

	contenders := make([]*models.Player, 0, len(game.ContenderIDs))
	records := make([]*models.TurnRecord, 0, len(game.ContenderIDs))

	for _, playerID := range game.ContenderIDs {
		player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
			PlayerID: playerID,
		})
		if err != nil {
			if errors.Is(err, playerRepo.ErrPlayerNotFound) {
				return nil, ErrPlayerNotFound
			}
			return nil, err
		}

		output, err := s.turnService.PlayTurn(ctx, &turn.PlayTurnInput{
			Player: player,
			GameID: game.ID,
			Round:  game.Round,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to play turn for %s: %w", player.Name, err)
		}

		if player.Score > game.HighestScore {
			game.HighestScore = player.Score
		}

		contenders = append(contenders, player)
		records = append(records, output.Record)
	}

	// Nothing is stored until every contender has played, so an aborted
	// round leaves the game as it was
	for i, player := range contenders {
		if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
			Player: player,
		}); err != nil {
			return nil, fmt.Errorf("failed to save player %s: %w", player.ID, err)
		}

		if err := s.turnLedgerRepo.AddTurnRecord(ctx, &ledgerRepo.AddTurnRecordInput{
			Record: records[i],
		}); err != nil {
			return nil, fmt.Errorf("failed to record turn: %w", err)
		}
	}

	result := &PlayRoundOutput{
		Round:   game.Round,
		Records: records,
	}

	if game.HighestScore >= s.scoreLimit {
		result.Leaders = leaders(contenders, game.HighestScore)
		s.settle(game, result)
	}

	game.UpdatedAt = s.clock.Now()

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	}); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	log.Info("round finished",
		zap.String("status", string(game.Status)),
		zap.Int("highest_score", game.HighestScore),
		zap.Int("leaders", len(result.Leaders)),
	)

	return result, nil
}

// settle decides the game once someone reached the score limit
func (s *service) settle(game *models.Game, result *PlayRoundOutput) {
	switch len(result.Leaders) {
	case 0:
		return
	case 1:
		game.Status = models.GameStatusCompleted
		game.WinnerID = result.Leaders[0].ID
		game.ContenderIDs = nil
		result.GameOver = true
		result.Winner = result.Leaders[0]
	default:
		game.Status = models.GameStatusTiebreak
		game.ContenderIDs = make([]string, 0, len(result.Leaders))
		for _, leader := range result.Leaders {
			game.ContenderIDs = append(game.ContenderIDs, leader.ID)
		}
		result.IsDraw = true
	}
}

// GetLeaderboard returns the standings of a game, best score first
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil {
		return nil, ErrGameNotFound
	}

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	playersOutput, err := s.playerRepo.GetPlayersInGame(ctx, &playerRepo.GetPlayersInGameInput{
		GameID: game.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	recordsOutput, err := s.turnLedgerRepo.GetTurnRecordsForGame(ctx, &ledgerRepo.GetTurnRecordsForGameInput{
		GameID: game.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get turn records: %w", err)
	}

	entries := make(map[string]*models.LeaderboardEntry, len(playersOutput.Players))
	list := make([]*models.LeaderboardEntry, 0, len(playersOutput.Players))
	for _, player := range playersOutput.Players {
		entry := &models.LeaderboardEntry{
			PlayerID:   player.ID,
			PlayerName: player.Name,
			Score:      player.Score,
		}
		entries[player.ID] = entry
		list = append(list, entry)
	}

	for _, record := range recordsOutput.Records {
		entry, ok := entries[record.PlayerID]
		if !ok {
			continue
		}

		entry.Turns++
		switch record.Outcome {
		case models.TurnOutcomeBanked:
			entry.Banks++
		case models.TurnOutcomeBusted:
			entry.Busts++
			entry.BrainsLost += record.BrainsLost()
		}
	}

	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Score != list[j].Score {
			return list[i].Score > list[j].Score
		}
		return list[i].PlayerName < list[j].PlayerName
	})

	return &GetLeaderboardOutput{
		Status:  game.Status,
		Round:   game.Round,
		Entries: list,
	}, nil
}

// EndGame removes a game and its turn history and frees its players
func (s *service) EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error) {
	if input == nil {
		return nil, ErrGameNotFound
	}

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	for _, playerID := range game.PlayerIDs {
		player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
			PlayerID: playerID,
		})
		if err != nil {
			if errors.Is(err, playerRepo.ErrPlayerNotFound) {
				continue
			}
			return nil, err
		}

		player.CurrentGameID = ""
		if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
			Player: player,
		}); err != nil {
			return nil, fmt.Errorf("failed to save player %s: %w", player.ID, err)
		}
	}

	if err := s.turnLedgerRepo.DeleteTurnRecords(ctx, &ledgerRepo.DeleteTurnRecordsInput{
		GameID: game.ID,
	}); err != nil {
		return nil, fmt.Errorf("failed to delete turn records: %w", err)
	}

	if err := s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{
		GameID: game.ID,
	}); err != nil {
		return nil, fmt.Errorf("failed to delete game: %w", err)
	}

	s.logger.Info("game ended",
		zap.String("game_id", game.ID),
		zap.String("winner_id", game.WinnerID),
		zap.Int("rounds", game.Round),
	)

	return &EndGameOutput{
		Success: true,
	}, nil
}

func (s *service) getGame(ctx context.Context, gameID string) (*models.Game, error) {
	if gameID == "" {
		return nil, ErrGameNotFound
	}

	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: gameID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	return game, nil
}

// leaders returns the players holding the highest score, in turn order
func leaders(players []*models.Player, highest int) []*models.Player {
	var result []*models.Player
	for _, p := range players {
		if p.Score == highest {
			result = append(result, p)
		}
	}
	return result
}
