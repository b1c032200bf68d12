package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/zombied/internal/common/clock"
	"github.com/KirkDiggler/zombied/internal/common/logger"
	"github.com/KirkDiggler/zombied/internal/common/uuid"
	"github.com/KirkDiggler/zombied/internal/config"
	"github.com/KirkDiggler/zombied/internal/dice"
	"github.com/KirkDiggler/zombied/internal/handlers/console"
	"github.com/KirkDiggler/zombied/internal/i18n"
	"github.com/KirkDiggler/zombied/internal/pool"
	"github.com/KirkDiggler/zombied/internal/repositories/game"
	"github.com/KirkDiggler/zombied/internal/repositories/player"
	"github.com/KirkDiggler/zombied/internal/repositories/turn_ledger"
	"github.com/KirkDiggler/zombied/internal/services/match"
	"github.com/KirkDiggler/zombied/internal/services/messaging"
	"github.com/KirkDiggler/zombied/internal/services/turn"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logr, err := logger.New(&cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logr.Sync()

	// Cancel the game on interrupt so blocked prompts return
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize dice
	diceRoller := dice.New(&dice.Config{Seed: cfg.Seed})

	dicePool, err := pool.New(&pool.Config{Roller: diceRoller})
	if err != nil {
		log.Fatalf("Failed to create dice pool: %v", err)
	}

	// Initialize repositories
	gameRepo := game.NewMemory()
	playerRepo := player.NewMemory()
	turnLedgerRepo := turn_ledger.NewMemory()

	printer := i18n.NewPrinter(cfg.Lang)

	messagingSvc, err := messaging.New(&messaging.Config{
		Roller:  diceRoller,
		Printer: printer,
	})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	con, err := console.New(&console.Config{
		In:          os.Stdin,
		Out:         os.Stdout,
		Printer:     printer,
		Messaging:   messagingSvc,
		ClearScreen: cfg.ClearScreen,
		Color:       cfg.Color,
		Logger:      logr,
	})
	if err != nil {
		log.Fatalf("Failed to create console: %v", err)
	}

	turnSvc, err := turn.New(&turn.Config{
		RoundDrawCount: cfg.DicePerRound,
		ShotLimit:      cfg.ShotLimit,
		Pool:           dicePool,
		Prompter:       con,
		Presenter:      con,
		DiceRoller:     diceRoller,
		Clock:          clock.New(),
		UUIDGenerator:  uuid.New(),
		Logger:         logr,
	})
	if err != nil {
		log.Fatalf("Failed to create turn service: %v", err)
	}

	matchSvc, err := match.New(&match.Config{
		ScoreLimit:     cfg.ScoreLimit,
		MinPlayers:     cfg.MinPlayers,
		MaxPlayers:     cfg.MaxPlayers,
		GameRepo:       gameRepo,
		PlayerRepo:     playerRepo,
		TurnLedgerRepo: turnLedgerRepo,
		TurnService:    turnSvc,
		Clock:          clock.New(),
		UUIDGenerator:  uuid.New(),
		Logger:         logr,
	})
	if err != nil {
		log.Fatalf("Failed to create match service: %v", err)
	}

	runner, err := console.NewRunner(&console.RunnerConfig{
		Console:      con,
		MatchService: matchSvc,
		Rules: console.Rules{
			ScoreLimit: cfg.ScoreLimit,
			DrawCount:  cfg.DicePerRound,
			ShotLimit:  cfg.ShotLimit,
			MinPlayers: cfg.MinPlayers,
			MaxPlayers: cfg.MaxPlayers,
		},
		Logger: logr,
	})
	if err != nil {
		log.Fatalf("Failed to create runner: %v", err)
	}

	logr.Info("zombied started",
		zap.String("lang", i18n.Match(cfg.Lang).String()),
		zap.Int64("seed", cfg.Seed),
		zap.Int("score_limit", cfg.ScoreLimit),
	)

	err = runner.Run(ctx)
	switch {
	case err == nil, errors.Is(err, console.ErrInputClosed), errors.Is(err, context.Canceled):
		logr.Info("zombied stopped", zap.NamedError("reason", err))
	default:
		logr.Error("zombied failed", zap.Error(err))
		log.Fatalf("Game stopped: %v", err)
	}
}
