package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/zombied/internal/services/match"
	"github.com/KirkDiggler/zombied/internal/services/messaging"
	"go.uber.org/zap"
)

// Rules are the numbers explained to the players before a game
type Rules struct {
	ScoreLimit int
	DrawCount  int
	ShotLimit  int
	MinPlayers int
	MaxPlayers int
}

// RunnerConfig holds the configuration for the runner
type RunnerConfig struct {
	Console      *Console
	MatchService match.Service
	Rules        Rules
	Logger       *zap.Logger
}

// Runner drives whole games from the console: setup, rounds, results and
// the offer to play again
type Runner struct {
	console      *Console
	matchService match.Service
	rules        Rules
	logger       *zap.Logger
}

// NewRunner creates a new runner
func NewRunner(cfg *RunnerConfig) (*Runner, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Console == nil {
		return nil, ErrNilConsole
	}

	if cfg.MatchService == nil {
		return nil, ErrNilMatchService
	}

	rules := cfg.Rules
	if rules.MinPlayers == 0 {
		rules.MinPlayers = match.DefaultMinPlayers
	}
	if rules.MaxPlayers == 0 {
		rules.MaxPlayers = match.DefaultMaxPlayers
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{
		console:      cfg.Console,
		matchService: cfg.MatchService,
		rules:        rules,
		logger:       logger,
	}, nil
}

// Run plays games until the players decline another one. It returns
// ErrInputClosed when input runs out and the context error when cancelled.
func (r *Runner) Run(ctx context.Context) error {
	for {
		if err := r.playGame(ctx); err != nil {
			return err
		}

		again, err := r.console.askYesNo(ctx, r.console.printer.Sprintf("Play again? (y/n) "))
		if err != nil {
			return err
		}

		if !again {
			r.console.println(r.console.printer.Sprintf("Thanks for playing. Braaains!"))
			return nil
		}
	}
}

func (r *Runner) playGame(ctx context.Context) error {
	c := r.console
	p := c.printer

	c.clear()
	r.greet()

	count, err := c.askInt(ctx, p.Sprintf("How many players? (%d-%d) ", r.rules.MinPlayers, r.rules.MaxPlayers),
		r.rules.MinPlayers, r.rules.MaxPlayers)
	if err != nil {
		return err
	}

	names := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		name, err := c.askText(ctx, p.Sprintf("Name of player %d: ", i))
		if err != nil {
			return err
		}
		names = append(names, name)
	}

	created, err := r.matchService.CreateGame(ctx, &match.CreateGameInput{
		PlayerNames: names,
	})
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	r.logger.Info("game started", zap.String("game_id", created.GameID), zap.Strings("players", names))

	tiebreak := false
	for round := 1; ; round++ {
		r.announceRound(ctx, round, tiebreak)

		output, err := r.matchService.PlayRound(ctx, &match.PlayRoundInput{
			GameID: created.GameID,
		})
		if err != nil {
			return fmt.Errorf("failed to play round %d: %w", round, err)
		}

		if output.GameOver {
			r.announceWinner(ctx, output)
			break
		}

		if output.IsDraw {
			leaders := make([]string, 0, len(output.Leaders))
			for _, leader := range output.Leaders {
				leaders = append(leaders, leader.Name)
			}
			c.println("")
			c.println(p.Sprintf("Draw! %s are tied at %d brains and play another round.",
				strings.Join(leaders, ", "), output.Leaders[0].Score))
			if err := c.waitEnter(ctx, p.Sprintf("Press ENTER to continue...")); err != nil {
				return err
			}
			tiebreak = true
		}
	}

	if err := r.showLeaderboard(ctx, created.GameID); err != nil {
		return err
	}

	if _, err := r.matchService.EndGame(ctx, &match.EndGameInput{GameID: created.GameID}); err != nil {
		return fmt.Errorf("failed to end game: %w", err)
	}

	return nil
}

func (r *Runner) greet() {
	c := r.console
	p := c.printer

	c.println(p.Sprintf("ZOMBIE DICE"))
	c.println("")
	c.println(p.Sprintf("You are a zombie. Eat %d brains to win.", r.rules.ScoreLimit))
	c.println(p.Sprintf("Every roll you draw dice from the cup until you hold %d, then roll them.", r.rules.DrawCount))
	c.println(p.Sprintf("Brains score. Footsteps are rolled again. Shotguns hurt."))
	c.println(p.Sprintf("Take %d shotgun blasts in one turn and you lose the brains of that turn.", r.rules.ShotLimit))
	c.println(p.Sprintf("Stop whenever you like to keep your brains."))
	c.println("")
}

func (r *Runner) announceRound(ctx context.Context, round int, tiebreak bool) {
	output, err := r.console.messaging.GetRoundStartMessage(ctx, &messaging.GetRoundStartMessageInput{
		Round:    round,
		Tiebreak: tiebreak,
	})
	if err != nil {
		r.logger.Warn("failed to get round start message", zap.Error(err))
		return
	}

	r.console.println("")
	r.console.println(output.Message)
}

func (r *Runner) announceWinner(ctx context.Context, output *match.PlayRoundOutput) {
	c := r.console

	c.println("")
	winner, err := c.messaging.GetWinnerMessage(ctx, &messaging.GetWinnerMessageInput{
		PlayerName: output.Winner.Name,
		Score:      output.Winner.Score,
	})
	if err != nil {
		r.logger.Warn("failed to get winner message", zap.Error(err))
		c.println(c.printer.Sprintf("%s wins with %d brains!", output.Winner.Name, output.Winner.Score))
		return
	}

	c.println(winner.Message)
}

func (r *Runner) showLeaderboard(ctx context.Context, gameID string) error {
	c := r.console
	p := c.printer

	output, err := r.matchService.GetLeaderboard(ctx, &match.GetLeaderboardInput{
		GameID: gameID,
	})
	if err != nil {
		return fmt.Errorf("failed to get leaderboard: %w", err)
	}

	c.println("")
	c.println(p.Sprintf("Final standings after %d rounds:", output.Round))
	for i, entry := range output.Entries {
		c.println(p.Sprintf("%d. %s: %d brains (%d turns, %d busts, %d brains lost)",
			i+1, entry.PlayerName, entry.Score, entry.Turns, entry.Busts, entry.BrainsLost))
	}
	c.println("")

	return nil
}
