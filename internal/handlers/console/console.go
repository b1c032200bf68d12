package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/KirkDiggler/zombied/internal/i18n"
	"github.com/KirkDiggler/zombied/internal/models"
	"github.com/KirkDiggler/zombied/internal/services/messaging"
	"go.uber.org/zap"
	"golang.org/x/text/message"
)

const clearSequence = "\033[H\033[2J"

// Config holds the configuration for the console
type Config struct {
	// In is read line by line for player answers
	In io.Reader

	// Out receives everything shown to the players
	Out io.Writer

	// Printer renders text in the players' language, English if nil
	Printer *message.Printer

	// Messaging picks the flavor text for busts, banks and rounds
	Messaging messaging.Service

	// ClearScreen clears the terminal before every turn
	ClearScreen bool

	// Color paints dice in their tier's color
	Color bool

	Logger *zap.Logger
}

// Console talks to the players through a terminal. It is the turn engine's
// Prompter and Presenter.
type Console struct {
	in          io.Reader
	out         io.Writer
	printer     *message.Printer
	messaging   messaging.Service
	clearScreen bool
	color       bool
	logger      *zap.Logger

	startOnce sync.Once
	lines     chan string
	readErr   error
}

// New creates a new console
func New(cfg *Config) (*Console, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.In == nil {
		return nil, ErrNilInput
	}

	if cfg.Out == nil {
		return nil, ErrNilOutput
	}

	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}

	printer := cfg.Printer
	if printer == nil {
		printer = i18n.NewPrinter(i18n.DefaultLanguage)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Console{
		in:          cfg.In,
		out:         cfg.Out,
		printer:     printer,
		messaging:   cfg.Messaging,
		clearScreen: cfg.ClearScreen,
		color:       cfg.Color,
		logger:      logger,
		lines:       make(chan string),
	}, nil
}

// ConfirmDraw waits for the player before dice are drawn from the cup
func (c *Console) ConfirmDraw(ctx context.Context, quota int) error {
	return c.waitEnter(ctx, c.printer.Sprintf("Press ENTER to draw %d dice...", quota))
}

// ConfirmRoll waits for the player before the hand is rolled
func (c *Console) ConfirmRoll(ctx context.Context) error {
	return c.waitEnter(ctx, c.printer.Sprintf("Press ENTER to roll..."))
}

// AskContinue asks whether the player keeps rolling
func (c *Console) AskContinue(ctx context.Context, nextDrawQuota int) (bool, error) {
	return c.askYesNo(ctx, c.printer.Sprintf("Keep going? You will draw %d new dice. (y/n) ", nextDrawQuota))
}

// ShowCycleStart introduces the player at the start of a turn and numbers
// every roll after that
func (c *Console) ShowCycleStart(status *models.TurnStatus) {
	if status.Cycle == 0 {
		c.clear()
		c.println(c.printer.Sprintf("=== %s's turn, round %d ===", status.PlayerName, status.Round))
		c.println(c.printer.Sprintf("Score: %d", status.Score))
	}

	c.println("")
	c.println(c.printer.Sprintf("-- Roll %d --", status.Cycle+1))
}

// ShowPool shows what is left in the cup
func (c *Console) ShowPool(views []models.DieView) {
	c.println(c.printer.Sprintf("Dice in the cup: %s", c.renderCup(views)))
}

// ShowPicked shows the dice just drawn
func (c *Console) ShowPicked(views []models.DieView) {
	c.println(c.printer.Sprintf("You drew: %s", c.renderTiers(views)))
}

// ShowRolled shows the faces of the hand after a roll
func (c *Console) ShowRolled(views []models.DieView) {
	c.println(c.printer.Sprintf("You rolled: %s", c.renderDice(views)))
}

// ShowTurnStatus shows the running tally of the turn
func (c *Console) ShowTurnStatus(status *models.TurnStatus) {
	c.println(c.printer.Sprintf("Brains: %d | Footsteps: %d | Shots: %d of %d",
		status.Tally.Brains, status.Tally.Footsteps, status.Tally.Shots, status.ShotLimit))
	c.println(c.printer.Sprintf("Stop now and your score becomes %d.", status.PotentialScore()))
}

// ShowPoolExhausted tells the player the table brains went back in the cup
func (c *Console) ShowPoolExhausted(views []models.DieView) {
	c.println(c.printer.Sprintf("The cup ran dry! These brains go back in, and still count: %s", c.renderTiers(views)))
}

// ShowBust announces a turn lost to shotguns
func (c *Console) ShowBust(status *models.TurnStatus) {
	output, err := c.messaging.GetBustMessage(context.Background(), &messaging.GetBustMessageInput{
		PlayerName: status.PlayerName,
		BrainsLost: status.Tally.Brains,
	})
	if err != nil {
		c.logger.Warn("failed to get bust message", zap.Error(err))
	} else {
		c.println(output.Message)
	}

	c.println(c.printer.Sprintf("%s's score stays at %d.", status.PlayerName, status.Score))
}

// ShowBanked announces the brains the player kept
func (c *Console) ShowBanked(status *models.TurnStatus) {
	output, err := c.messaging.GetBankMessage(context.Background(), &messaging.GetBankMessageInput{
		PlayerName: status.PlayerName,
		Brains:     status.Tally.Brains,
	})
	if err != nil {
		c.logger.Warn("failed to get bank message", zap.Error(err))
	} else {
		c.println(output.Message)
	}

	c.println(c.printer.Sprintf("%s's score is now %d.", status.PlayerName, status.Score))
}

// readLine returns the next line typed by the player. Reading happens on a
// separate goroutine so a cancelled context is noticed while waiting.
func (c *Console) readLine(ctx context.Context) (string, error) {
	c.startOnce.Do(func() {
		go c.scan()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			if c.readErr != nil {
				return "", fmt.Errorf("%w: %w", ErrInputClosed, c.readErr)
			}
			return "", ErrInputClosed
		}
		return line, nil
	}
}

// scan feeds lines to readLine. It stays blocked on the input after a
// context is cancelled and lives until the process exits.
func (c *Console) scan() {
	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		c.lines <- scanner.Text()
	}
	c.readErr = scanner.Err()
	close(c.lines)
}

func (c *Console) clear() {
	if c.clearScreen {
		c.print(clearSequence)
	}
}

func (c *Console) print(text string) {
	if _, err := io.WriteString(c.out, text); err != nil {
		c.logger.Warn("failed to write to console", zap.Error(err))
	}
}

func (c *Console) println(text string) {
	c.print(text + "\n")
}
