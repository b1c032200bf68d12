package turn

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/zombied/internal/dice"
	"github.com/KirkDiggler/zombied/internal/models"
	"github.com/KirkDiggler/zombied/internal/pool"
	"go.uber.org/zap"
)

// Turn is the state machine for one player's turn. It borrows the pool and
// the player for its lifetime and is discarded once it reaches StateDone.
type Turn struct {
	id     string
	gameID string
	round  int

	player    *models.Player
	pool      *pool.Pool
	roller    dice.Roller
	prompter  Prompter
	presenter Presenter
	logger    *zap.Logger

	roundDrawCount int
	shotLimit      int

	state     State
	outcome   models.TurnOutcome
	tally     models.Tally
	hand      []*dice.Die
	table     []*dice.Die
	drawQuota int
	lastDrawn int

	// picked counts every die drawn this turn; returned counts dice sent
	// back by pool recovery, so hand+table == picked-returned
	picked   int
	returned int

	rolls       []models.Roll
	recoveries  int
	scoreBefore int
}

// Run plays cycles until the turn is done
func (t *Turn) Run(ctx context.Context) error {
	for t.state != StateDone {
		var err error

		switch t.state {
		case StateRolling:
			err = t.playCycle(ctx)
		case StateBusted:
			err = t.recordBust()
		case StateBanked:
			err = t.commitScore()
		default:
			err = fmt.Errorf("%w: unknown state %q", ErrInvalidTransition, t.state)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// State returns the current state of the turn
func (t *Turn) State() State {
	return t.state
}

// Tally returns the faces counted so far
func (t *Turn) Tally() models.Tally {
	return t.tally
}

// DrawQuota is how many dice the next cycle draws
func (t *Turn) DrawQuota() int {
	return t.drawQuota
}

// Picked is how many dice have been drawn this turn
func (t *Turn) Picked() int {
	return t.picked
}

func (t *Turn) fire(event Event) error {
	next, err := Step(t.state, event)
	if err != nil {
		return err
	}

	t.logger.Debug("turn transition",
		zap.String("turn_id", t.id),
		zap.String("from", string(t.state)),
		zap.String("event", string(event)),
		zap.String("to", string(next)),
	)

	t.state = next
	return nil
}

// playCycle draws, rolls and asks the player whether to go on
func (t *Turn) playCycle(ctx context.Context) error {
	t.presenter.ShowCycleStart(t.status())

	if err := t.drawDice(ctx); err != nil {
		return err
	}

	if err := t.rollHand(ctx); err != nil {
		return err
	}

	t.logger.Debug("hand rolled",
		zap.String("turn_id", t.id),
		zap.Int("cycle", len(t.rolls)),
		zap.Int("brains", t.tally.Brains),
		zap.Int("footsteps", t.tally.Footsteps),
		zap.Int("shots", t.tally.Shots),
	)

	if t.tally.Shots >= t.shotLimit {
		return t.fire(EventShotLimitReached)
	}

	// Footsteps dice stay in hand and are rolled again, so fewer are drawn
	t.drawQuota = t.roundDrawCount - t.tally.Footsteps

	t.presenter.ShowTurnStatus(t.status())

	keepRolling, err := t.prompter.AskContinue(ctx, t.drawQuota)
	if err != nil {
		return fmt.Errorf("failed to ask player to continue: %w", err)
	}

	if !keepRolling {
		return t.fire(EventPlayerStopped)
	}

	t.lockHand()

	if err := t.fire(EventPlayerContinued); err != nil {
		return err
	}

	if t.pool.Size() < t.drawQuota {
		return t.recoverExhaustedPool()
	}

	return nil
}

func (t *Turn) drawDice(ctx context.Context) error {
	t.lastDrawn = 0

	if t.drawQuota == 0 {
		return nil
	}

	t.pool.Shuffle()
	t.presenter.ShowPool(t.pool.Snapshot())

	if err := t.prompter.ConfirmDraw(ctx, t.drawQuota); err != nil {
		return fmt.Errorf("failed to confirm draw: %w", err)
	}

	drawn, err := t.pool.Draw(t.drawQuota)
	if err != nil {
		return fmt.Errorf("failed to draw %d dice: %w", t.drawQuota, err)
	}

	t.hand = append(t.hand, drawn...)
	t.picked += len(drawn)
	t.lastDrawn = len(drawn)

	t.presenter.ShowPicked(dice.Views(drawn))

	return nil
}

func (t *Turn) rollHand(ctx context.Context) error {
	t.tally.ResetFootsteps()

	if err := t.prompter.ConfirmRoll(ctx); err != nil {
		return fmt.Errorf("failed to confirm roll: %w", err)
	}

	for _, d := range t.hand {
		t.tally.Add(d.Roll(t.roller))
	}

	rolled := dice.Views(t.hand)
	t.rolls = append(t.rolls, models.Roll{
		Cycle: len(t.rolls) + 1,
		Dice:  rolled,
		Drawn: t.lastDrawn,
	})

	t.presenter.ShowRolled(rolled)

	return nil
}

// lockHand moves every die that did not roll footsteps onto the table
func (t *Turn) lockHand() {
	kept := make([]*dice.Die, 0, len(t.hand))
	for _, d := range t.hand {
		if d.Face() == models.FaceFootsteps {
			kept = append(kept, d)
			continue
		}
		t.table = append(t.table, d)
	}
	t.hand = kept
}

// recoverExhaustedPool sends the brains on the table back to the pool so the
// turn can keep drawing. The brain tally is a running count and is not
// touched.
func (t *Turn) recoverExhaustedPool() error {
	remaining := make([]*dice.Die, 0, len(t.table))
	returned := make([]*dice.Die, 0, len(t.table))

	for _, d := range t.table {
		if d.Face() != models.FaceBrain {
			remaining = append(remaining, d)
			continue
		}

		d.Reset()
		if err := t.pool.Return(d); err != nil {
			return fmt.Errorf("failed to return die to pool: %w", err)
		}
		returned = append(returned, d)
	}

	t.table = remaining
	t.returned += len(returned)
	t.recoveries++

	t.logger.Info("pool exhausted, brains returned",
		zap.String("turn_id", t.id),
		zap.Int("returned", len(returned)),
		zap.Int("pool_size", t.pool.Size()),
		zap.Int("draw_quota", t.drawQuota),
	)

	t.presenter.ShowPoolExhausted(dice.Views(returned))

	return nil
}

func (t *Turn) recordBust() error {
	t.outcome = models.TurnOutcomeBusted
	t.presenter.ShowBust(t.status())

	return t.fire(EventBustRecorded)
}

func (t *Turn) commitScore() error {
	t.player.Score += t.tally.Brains
	t.outcome = models.TurnOutcomeBanked
	t.presenter.ShowBanked(t.status())

	return t.fire(EventScoreCommitted)
}

func (t *Turn) status() *models.TurnStatus {
	return &models.TurnStatus{
		PlayerName: t.player.Name,
		Round:      t.round,
		Cycle:      len(t.rolls),
		Tally:      t.tally,
		Picked:     t.picked,
		Score:      t.player.Score,
		DrawQuota:  t.drawQuota,
		ShotLimit:  t.shotLimit,
	}
}

func (t *Turn) record() *models.TurnRecord {
	return &models.TurnRecord{
		ID:             t.id,
		GameID:         t.gameID,
		PlayerID:       t.player.ID,
		Round:          t.round,
		Outcome:        t.outcome,
		Tally:          t.tally,
		Picked:         t.picked,
		Rolls:          t.rolls,
		PoolRecoveries: t.recoveries,
		ScoreBefore:    t.scoreBefore,
		ScoreAfter:     t.player.Score,
	}
}
