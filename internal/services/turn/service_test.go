package turn_test

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/zombied/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/zombied/internal/common/uuid/mocks"
	"github.com/KirkDiggler/zombied/internal/dice"
	diceMocks "github.com/KirkDiggler/zombied/internal/dice/mocks"
	"github.com/KirkDiggler/zombied/internal/models"
	"github.com/KirkDiggler/zombied/internal/pool"
	"github.com/KirkDiggler/zombied/internal/services/turn"
	"github.com/KirkDiggler/zombied/internal/services/turn/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

// Faces of a green die, as returned by Roller.Roll(6)
const (
	greenBrain     = 1
	greenFootsteps = 4
	greenShot      = 6
)

type TurnServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockRoller    *diceMocks.MockRoller
	mockPrompter  *mocks.MockPrompter
	mockPresenter *mocks.MockPresenter
	mockClock     *clockMocks.MockClock
	mockUUID      *uuidMocks.MockUUID
	ctx           context.Context

	testTime     time.Time
	testTurnID   string
	testGameID   string
	testPlayerID string

	player *models.Player
}

func (s *TurnServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockPrompter = mocks.NewMockPrompter(s.mockCtrl)
	s.mockPresenter = mocks.NewMockPresenter(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testTurnID = "test-turn-id"
	s.testGameID = "test-game-id"
	s.testPlayerID = "test-player-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return(s.testTurnID).AnyTimes()

	// Draws always take the first die; the order of dice does not matter
	// when every die is green
	s.mockRoller.EXPECT().Shuffle(gomock.Any(), gomock.Any()).AnyTimes()
	s.mockRoller.EXPECT().Intn(gomock.Any()).Return(0).AnyTimes()

	s.player = &models.Player{
		ID:    s.testPlayerID,
		Name:  "Test Player",
		Score: 5,
	}
}

func (s *TurnServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *TurnServiceTestSuite) newService(greenDice, shotLimit int) turn.Service {
	p, err := pool.New(&pool.Config{
		Roller:    s.mockRoller,
		Inventory: dice.Inventory{{Tier: models.TierGreen, Quantity: greenDice}},
	})
	s.Require().NoError(err)

	svc, err := turn.New(&turn.Config{
		RoundDrawCount: 3,
		ShotLimit:      shotLimit,
		Pool:           p,
		Prompter:       s.mockPrompter,
		Presenter:      s.mockPresenter,
		DiceRoller:     s.mockRoller,
		Clock:          s.mockClock,
		UUIDGenerator:  s.mockUUID,
		Logger:         zaptest.NewLogger(s.T()),
	})
	s.Require().NoError(err)

	return svc
}

// expectDisplay allows every presenter call that does not end the turn
func (s *TurnServiceTestSuite) expectDisplay() {
	s.mockPresenter.EXPECT().ShowCycleStart(gomock.Any()).AnyTimes()
	s.mockPresenter.EXPECT().ShowPool(gomock.Any()).AnyTimes()
	s.mockPresenter.EXPECT().ShowPicked(gomock.Any()).AnyTimes()
	s.mockPresenter.EXPECT().ShowRolled(gomock.Any()).AnyTimes()
	s.mockPresenter.EXPECT().ShowTurnStatus(gomock.Any()).AnyTimes()
}

func (s *TurnServiceTestSuite) expectRolls(faces ...int) {
	calls := make([]any, 0, len(faces))
	for _, f := range faces {
		calls = append(calls, s.mockRoller.EXPECT().Roll(dice.FacesPerDie).Return(f))
	}
	gomock.InOrder(calls...)
}

func (s *TurnServiceTestSuite) playTurn(svc turn.Service) (*turn.PlayTurnOutput, error) {
	return svc.PlayTurn(s.ctx, &turn.PlayTurnInput{
		Player: s.player,
		GameID: s.testGameID,
		Round:  1,
	})
}

func (s *TurnServiceTestSuite) TestNew_Validation() {
	p, err := pool.New(&pool.Config{Roller: s.mockRoller})
	s.Require().NoError(err)

	testCases := []struct {
		name     string
		cfg      *turn.Config
		expected error
	}{
		{name: "nil config", cfg: nil, expected: turn.ErrNilConfig},
		{name: "nil pool", cfg: &turn.Config{}, expected: turn.ErrNilPool},
		{name: "nil roller", cfg: &turn.Config{Pool: p}, expected: turn.ErrNilDiceRoller},
		{
			name:     "nil prompter",
			cfg:      &turn.Config{Pool: p, DiceRoller: s.mockRoller},
			expected: turn.ErrNilPrompter,
		},
		{
			name:     "nil presenter",
			cfg:      &turn.Config{Pool: p, DiceRoller: s.mockRoller, Prompter: s.mockPrompter},
			expected: turn.ErrNilPresenter,
		},
		{
			name: "draw count larger than inventory",
			cfg: &turn.Config{
				Pool: p, DiceRoller: s.mockRoller, Prompter: s.mockPrompter, Presenter: s.mockPresenter,
				RoundDrawCount: 14,
			},
			expected: turn.ErrInvalidDrawCount,
		},
		{
			name: "draw count that can run the pool dry",
			cfg: &turn.Config{
				Pool: p, DiceRoller: s.mockRoller, Prompter: s.mockPrompter, Presenter: s.mockPresenter,
				RoundDrawCount: 12, ShotLimit: 3,
			},
			expected: turn.ErrInvalidDrawCount,
		},
		{
			name: "draw count of the whole inventory",
			cfg: &turn.Config{
				Pool: p, DiceRoller: s.mockRoller, Prompter: s.mockPrompter, Presenter: s.mockPresenter,
				RoundDrawCount: 13, ShotLimit: 3,
			},
			expected: turn.ErrInvalidDrawCount,
		},
		{
			name: "shot limit that can run the pool dry",
			cfg: &turn.Config{
				Pool: p, DiceRoller: s.mockRoller, Prompter: s.mockPrompter, Presenter: s.mockPresenter,
				RoundDrawCount: 3, ShotLimit: 20,
			},
			expected: turn.ErrInvalidDrawCount,
		},
		{
			name: "negative shot limit",
			cfg: &turn.Config{
				Pool: p, DiceRoller: s.mockRoller, Prompter: s.mockPrompter, Presenter: s.mockPresenter,
				ShotLimit: -1,
			},
			expected: turn.ErrInvalidShotLimit,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			svc, err := turn.New(tc.cfg)
			s.ErrorIs(err, tc.expected)
			s.Nil(svc)
		})
	}
}

func (s *TurnServiceTestSuite) TestNew_LargestCoveredLimits() {
	p, err := pool.New(&pool.Config{Roller: s.mockRoller})
	s.Require().NoError(err)

	for _, limits := range [][2]int{{11, 3}, {3, 11}} {
		svc, err := turn.New(&turn.Config{
			RoundDrawCount: limits[0],
			ShotLimit:      limits[1],
			Pool:           p,
			Prompter:       s.mockPrompter,
			Presenter:      s.mockPresenter,
			DiceRoller:     s.mockRoller,
		})
		s.NoError(err, "draw %d, shot limit %d", limits[0], limits[1])
		s.NotNil(svc)
	}
}

func (s *TurnServiceTestSuite) TestPlayTurn_NilPlayer() {
	svc := s.newService(13, 3)

	output, err := svc.PlayTurn(s.ctx, &turn.PlayTurnInput{})

	s.ErrorIs(err, turn.ErrNilPlayer)
	s.Nil(output)
}

// One roll of brain, footsteps and shot: nothing busts and only two dice
// need drawing next time
func (s *TurnServiceTestSuite) TestPlayTurn_MixedRollLowersDrawQuota() {
	svc := s.newService(13, 3)
	s.expectDisplay()
	s.expectRolls(greenBrain, greenFootsteps, greenShot)

	s.mockPrompter.EXPECT().ConfirmDraw(gomock.Any(), 3).Return(nil)
	s.mockPrompter.EXPECT().ConfirmRoll(gomock.Any()).Return(nil)
	s.mockPrompter.EXPECT().AskContinue(gomock.Any(), 2).Return(false, nil)
	s.mockPresenter.EXPECT().ShowBanked(gomock.Any()).Do(func(status *models.TurnStatus) {
		s.Equal(models.Tally{Brains: 1, Footsteps: 1, Shots: 1}, status.Tally)
		s.Equal(2, status.DrawQuota)
	})

	output, err := s.playTurn(svc)

	s.Require().NoError(err)
	record := output.Record
	s.Equal(models.Tally{Brains: 1, Footsteps: 1, Shots: 1}, record.Tally)
	s.Equal(models.TurnOutcomeBanked, record.Outcome)
	s.Equal(3, record.Picked)
	s.Equal(1, record.Cycles())
	s.Equal(3, record.Rolls[0].Drawn)
	s.Equal(s.testTurnID, record.ID)
	s.Equal(s.testGameID, record.GameID)
	s.Equal(s.testPlayerID, record.PlayerID)
	s.Equal(s.testTime, record.StartedAt)
	s.Equal(6, s.player.Score)
}

func (s *TurnServiceTestSuite) TestPlayTurn_BustKeepsScore() {
	svc := s.newService(13, 3)
	s.expectDisplay()
	s.expectRolls(
		greenShot, greenShot, greenBrain,
		greenShot, greenBrain, greenBrain,
	)

	s.mockPrompter.EXPECT().ConfirmDraw(gomock.Any(), 3).Return(nil).Times(2)
	s.mockPrompter.EXPECT().ConfirmRoll(gomock.Any()).Return(nil).Times(2)
	s.mockPrompter.EXPECT().AskContinue(gomock.Any(), 3).Return(true, nil).Times(1)
	s.mockPresenter.EXPECT().ShowBust(gomock.Any()).Do(func(status *models.TurnStatus) {
		s.Equal(3, status.Tally.Shots)
		s.Equal(5, status.Score)
	})

	output, err := s.playTurn(svc)

	s.Require().NoError(err)
	s.Equal(models.TurnOutcomeBusted, output.Record.Outcome)
	s.Equal(models.Tally{Brains: 3, Shots: 3}, output.Record.Tally)
	s.Equal(3, output.Record.BrainsLost())
	s.Equal(5, output.Record.ScoreBefore)
	s.Equal(5, output.Record.ScoreAfter)
	s.Equal(5, s.player.Score)
}

func (s *TurnServiceTestSuite) TestPlayTurn_BankAddsBrains() {
	svc := s.newService(13, 3)
	s.expectDisplay()
	s.expectRolls(greenBrain, greenBrain, greenShot)

	s.mockPrompter.EXPECT().ConfirmDraw(gomock.Any(), 3).Return(nil)
	s.mockPrompter.EXPECT().ConfirmRoll(gomock.Any()).Return(nil)
	s.mockPrompter.EXPECT().AskContinue(gomock.Any(), 3).Return(false, nil)
	s.mockPresenter.EXPECT().ShowBanked(gomock.Any()).Do(func(status *models.TurnStatus) {
		s.Equal(7, status.Score)
	})

	output, err := s.playTurn(svc)

	s.Require().NoError(err)
	s.Equal(models.Tally{Brains: 2, Shots: 1}, output.Record.Tally)
	s.Equal(5, output.Record.ScoreBefore)
	s.Equal(7, output.Record.ScoreAfter)
	s.Equal(7, s.player.Score)
}

func (s *TurnServiceTestSuite) TestPlayTurn_FootstepsAreRerolled() {
	svc := s.newService(13, 3)
	s.expectDisplay()
	s.expectRolls(
		greenFootsteps, greenFootsteps, greenBrain,
		greenBrain, greenBrain, greenBrain,
	)

	gomock.InOrder(
		s.mockPrompter.EXPECT().ConfirmDraw(gomock.Any(), 3).Return(nil),
		s.mockPrompter.EXPECT().ConfirmDraw(gomock.Any(), 1).Return(nil),
	)
	s.mockPrompter.EXPECT().ConfirmRoll(gomock.Any()).Return(nil).Times(2)
	gomock.InOrder(
		s.mockPrompter.EXPECT().AskContinue(gomock.Any(), 1).Return(true, nil),
		s.mockPrompter.EXPECT().AskContinue(gomock.Any(), 3).Return(false, nil),
	)
	s.mockPresenter.EXPECT().ShowBanked(gomock.Any())

	output, err := s.playTurn(svc)

	s.Require().NoError(err)
	record := output.Record
	s.Equal(4, record.Picked)
	s.Require().Len(record.Rolls, 2)
	s.Len(record.Rolls[1].Dice, 3)
	s.Equal(1, record.Rolls[1].Drawn)
	s.Equal(models.Tally{Brains: 4}, record.Tally)
	s.Equal(9, s.player.Score)
}

func (s *TurnServiceTestSuite) TestPlayTurn_AllFootstepsSkipsDraw() {
	svc := s.newService(13, 3)
	s.expectDisplay()
	s.expectRolls(
		greenFootsteps, greenFootsteps, greenFootsteps,
		greenBrain, greenBrain, greenBrain,
	)

	s.mockPrompter.EXPECT().ConfirmDraw(gomock.Any(), 3).Return(nil).Times(1)
	s.mockPrompter.EXPECT().ConfirmRoll(gomock.Any()).Return(nil).Times(2)
	gomock.InOrder(
		s.mockPrompter.EXPECT().AskContinue(gomock.Any(), 0).Return(true, nil),
		s.mockPrompter.EXPECT().AskContinue(gomock.Any(), 3).Return(false, nil),
	)
	s.mockPresenter.EXPECT().ShowBanked(gomock.Any())

	output, err := s.playTurn(svc)

	s.Require().NoError(err)
	s.Equal(3, output.Record.Picked)
	s.Equal(0, output.Record.Rolls[1].Drawn)
	s.Equal(8, s.player.Score)
}

// With five dice the pool runs dry on the second continue, and the brains on
// the table go back so the turn can go on
func (s *TurnServiceTestSuite) TestPlayTurn_PoolExhaustionReturnsBrains() {
	svc := s.newService(5, 3)
	s.expectDisplay()
	s.expectRolls(
		greenBrain, greenBrain, greenFootsteps,
		greenBrain, greenBrain, greenFootsteps,
		greenBrain, greenShot, greenFootsteps,
	)

	s.mockPrompter.EXPECT().ConfirmDraw(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	s.mockPrompter.EXPECT().ConfirmRoll(gomock.Any()).Return(nil).Times(3)
	gomock.InOrder(
		s.mockPrompter.EXPECT().AskContinue(gomock.Any(), 2).Return(true, nil),
		s.mockPrompter.EXPECT().AskContinue(gomock.Any(), 2).Return(true, nil),
		s.mockPrompter.EXPECT().AskContinue(gomock.Any(), 2).Return(false, nil),
	)
	s.mockPresenter.EXPECT().ShowPoolExhausted(gomock.Any()).Do(func(returned []models.DieView) {
		s.Len(returned, 4)
		for _, d := range returned {
			s.Equal(models.FaceUnrolled, d.Face)
		}
	})
	s.mockPresenter.EXPECT().ShowBanked(gomock.Any())

	output, err := s.playTurn(svc)

	s.Require().NoError(err)
	record := output.Record
	s.Equal(1, record.PoolRecoveries)
	s.Equal(7, record.Picked)
	s.Equal(models.Tally{Brains: 5, Footsteps: 1, Shots: 1}, record.Tally)
	s.Equal(10, s.player.Score)
}

func (s *TurnServiceTestSuite) TestPlayTurn_PrompterError() {
	svc := s.newService(13, 3)
	s.expectDisplay()
	expectedError := errors.New("input closed")

	s.mockPrompter.EXPECT().ConfirmDraw(gomock.Any(), 3).Return(expectedError)

	output, err := s.playTurn(svc)

	s.ErrorIs(err, expectedError)
	s.Nil(output)
	s.Equal(5, s.player.Score)
}

func (s *TurnServiceTestSuite) TestPlayTurn_AskContinueError() {
	svc := s.newService(13, 3)
	s.expectDisplay()
	s.expectRolls(greenBrain, greenBrain, greenBrain)
	expectedError := context.Canceled

	s.mockPrompter.EXPECT().ConfirmDraw(gomock.Any(), 3).Return(nil)
	s.mockPrompter.EXPECT().ConfirmRoll(gomock.Any()).Return(nil)
	s.mockPrompter.EXPECT().AskContinue(gomock.Any(), 3).Return(false, expectedError)

	output, err := s.playTurn(svc)

	s.ErrorIs(err, context.Canceled)
	s.Nil(output)
	s.Equal(5, s.player.Score)
}

func TestTurnServiceSuite(t *testing.T) {
	suite.Run(t, new(TurnServiceTestSuite))
}
