package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/KirkDiggler/zombied/internal/i18n"
	"github.com/KirkDiggler/zombied/internal/models"
	"github.com/KirkDiggler/zombied/internal/services/match"
	matchMocks "github.com/KirkDiggler/zombied/internal/services/match/mocks"
	"github.com/KirkDiggler/zombied/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/zombied/internal/services/messaging/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RunnerTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockMatch     *matchMocks.MockService
	mockMessaging *messagingMocks.MockService
	out           *bytes.Buffer
	ctx           context.Context

	ana   *models.Player
	bruno *models.Player
}

func (s *RunnerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockMatch = matchMocks.NewMockService(s.mockCtrl)
	s.mockMessaging = messagingMocks.NewMockService(s.mockCtrl)
	s.out = &bytes.Buffer{}
	s.ctx = context.Background()

	s.ana = &models.Player{ID: "player-ana", Name: "Ana"}
	s.bruno = &models.Player{ID: "player-bruno", Name: "Bruno"}
}

func (s *RunnerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerTestSuite))
}

func (s *RunnerTestSuite) newRunner(input string) *Runner {
	c, err := New(&Config{
		In:        strings.NewReader(input),
		Out:       s.out,
		Printer:   i18n.NewPrinter("en"),
		Messaging: s.mockMessaging,
	})
	s.Require().NoError(err)

	r, err := NewRunner(&RunnerConfig{
		Console:      c,
		MatchService: s.mockMatch,
		Rules: Rules{
			ScoreLimit: 13,
			DrawCount:  3,
			ShotLimit:  3,
			MinPlayers: 2,
			MaxPlayers: 8,
		},
	})
	s.Require().NoError(err)
	return r
}

func (s *RunnerTestSuite) expectRoundStart(round int, tiebreak bool) {
	s.mockMessaging.EXPECT().
		GetRoundStartMessage(gomock.Any(), &messaging.GetRoundStartMessageInput{Round: round, Tiebreak: tiebreak}).
		Return(&messaging.GetRoundStartMessageOutput{Message: "ROUND START"}, nil)
}

func (s *RunnerTestSuite) TestNewRunner_Validation() {
	_, err := NewRunner(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = NewRunner(&RunnerConfig{MatchService: s.mockMatch})
	s.ErrorIs(err, ErrNilConsole)

	_, err = NewRunner(&RunnerConfig{Console: &Console{}})
	s.ErrorIs(err, ErrNilMatchService)
}

func (s *RunnerTestSuite) TestRun_OneGameWithTiebreak() {
	runner := s.newRunner("1\n2\nAna\n\nBruno\n\nn\n")

	s.mockMatch.EXPECT().
		CreateGame(gomock.Any(), &match.CreateGameInput{PlayerNames: []string{"Ana", "Bruno"}}).
		Return(&match.CreateGameOutput{GameID: "game-1", Players: []*models.Player{s.ana, s.bruno}}, nil)

	tiedAna := &models.Player{ID: s.ana.ID, Name: "Ana", Score: 13}
	tiedBruno := &models.Player{ID: s.bruno.ID, Name: "Bruno", Score: 13}
	winner := &models.Player{ID: s.bruno.ID, Name: "Bruno", Score: 15}

	gomock.InOrder(
		s.mockMatch.EXPECT().
			PlayRound(gomock.Any(), &match.PlayRoundInput{GameID: "game-1"}).
			Return(&match.PlayRoundOutput{
				Round:   1,
				Leaders: []*models.Player{tiedAna, tiedBruno},
				IsDraw:  true,
			}, nil),
		s.mockMatch.EXPECT().
			PlayRound(gomock.Any(), &match.PlayRoundInput{GameID: "game-1"}).
			Return(&match.PlayRoundOutput{
				Round:    2,
				Leaders:  []*models.Player{winner},
				GameOver: true,
				Winner:   winner,
			}, nil),
	)

	s.expectRoundStart(1, false)
	s.expectRoundStart(2, true)

	s.mockMessaging.EXPECT().
		GetWinnerMessage(gomock.Any(), &messaging.GetWinnerMessageInput{PlayerName: "Bruno", Score: 15}).
		Return(&messaging.GetWinnerMessageOutput{Message: "BRUNO WINS"}, nil)

	s.mockMatch.EXPECT().
		GetLeaderboard(gomock.Any(), &match.GetLeaderboardInput{GameID: "game-1"}).
		Return(&match.GetLeaderboardOutput{
			Status: models.GameStatusCompleted,
			Round:  2,
			Entries: []*models.LeaderboardEntry{
				{PlayerID: s.bruno.ID, PlayerName: "Bruno", Score: 15, Turns: 2, Banks: 2},
				{PlayerID: s.ana.ID, PlayerName: "Ana", Score: 13, Turns: 2, Banks: 1, Busts: 1, BrainsLost: 2},
			},
		}, nil)

	s.mockMatch.EXPECT().
		EndGame(gomock.Any(), &match.EndGameInput{GameID: "game-1"}).
		Return(&match.EndGameOutput{Success: true}, nil)

	err := runner.Run(s.ctx)

	s.Require().NoError(err)

	output := s.out.String()
	s.Contains(output, "You are a zombie. Eat 13 brains to win.")
	s.Contains(output, "Please type a number between 2 and 8.")
	s.Contains(output, "Draw! Ana, Bruno are tied at 13 brains and play another round.")
	s.Contains(output, "BRUNO WINS")
	s.Contains(output, "Final standings after 2 rounds:")
	s.Contains(output, "1. Bruno: 15 brains (2 turns, 0 busts, 0 brains lost)")
	s.Contains(output, "2. Ana: 13 brains (2 turns, 1 busts, 2 brains lost)")
	s.Contains(output, "Thanks for playing. Braaains!")
}

func (s *RunnerTestSuite) TestRun_InputClosed() {
	runner := s.newRunner("2\nAna\n")

	err := runner.Run(s.ctx)

	s.ErrorIs(err, ErrInputClosed)
}

func (s *RunnerTestSuite) TestRun_CreateGameFails() {
	runner := s.newRunner("2\nAna\nBruno\n")

	s.mockMatch.EXPECT().
		CreateGame(gomock.Any(), gomock.Any()).
		Return(nil, match.ErrBlankPlayerName)

	err := runner.Run(s.ctx)

	s.ErrorIs(err, match.ErrBlankPlayerName)
}
