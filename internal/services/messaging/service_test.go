package messaging

import (
	"context"
	"testing"

	diceMocks "github.com/KirkDiggler/zombied/internal/dice/mocks"
	"github.com/KirkDiggler/zombied/internal/i18n"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRoller *diceMocks.MockRoller
	service    Service
	ctx        context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.ctx = context.Background()

	var err error
	s.service, err = New(&Config{Roller: s.mockRoller})
	s.Require().NoError(err)
}

func (s *MessagingServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMessagingServiceSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilRoller)
}

func (s *MessagingServiceTestSuite) TestGetRoundStartMessage() {
	s.mockRoller.EXPECT().Intn(len(roundStartMessages)).Return(1)

	output, err := s.service.GetRoundStartMessage(s.ctx, &GetRoundStartMessageInput{Round: 4})

	s.Require().NoError(err)
	s.Equal("Round 4. Something smells like fresh brains.", output.Message)
}

func (s *MessagingServiceTestSuite) TestGetRoundStartMessage_Tiebreak() {
	s.mockRoller.EXPECT().Intn(len(tiebreakMessages)).Return(0)

	output, err := s.service.GetRoundStartMessage(s.ctx, &GetRoundStartMessageInput{Round: 7, Tiebreak: true})

	s.Require().NoError(err)
	s.Equal("Tiebreak round 7! Only the hungriest remain.", output.Message)
}

func (s *MessagingServiceTestSuite) TestGetBustMessage() {
	s.mockRoller.EXPECT().Intn(len(bustMessages)).Return(0).Times(2)

	output, err := s.service.GetBustMessage(s.ctx, &GetBustMessageInput{PlayerName: "Ana", BrainsLost: 5})
	s.Require().NoError(err)
	s.Equal("BLAM! Ana took one shot too many and drops 5 brains.", output.Message)

	output, err = s.service.GetBustMessage(s.ctx, &GetBustMessageInput{PlayerName: "Ana", BrainsLost: 1})
	s.Require().NoError(err)
	s.Equal("BLAM! Ana took one shot too many and drops 1 brain.", output.Message)
}

func (s *MessagingServiceTestSuite) TestGetBankMessage() {
	s.mockRoller.EXPECT().Intn(len(bankMessages)).Return(1)

	output, err := s.service.GetBankMessage(s.ctx, &GetBankMessageInput{PlayerName: "Bruno", Brains: 3})

	s.Require().NoError(err)
	s.Equal("Nom nom! Bruno banks 3 brains.", output.Message)
}

func (s *MessagingServiceTestSuite) TestGetWinnerMessage() {
	s.mockRoller.EXPECT().Intn(len(winnerMessages)).Return(0)

	output, err := s.service.GetWinnerMessage(s.ctx, &GetWinnerMessageInput{PlayerName: "Carla", Score: 14})

	s.Require().NoError(err)
	s.Equal("Carla is the last zombie standing with 14 brains!", output.Message)
}

func (s *MessagingServiceTestSuite) TestNilInput() {
	_, err := s.service.GetBustMessage(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)

	_, err = s.service.GetBankMessage(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)
}

func (s *MessagingServiceTestSuite) TestPortuguese() {
	svc, err := New(&Config{
		Roller:  s.mockRoller,
		Printer: i18n.NewPrinter("pt-BR"),
	})
	s.Require().NoError(err)

	s.mockRoller.EXPECT().Intn(len(bankMessages)).Return(1)

	output, err := svc.GetBankMessage(s.ctx, &GetBankMessageInput{PlayerName: "Bruno", Brains: 3})

	s.Require().NoError(err)
	s.Equal("Nham nham! Bruno guarda 3 cérebros.", output.Message)
}

func TestEveryKeyIsTranslated(t *testing.T) {
	en := message.NewPrinter(language.English)
	pt := i18n.NewPrinter("pt-BR")

	for _, key := range Keys() {
		t.Run(key, func(t *testing.T) {
			if en.Sprintf(key, "Ana", 2) == pt.Sprintf(key, "Ana", 2) {
				t.Errorf("no pt-BR translation for %q", key)
			}
		})
	}
}
