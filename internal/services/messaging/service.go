package messaging

import (
	"context"

	"github.com/KirkDiggler/zombied/internal/dice"
	"github.com/KirkDiggler/zombied/internal/i18n"
	"golang.org/x/text/message"
)

// service implements the Service interface
type service struct {
	roller  dice.Roller
	printer *message.Printer
}

// New creates a new messaging service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}

	printer := cfg.Printer
	if printer == nil {
		printer = i18n.NewPrinter(i18n.DefaultLanguage)
	}

	return &service{
		roller:  cfg.Roller,
		printer: printer,
	}, nil
}

// GetRoundStartMessage returns a message announcing a new round
func (s *service) GetRoundStartMessage(ctx context.Context, input *GetRoundStartMessageInput) (*GetRoundStartMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	messages := roundStartMessages
	if input.Tiebreak {
		messages = tiebreakMessages
	}

	return &GetRoundStartMessageOutput{
		Message: s.printer.Sprintf(s.pick(messages), input.Round),
	}, nil
}

// GetBustMessage returns a message for a player who was shot too often
func (s *service) GetBustMessage(ctx context.Context, input *GetBustMessageInput) (*GetBustMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	return &GetBustMessageOutput{
		Message: s.printer.Sprintf(s.pick(bustMessages), input.PlayerName, input.BrainsLost),
	}, nil
}

// GetBankMessage returns a message for a player who stopped and scored
func (s *service) GetBankMessage(ctx context.Context, input *GetBankMessageInput) (*GetBankMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	return &GetBankMessageOutput{
		Message: s.printer.Sprintf(s.pick(bankMessages), input.PlayerName, input.Brains),
	}, nil
}

// GetWinnerMessage returns a message crowning the winner
func (s *service) GetWinnerMessage(ctx context.Context, input *GetWinnerMessageInput) (*GetWinnerMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	return &GetWinnerMessageOutput{
		Message: s.printer.Sprintf(s.pick(winnerMessages), input.PlayerName, input.Score),
	}, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.roller.Intn(len(messages))]
}
