package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/zombied/internal/services/messaging Service

import "context"

// Service picks the flavor text shown between turns
type Service interface {
	// GetRoundStartMessage returns a message announcing a new round
	GetRoundStartMessage(ctx context.Context, input *GetRoundStartMessageInput) (*GetRoundStartMessageOutput, error)

	// GetBustMessage returns a message for a player who was shot too often
	GetBustMessage(ctx context.Context, input *GetBustMessageInput) (*GetBustMessageOutput, error)

	// GetBankMessage returns a message for a player who stopped and scored
	GetBankMessage(ctx context.Context, input *GetBankMessageInput) (*GetBankMessageOutput, error)

	// GetWinnerMessage returns a message crowning the winner
	GetWinnerMessage(ctx context.Context, input *GetWinnerMessageInput) (*GetWinnerMessageOutput, error)
}
