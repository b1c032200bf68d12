package turn

import (
	"context"

	"github.com/KirkDiggler/zombied/internal/models"
)

// Service plays single turns against the shared dice pool
//
//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/zombied/internal/services/turn Service
type Service interface {
	// PlayTurn runs one player's turn until it is banked or busted
	PlayTurn(ctx context.Context, input *PlayTurnInput) (*PlayTurnOutput, error)
}

// Prompter asks the controlling player for decisions. Every call blocks
// until the player answers.
//
//go:generate mockgen -package=mocks -destination=mocks/mock_prompter.go github.com/KirkDiggler/zombied/internal/services/turn Prompter
type Prompter interface {
	// ConfirmDraw waits for the player to draw quota dice
	ConfirmDraw(ctx context.Context, quota int) error

	// ConfirmRoll waits for the player to roll the hand
	ConfirmRoll(ctx context.Context) error

	// AskContinue returns true to keep rolling and false to bank
	AskContinue(ctx context.Context, nextDrawQuota int) (bool, error)
}

// Presenter shows the turn to the players. Nothing it does feeds back into
// the turn.
//
//go:generate mockgen -package=mocks -destination=mocks/mock_presenter.go github.com/KirkDiggler/zombied/internal/services/turn Presenter
type Presenter interface {
	ShowCycleStart(status *models.TurnStatus)
	ShowPool(pool []models.DieView)
	ShowPicked(dice []models.DieView)
	ShowRolled(dice []models.DieView)
	ShowTurnStatus(status *models.TurnStatus)
	ShowPoolExhausted(returned []models.DieView)
	ShowBust(status *models.TurnStatus)
	ShowBanked(status *models.TurnStatus)
}
