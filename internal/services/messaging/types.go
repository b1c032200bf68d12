package messaging

import (
	"github.com/KirkDiggler/zombied/internal/dice"
	"golang.org/x/text/message"
)

// Config holds configuration for the messaging service
type Config struct {
	// Roller picks which message is shown
	Roller dice.Roller

	// Printer renders messages in the player's language, English if nil
	Printer *message.Printer
}

// GetRoundStartMessageInput contains parameters for a round start message
type GetRoundStartMessageInput struct {
	Round    int
	Tiebreak bool
}

// GetRoundStartMessageOutput contains the round start message
type GetRoundStartMessageOutput struct {
	Message string
}

// GetBustMessageInput contains parameters for a bust message
type GetBustMessageInput struct {
	PlayerName string
	BrainsLost int
}

// GetBustMessageOutput contains the bust message
type GetBustMessageOutput struct {
	Message string
}

// GetBankMessageInput contains parameters for a bank message
type GetBankMessageInput struct {
	PlayerName string
	Brains     int
}

// GetBankMessageOutput contains the bank message
type GetBankMessageOutput struct {
	Message string
}

// GetWinnerMessageInput contains parameters for a winner message
type GetWinnerMessageInput struct {
	PlayerName string
	Score      int
}

// GetWinnerMessageOutput contains the winner message
type GetWinnerMessageOutput struct {
	Message string
}
