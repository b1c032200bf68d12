package console

// ConsoleError is a custom error type for console errors
type ConsoleError string

// Error implements the error interface
func (e ConsoleError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig       ConsoleError = "config cannot be nil"
	ErrNilInput        ConsoleError = "input reader cannot be nil"
	ErrNilOutput       ConsoleError = "output writer cannot be nil"
	ErrNilMessaging    ConsoleError = "messaging service cannot be nil"
	ErrNilConsole      ConsoleError = "console cannot be nil"
	ErrNilMatchService ConsoleError = "match service cannot be nil"
	ErrInputClosed     ConsoleError = "input closed"
)
