package turn

import "fmt"

// State is where a turn is in its lifecycle
type State string

const (
	// StateRolling is the initial state; the player draws and rolls
	StateRolling State = "rolling"

	// StateBusted means the shot limit was reached
	StateBusted State = "busted"

	// StateBanked means the player chose to stop
	StateBanked State = "banked"

	// StateDone is terminal; the outcome has been recorded
	StateDone State = "done"
)

// Event drives a turn from one state to the next
type Event string

const (
	EventShotLimitReached Event = "shot_limit_reached"
	EventPlayerContinued  Event = "player_continued"
	EventPlayerStopped    Event = "player_stopped"
	EventBustRecorded     Event = "bust_recorded"
	EventScoreCommitted   Event = "score_committed"
)

var transitions = map[State]map[Event]State{
	StateRolling: {
		EventShotLimitReached: StateBusted,
		EventPlayerContinued:  StateRolling,
		EventPlayerStopped:    StateBanked,
	},
	StateBusted: {
		EventBustRecorded: StateDone,
	},
	StateBanked: {
		EventScoreCommitted: StateDone,
	},
}

// Step returns the state reached by applying event to state. No state is
// entered again once left, and nothing leaves StateDone.
func Step(state State, event Event) (State, error) {
	next, ok := transitions[state][event]
	if !ok {
		return state, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, event, state)
	}
	return next, nil
}
