package pong

// State summarizes the game for frontends and tests.
type State struct {
	Tick      uint64
	Score1    int
	Score2    int
	Round     RoundState
	Direction Direction
	BallVX    int
	BallVY    int
}

// EventKind classifies things that happened during a step.
type EventKind int

const (
	EventPointScored EventKind = iota + 1
	EventRoundReset
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPointScored:
		return "point scored"
	case EventRoundReset:
		return "round reset"
	default:
		return "unknown"
	}
}

// Event is emitted by Step. For EventPointScored, Player is the scorer;
// for EventRoundReset, Player is the side the new serve travels toward.
type Event struct {
	Kind   EventKind
	Player Player
	Score1 int
	Score2 int
}

// StepResult is returned by Step after each frame.
type StepResult struct {
	State  State
	Events []Event
}

// Scored returns the scoring event of this step, if any.
func (r StepResult) Scored() (Event, bool) {
	for _, ev := range r.Events {
		if ev.Kind == EventPointScored {
			return ev, true
		}
	}
	return Event{}, false
}
