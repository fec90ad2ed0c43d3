package core

// Key is a logical control key, abstracted from physical key codes.
// Frontends translate platform key events into Keys through their bindings.
type Key int

const (
	KeyNone   Key = iota
	KeyP1Up       // W by default
	KeyP1Down     // S by default
	KeyP2Up       // Up arrow by default
	KeyP2Down     // Down arrow by default
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyP1Up:
		return "P1Up"
	case KeyP1Down:
		return "P1Down"
	case KeyP2Up:
		return "P2Up"
	case KeyP2Down:
		return "P2Down"
	default:
		return "Unknown"
	}
}

// KeyEvent is a discrete key transition delivered by a frontend.
type KeyEvent struct {
	Key  Key
	Down bool
}

// InputSnapshot is the held-down state of the four control keys for one frame.
type InputSnapshot struct {
	P1Up   bool
	P1Down bool
	P2Up   bool
	P2Down bool
}

// KeyState tracks which control keys are currently held.
// Flags are level-triggered: a key stays down from its press until its release.
type KeyState struct {
	held InputSnapshot
}

// Press marks a key as held. KeyNone and unknown keys are ignored.
func (s *KeyState) Press(k Key) {
	s.set(k, true)
}

// Release marks a key as no longer held. KeyNone and unknown keys are ignored.
func (s *KeyState) Release(k Key) {
	s.set(k, false)
}

// Apply feeds a single key event into the tracker.
func (s *KeyState) Apply(ev KeyEvent) {
	s.set(ev.Key, ev.Down)
}

// Snapshot returns the current flags.
func (s *KeyState) Snapshot() InputSnapshot {
	return s.held
}

// Reset releases every key.
func (s *KeyState) Reset() {
	s.held = InputSnapshot{}
}

func (s *KeyState) set(k Key, down bool) {
	switch k {
	case KeyP1Up:
		s.held.P1Up = down
	case KeyP1Down:
		s.held.P1Down = down
	case KeyP2Up:
		s.held.P2Up = down
	case KeyP2Down:
		s.held.P2Down = down
	}
}
