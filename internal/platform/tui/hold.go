package tui

import (
	"time"

	"github.com/vovakirdan/pong/internal/core"
)

// holdTracker emulates key releases for terminals, which only report presses
// (and auto-repeat). A key stays held until it has not been seen for the
// hold window.
type holdTracker struct {
	window   time.Duration
	state    core.KeyState
	lastSeen map[core.Key]time.Time
}

func newHoldTracker(window time.Duration) *holdTracker {
	return &holdTracker{
		window:   window,
		lastSeen: make(map[core.Key]time.Time),
	}
}

// Press records a press (or repeat) of k at now.
func (h *holdTracker) Press(k core.Key, now time.Time) {
	if k == core.KeyNone {
		return
	}
	h.state.Press(k)
	h.lastSeen[k] = now
}

// Expire releases every key whose last press is at least one window old.
func (h *holdTracker) Expire(now time.Time) {
	for k, seen := range h.lastSeen {
		if now.Sub(seen) >= h.window {
			h.state.Release(k)
			delete(h.lastSeen, k)
		}
	}
}

// Snapshot returns the currently held keys.
func (h *holdTracker) Snapshot() core.InputSnapshot {
	return h.state.Snapshot()
}
