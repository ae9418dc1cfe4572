package tui

import (
	"time"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Terminals report key presses and auto-repeats but never key releases.
// A direction counts as held for HoldDelay after the first press, long
// enough to bridge the typical auto-repeat delay, then for HoldRepeat after
// each repeat.
const (
	DefaultHoldDelay  = 300 * time.Millisecond
	DefaultHoldRepeat = 100 * time.Millisecond
)

// HeldKeys turns a stream of direction presses into held flags.
type HeldKeys struct {
	delay  time.Duration
	repeat time.Duration
	left   time.Time // Held until this instant; zero when released
	right  time.Time
}

// NewHeldKeys creates a tracker. Non-positive durations use the defaults.
func NewHeldKeys(delay, repeat time.Duration) *HeldKeys {
	if delay <= 0 {
		delay = DefaultHoldDelay
	}
	if repeat <= 0 {
		repeat = DefaultHoldRepeat
	}
	return &HeldKeys{delay: delay, repeat: repeat}
}

// Press records a direction press at now. Pressing one direction releases
// the other; ActionStop releases both.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		h.left = h.extend(h.left, now)
		h.right = time.Time{}
	case core.ActionRight:
		h.right = h.extend(h.right, now)
		h.left = time.Time{}
	case core.ActionStop:
		h.Release()
	}
}

// extend returns the new expiry for a direction pressed at now.
func (h *HeldKeys) extend(until, now time.Time) time.Time {
	if now.Before(until) {
		// Auto-repeat; never shorten an earlier, longer hold
		if next := now.Add(h.repeat); next.After(until) {
			return next
		}
		return until
	}
	return now.Add(h.delay)
}

// Release drops both directions.
func (h *HeldKeys) Release() {
	h.left = time.Time{}
	h.right = time.Time{}
}

// Apply sets the held directions on frame as of now.
func (h *HeldKeys) Apply(frame *core.InputFrame, now time.Time) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
		if h.Held(a, now) {
			frame.Set(a)
		}
	}
}

// Held reports whether a direction is held as of now.
func (h *HeldKeys) Held(a core.Action, now time.Time) bool {
	switch a {
	case core.ActionLeft:
		return now.Before(h.left)
	case core.ActionRight:
		return now.Before(h.right)
	}
	return false
}
