package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

var t0 = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func TestHeldKeysExpireWithoutRepeat(t *testing.T) {
	h := NewHeldKeys(ms(300), ms(100))
	h.Press(core.ActionRight, t0)

	tests := []struct {
		at   time.Duration
		held bool
	}{
		{0, true},
		{ms(299), true},
		{ms(300), false},
		{ms(1000), false},
	}
	for _, tt := range tests {
		if got := h.Held(core.ActionRight, t0.Add(tt.at)); got != tt.held {
			t.Errorf("Held(right, +%v) = %v, expected %v", tt.at, got, tt.held)
		}
	}
}

func TestHeldKeysRepeatExtends(t *testing.T) {
	h := NewHeldKeys(ms(300), ms(100))
	h.Press(core.ActionLeft, t0)

	// Repeats every 50ms after the initial delay keep the key held
	for at := ms(250); at <= ms(1000); at += ms(50) {
		h.Press(core.ActionLeft, t0.Add(at))
		if !h.Held(core.ActionLeft, t0.Add(at+ms(60))) {
			t.Fatalf("left released between repeats at +%v", at)
		}
	}
	if !h.Held(core.ActionLeft, t0.Add(ms(1099))) {
		t.Error("left should stay held for the repeat window after the last repeat")
	}
	if h.Held(core.ActionLeft, t0.Add(ms(1100))) {
		t.Error("left should release once repeats stop")
	}
}

func TestHeldKeysEarlyRepeatKeepsInitialDelay(t *testing.T) {
	h := NewHeldKeys(ms(300), ms(100))
	h.Press(core.ActionRight, t0)
	h.Press(core.ActionRight, t0.Add(ms(10)))

	if !h.Held(core.ActionRight, t0.Add(ms(250))) {
		t.Error("an early repeat must not shorten the initial hold")
	}
}

func TestHeldKeysOppositeAndStop(t *testing.T) {
	h := NewHeldKeys(0, 0)
	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionRight, t0.Add(ms(10)))

	now := t0.Add(ms(20))
	if h.Held(core.ActionLeft, now) {
		t.Error("pressing right should release left")
	}
	if !h.Held(core.ActionRight, now) {
		t.Error("right should be held")
	}

	h.Press(core.ActionStop, now)
	if h.Held(core.ActionLeft, now) || h.Held(core.ActionRight, now) {
		t.Error("stop should release both directions")
	}
}

func TestHeldKeysApply(t *testing.T) {
	h := NewHeldKeys(0, 0)
	h.Press(core.ActionLeft, t0)

	frame := core.NewInputFrame()
	frame.Set(core.ActionPause)
	h.Apply(&frame, t0.Add(ms(50)))
	if !frame.Has(core.ActionLeft) || frame.Has(core.ActionRight) || !frame.Has(core.ActionPause) {
		t.Errorf("unexpected frame %v", frame.Actions)
	}

	late := core.NewInputFrame()
	h.Apply(&late, t0.Add(DefaultHoldDelay))
	if late.Has(core.ActionLeft) {
		t.Error("expired key should not be applied")
	}
}
