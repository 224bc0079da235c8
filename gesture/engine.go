package gesture

import (
	"time"

	"github.com/dasdy/swipe/model"
	"github.com/holoplot/go-evdev"
)

const (
	// Button arms gesture recognition while held. BTN_FORWARD is the thumb
	// button on the MX-style mice this was written for.
	Button = evdev.BTN_FORWARD

	// MotionThreshold is the accumulated displacement (device units, per axis)
	// beyond which a held button counts as a swipe rather than noise.
	MotionThreshold int32 = 50

	// TapTimeout separates a tap from a long press when no swipe happened.
	TapTimeout = 200 * time.Millisecond
)

// Engine turns the raw pointer event stream into gestures. It only reacts to
// the gesture button and to relative X/Y motion while that button is held;
// everything else leaves it untouched. All state lives here and is only ever
// mutated by the single goroutine driving HandleEvent.
type Engine struct {
	threshold  int32
	tapTimeout time.Duration
	now        func() time.Time

	held      bool
	heldSince time.Time
	dx, dy    int32
	crossed   bool
}

func NewEngine() *Engine {
	return &Engine{
		threshold:  MotionThreshold,
		tapTimeout: TapTimeout,
		now:        time.Now,
	}
}

// HandleEvent consumes one input event, in arrival order. It returns a
// gesture exactly once per press/release pair of the gesture button, and nil
// for every other event.
func (e *Engine) HandleEvent(ev *evdev.InputEvent) *model.Gesture {
	switch ev.Type {
	case evdev.EV_KEY:
		if ev.Code != Button {
			return nil
		}

		switch ev.Value {
		case 1:
			e.arm()
		case 0:
			return e.classify()
		}
	case evdev.EV_REL:
		if !e.held {
			// Ordinary pointer use, nothing to accumulate.
			return nil
		}

		switch ev.Code {
		case evdev.REL_X:
			e.dx += ev.Value
			if abs(e.dx) > e.threshold {
				e.crossed = true
			}
		case evdev.REL_Y:
			e.dy += ev.Value
			if abs(e.dy) > e.threshold {
				e.crossed = true
			}
		}
	}

	return nil
}

// arm enters the held state. A repeated press without an intervening release
// lands here too and just restarts the gesture.
func (e *Engine) arm() {
	e.held = true
	e.heldSince = e.now()
	e.reset()
}

// classify handles the release edge. The accumulated displacement decides
// between swipe and tap/long-press, the hold duration decides between tap and
// long press. A release without a prior press is not an error, it just resets.
func (e *Engine) classify() *model.Gesture {
	if !e.held {
		e.reset()

		return nil
	}

	e.held = false
	g := model.Gesture{
		Direction: model.DirectionNone,
		DX:        e.dx,
		DY:        e.dy,
		Duration:  e.now().Sub(e.heldSince),
	}

	switch {
	case e.crossed:
		g.Outcome = model.OutcomeSwipe
		g.Direction = direction(e.dx, e.dy)
	case g.Duration < e.tapTimeout:
		g.Outcome = model.OutcomeTap
	default:
		g.Outcome = model.OutcomeLongPress
	}

	e.reset()

	return &g
}

func (e *Engine) reset() {
	e.dx = 0
	e.dy = 0
	e.crossed = false
}

// direction picks the dominant axis by accumulated magnitude, a tie goes to
// the X axis. The sign of the winning axis selects the direction.
func direction(dx, dy int32) model.Direction {
	if abs(dx) >= abs(dy) {
		if dx > 0 {
			return model.DirectionRight
		}

		return model.DirectionLeft
	}

	if dy > 0 {
		return model.DirectionDown
	}

	return model.DirectionUp
}

// Chord maps a classified gesture to the key sequence to inject. Long presses
// are deliberately inert, and so are vertical swipes for now: they are
// recognized and recorded, but bound to nothing.
func Chord(g *model.Gesture) []evdev.EvCode {
	if g == nil {
		return nil
	}

	switch g.Outcome {
	case model.OutcomeTap:
		return []evdev.EvCode{evdev.KEY_LEFTMETA}
	case model.OutcomeSwipe:
		switch g.Direction {
		case model.DirectionRight:
			return []evdev.EvCode{evdev.KEY_LEFTMETA, evdev.KEY_LEFTBRACE}
		case model.DirectionLeft:
			return []evdev.EvCode{evdev.KEY_LEFTMETA, evdev.KEY_RIGHTBRACE}
		}
	}

	return nil
}

func abs(x int32) int32 {
	if x < 0 {
		return -x
	}

	return x
}
