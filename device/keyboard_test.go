package device

import (
	"errors"
	"testing"
	"time"

	"github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedEvent struct {
	evType evdev.EvType
	code   evdev.EvCode
	value  int32
}

type fakeWriter struct {
	events []recordedEvent
	failAt int // fail on the n-th write, 0 means never
	err    error
}

func (w *fakeWriter) WriteOne(ev *evdev.InputEvent) error {
	if w.failAt > 0 && len(w.events)+1 == w.failAt {
		return w.err
	}

	w.events = append(w.events, recordedEvent{ev.Type, ev.Code, ev.Value})

	return nil
}

func newTestKeyboard(w *fakeWriter) (*Keyboard, *time.Duration) {
	var slept time.Duration

	return &Keyboard{out: w, sleep: func(d time.Duration) { slept += d }}, &slept
}

func TestSendChordOrdering(t *testing.T) {
	w := &fakeWriter{}
	k, slept := newTestKeyboard(w)

	err := k.SendChord([]evdev.EvCode{evdev.KEY_LEFTMETA, evdev.KEY_LEFTBRACE})
	require.NoError(t, err)

	// Presses in listed order, one sync, releases in reverse order, one sync.
	assert.Equal(t, []recordedEvent{
		{evdev.EV_KEY, evdev.KEY_LEFTMETA, 1},
		{evdev.EV_KEY, evdev.KEY_LEFTBRACE, 1},
		{evdev.EV_SYN, evdev.SYN_REPORT, 0},
		{evdev.EV_KEY, evdev.KEY_LEFTBRACE, 0},
		{evdev.EV_KEY, evdev.KEY_LEFTMETA, 0},
		{evdev.EV_SYN, evdev.SYN_REPORT, 0},
	}, w.events)

	assert.Equal(t, chordHold, *slept)
}

func TestSendChordSingleKey(t *testing.T) {
	w := &fakeWriter{}
	k, _ := newTestKeyboard(w)

	err := k.SendChord([]evdev.EvCode{evdev.KEY_LEFTMETA})
	require.NoError(t, err)

	assert.Equal(t, []recordedEvent{
		{evdev.EV_KEY, evdev.KEY_LEFTMETA, 1},
		{evdev.EV_SYN, evdev.SYN_REPORT, 0},
		{evdev.EV_KEY, evdev.KEY_LEFTMETA, 0},
		{evdev.EV_SYN, evdev.SYN_REPORT, 0},
	}, w.events)
}

func TestSendChordPropagatesWriteError(t *testing.T) {
	writeErr := errors.New("device gone")
	w := &fakeWriter{failAt: 2, err: writeErr}
	k, _ := newTestKeyboard(w)

	err := k.SendChord([]evdev.EvCode{evdev.KEY_LEFTMETA, evdev.KEY_LEFTBRACE})
	require.ErrorIs(t, err, writeErr)
}

func TestCloseWithoutDevice(t *testing.T) {
	k, _ := newTestKeyboard(&fakeWriter{})

	assert.NoError(t, k.Close())
}
