package device

import (
	"fmt"
	"time"

	"github.com/holoplot/go-evdev"
)

const (
	keyboardName = "swipe-virtual-keyboard"

	// chordHold is how long all chord members stay down before release.
	// Downstream input stacks debounce, and only treat the chord as pressed
	// once every member was down at the same time for a little while.
	chordHold = 10 * time.Millisecond
)

// chordKeys is every key the virtual keyboard is allowed to emit. Wider than
// the current gesture table, so that binding a reserved direction later does
// not change the device's capabilities.
var chordKeys = []evdev.EvCode{
	evdev.KEY_LEFTMETA,
	evdev.KEY_LEFTBRACE,
	evdev.KEY_RIGHTBRACE,
	evdev.KEY_MUTE,
	evdev.KEY_LEFTALT,
	evdev.KEY_LEFT,
	evdev.KEY_RIGHT,
	evdev.KEY_F13,
	evdev.KEY_F14,
	evdev.KEY_VOLUMEDOWN,
	evdev.KEY_VOLUMEUP,
}

type eventWriter interface {
	WriteOne(ev *evdev.InputEvent) error
}

// Keyboard is the virtual uinput device chords are injected into. To other
// software it is indistinguishable from a real keyboard.
type Keyboard struct {
	dev   *evdev.InputDevice
	out   eventWriter
	sleep func(time.Duration)
}

// NewKeyboard registers the virtual keyboard with the kernel. Requires the
// uinput module and write access to /dev/uinput.
func NewKeyboard() (*Keyboard, error) {
	dev, err := evdev.CreateDevice(keyboardName, evdev.InputID{
		BusType: 0x03,
		Vendor:  0x1234,
		Product: 0x5678,
		Version: 1,
	}, map[evdev.EvType][]evdev.EvCode{
		evdev.EV_KEY: chordKeys,
	})
	if err != nil {
		return nil, fmt.Errorf("creating uinput keyboard (is the uinput module loaded, and can you write to /dev/uinput?): %w", err)
	}

	return &Keyboard{dev: dev, out: dev, sleep: time.Sleep}, nil
}

// SendChord presses keys in listed order, syncs, holds, then releases them in
// reverse order and syncs again. The press-sync-hold-release-sync ordering is
// a hard contract: consumers only recognize the chord once all member keys
// are down and a SYN_REPORT was observed.
func (k *Keyboard) SendChord(keys []evdev.EvCode) error {
	for _, key := range keys {
		if err := k.writeKey(key, 1); err != nil {
			return err
		}
	}

	if err := k.sync(); err != nil {
		return err
	}

	k.sleep(chordHold)

	for i := len(keys) - 1; i >= 0; i-- {
		if err := k.writeKey(keys[i], 0); err != nil {
			return err
		}
	}

	return k.sync()
}

func (k *Keyboard) writeKey(code evdev.EvCode, value int32) error {
	err := k.out.WriteOne(&evdev.InputEvent{Type: evdev.EV_KEY, Code: code, Value: value})
	if err != nil {
		return fmt.Errorf("writing key event: %w", err)
	}

	return nil
}

func (k *Keyboard) sync() error {
	err := k.out.WriteOne(&evdev.InputEvent{Type: evdev.EV_SYN, Code: evdev.SYN_REPORT, Value: 0})
	if err != nil {
		return fmt.Errorf("writing sync event: %w", err)
	}

	return nil
}

// Close unregisters the virtual keyboard.
func (k *Keyboard) Close() error {
	if k.dev == nil {
		return nil
	}

	if err := evdev.DestroyDevice(k.dev); err != nil {
		return fmt.Errorf("destroying uinput keyboard: %w", err)
	}

	return nil
}
