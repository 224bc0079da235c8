package device_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dasdy/swipe/device"
	"github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeLister(paths ...evdev.InputPath) device.Lister {
	return func() ([]evdev.InputPath, error) {
		return paths, nil
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name       string
		deviceName string
		wanted     string
		want       bool
	}{
		{"exact", "Logitech USB Receiver Mouse", "Logitech USB Receiver Mouse", true},
		{"substring", "Logitech USB Receiver Mouse", "Receiver", true},
		{"case insensitive", "Logitech USB Receiver Mouse", "logitech usb", true},
		{"no match", "AT Translated Set 2 keyboard", "Logitech", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, device.Match(tt.deviceName, tt.wanted))
		})
	}
}

func TestFind(t *testing.T) {
	list := fakeLister(
		evdev.InputPath{Path: "/dev/input/event2", Name: "AT Translated Set 2 keyboard"},
		evdev.InputPath{Path: "/dev/input/event5", Name: "Logitech USB Receiver Mouse"},
		evdev.InputPath{Path: "/dev/input/event7", Name: "Logitech USB Receiver Mouse (alt)"},
	)

	path, err := device.Find(list, "receiver mouse")
	require.NoError(t, err)
	// First match wins.
	assert.Equal(t, "/dev/input/event5", path)
}

func TestFindNoMatch(t *testing.T) {
	list := fakeLister(
		evdev.InputPath{Path: "/dev/input/event2", Name: "AT Translated Set 2 keyboard"},
	)

	_, err := device.Find(list, "Logitech")
	assert.Error(t, err)
}

func TestFindListerError(t *testing.T) {
	listErr := errors.New("no permission")
	list := func() ([]evdev.InputPath, error) { return nil, listErr }

	_, err := device.Find(device.Lister(list), "Logitech")
	require.ErrorIs(t, err, listErr)
}

func TestWaitForReturnsImmediatelyWhenPresent(t *testing.T) {
	list := fakeLister(
		evdev.InputPath{Path: "/dev/input/event5", Name: "Logitech USB Receiver Mouse"},
	)

	path, err := device.WaitFor(context.Background(), list, "Logitech")
	require.NoError(t, err)
	assert.Equal(t, "/dev/input/event5", path)
}
