package device

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/holoplot/go-evdev"
)

const inputDir = "/dev/input"

// Lister enumerates input device nodes. It is a parameter everywhere a lookup
// happens so that tests never have to touch real hardware.
type Lister func() ([]evdev.InputPath, error)

// List enumerates the real /dev/input event nodes.
func List() ([]evdev.InputPath, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, fmt.Errorf("listing input devices: %w", err)
	}

	return paths, nil
}

// Match reports whether a device name matches the wanted substring,
// case-insensitively.
func Match(deviceName, wanted string) bool {
	return strings.Contains(strings.ToLower(deviceName), strings.ToLower(wanted))
}

// Find returns the path of the first device whose name matches wanted.
func Find(list Lister, wanted string) (string, error) {
	paths, err := list()
	if err != nil {
		return "", err
	}

	for _, p := range paths {
		if Match(p.Name, wanted) {
			return p.Path, nil
		}
	}

	return "", fmt.Errorf("no input device matching '%s'", wanted)
}

// WaitFor blocks until a device matching wanted shows up, watching the input
// directory for new nodes. Every create event triggers a full rescan instead
// of probing just the new node: the node can take a moment to accept ioctls
// after it appears, and a rescan is cheap.
func WaitFor(ctx context.Context, list Lister, wanted string) (string, error) {
	if path, err := Find(list, wanted); err == nil {
		return path, nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return "", fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(inputDir); err != nil {
		return "", fmt.Errorf("watching %s: %w", inputDir, err)
	}

	// The device may have shown up between the scan and the watch.
	if path, err := Find(list, wanted); err == nil {
		return path, nil
	}

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case event := <-watcher.Events:
			if !event.Has(fsnotify.Create) {
				continue
			}

			slog.Debug("New input node", "path", event.Name)

			if path, err := Find(list, wanted); err == nil {
				return path, nil
			}
		case err := <-watcher.Errors:
			return "", fmt.Errorf("watching %s: %w", inputDir, err)
		}
	}
}

// Open opens a device node for reading events.
func Open(path string) (*evdev.InputDevice, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	return dev, nil
}
