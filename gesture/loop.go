package gesture

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dasdy/swipe/db"
	"github.com/dasdy/swipe/logging"
	"github.com/holoplot/go-evdev"
)

// Source yields input events one at a time, blocking until the next one
// arrives.
type Source interface {
	ReadOne() (*evdev.InputEvent, error)
}

// Sink injects one synthetic chord into the system.
type Sink interface {
	SendChord(keys []evdev.EvCode) error
}

// Loop pulls events from src in arrival order, feeds them through the engine
// and injects the resulting chords. It returns nil once ctx is cancelled and
// an error if the source dies or an injection fails. A failed history write
// only gets logged: losing a statistics row is not worth dropping a gesture
// over.
func Loop(ctx context.Context, src Source, sink Sink, storage db.Storage, engine *Engine, verbose bool) error {
	lctx := logging.PackageCtx("gesture")

	events := make(chan *evdev.InputEvent)
	readErr := make(chan error, 1)

	go func() {
		for {
			ev, err := src.ReadOne()
			if err != nil {
				readErr <- err

				return
			}

			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(lctx, "Shutdown requested, bailing out")

			return nil
		case err := <-readErr:
			return fmt.Errorf("reading input events: %w", err)
		case ev := <-events:
			g := engine.HandleEvent(ev)
			if g == nil {
				continue
			}

			if verbose {
				slog.InfoContext(lctx, "Gesture",
					"outcome", g.Outcome,
					"direction", g.Direction,
					"dx", g.DX,
					"dy", g.DY,
					"duration", g.Duration)
			}

			if storage != nil {
				if err := storage.Store(g); err != nil {
					slog.ErrorContext(lctx, "Could not store gesture", "error", err)
				}
			}

			if keys := Chord(g); len(keys) > 0 {
				if err := sink.SendChord(keys); err != nil {
					return fmt.Errorf("injecting chord: %w", err)
				}
			}
		}
	}
}
