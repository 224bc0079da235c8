package db

import (
	"iter"
	"time"

	"github.com/dasdy/swipe/model"
)

// Storage persists classified gestures and serves them back for the stats
// interface and for merging history files.
type Storage interface {
	Store(g *model.Gesture) error
	StoreAt(g *model.Gesture, ts time.Time) error
	Totals() ([]model.OutcomeCount, error)
	AllIterator() (iter.Seq[model.GestureWithTimestamp], error)
	Close()
}
