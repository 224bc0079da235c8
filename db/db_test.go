package db_test

import (
	"testing"
	"time"

	"github.com/dasdy/swipe/db"
	"github.com/dasdy/swipe/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rightSwipe() *model.Gesture {
	return &model.Gesture{
		Outcome:   model.OutcomeSwipe,
		Direction: model.DirectionRight,
		DX:        72,
		DY:        -3,
		Duration:  130 * time.Millisecond,
	}
}

func tap() *model.Gesture {
	return &model.Gesture{
		Outcome:   model.OutcomeTap,
		Direction: model.DirectionNone,
		Duration:  40 * time.Millisecond,
	}
}

func TestStoreAndTotals(t *testing.T) {
	storage, err := db.ConnectDB(":memory:")
	require.NoError(t, err)

	defer storage.Close()

	totals, err := storage.Totals()
	require.NoError(t, err)
	assert.Empty(t, totals)

	for range 3 {
		require.NoError(t, storage.Store(rightSwipe()))
	}

	require.NoError(t, storage.Store(tap()))

	totals, err = storage.Totals()
	require.NoError(t, err)

	assert.Equal(t, []model.OutcomeCount{
		{Outcome: model.OutcomeSwipe, Direction: model.DirectionRight, Count: 3},
		{Outcome: model.OutcomeTap, Direction: model.DirectionNone, Count: 1},
	}, totals)
}

func TestAllIteratorRoundTrip(t *testing.T) {
	storage, err := db.ConnectDB(":memory:")
	require.NoError(t, err)

	defer storage.Close()

	ts := time.Date(2025, 2, 1, 9, 30, 0, 0, time.UTC)
	require.NoError(t, storage.StoreAt(rightSwipe(), ts))
	require.NoError(t, storage.StoreAt(tap(), ts.Add(time.Minute)))

	items, err := storage.AllIterator()
	require.NoError(t, err)

	collected := make([]model.GestureWithTimestamp, 0)
	for g := range items {
		collected = append(collected, g)
	}

	require.Len(t, collected, 2)

	assert.Equal(t, *rightSwipe(), collected[0].Gesture)
	assert.Equal(t, ts, collected[0].Timestamp.UTC())

	assert.Equal(t, *tap(), collected[1].Gesture)
	assert.Equal(t, ts.Add(time.Minute), collected[1].Timestamp.UTC())
}

func TestAllIteratorEarlyStop(t *testing.T) {
	storage, err := db.ConnectDB(":memory:")
	require.NoError(t, err)

	defer storage.Close()

	for range 10 {
		require.NoError(t, storage.Store(tap()))
	}

	items, err := storage.AllIterator()
	require.NoError(t, err)

	seen := 0
	for range items {
		seen++
		if seen == 3 {
			break
		}
	}

	assert.Equal(t, 3, seen)
}

func TestMerge(t *testing.T) {
	first, err := db.ConnectDB(":memory:")
	require.NoError(t, err)

	defer first.Close()

	second, err := db.ConnectDB(":memory:")
	require.NoError(t, err)

	defer second.Close()

	ts := time.Date(2025, 2, 1, 9, 30, 0, 0, time.UTC)

	require.NoError(t, first.StoreAt(rightSwipe(), ts))
	require.NoError(t, first.StoreAt(tap(), ts.Add(time.Minute)))
	require.NoError(t, second.StoreAt(tap(), ts.Add(2*time.Minute)))

	output, err := db.ConnectDB(":memory:")
	require.NoError(t, err)

	defer output.Close()

	require.NoError(t, db.Merge([]db.Storage{first, second}, output))

	totals, err := output.Totals()
	require.NoError(t, err)

	assert.ElementsMatch(t, []model.OutcomeCount{
		{Outcome: model.OutcomeTap, Direction: model.DirectionNone, Count: 2},
		{Outcome: model.OutcomeSwipe, Direction: model.DirectionRight, Count: 1},
	}, totals)

	// Original timestamps survive the merge.
	items, err := output.AllIterator()
	require.NoError(t, err)

	timestamps := make([]time.Time, 0)
	for g := range items {
		timestamps = append(timestamps, g.Timestamp.UTC())
	}

	assert.Equal(t, []time.Time{ts, ts.Add(time.Minute), ts.Add(2 * time.Minute)}, timestamps)
}
