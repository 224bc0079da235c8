package routes_test

import (
	"iter"
	"time"

	"github.com/dasdy/swipe/model"
)

// SimpleStorageMock is a simple manual mock implementation of the Storage interface.
type SimpleStorageMock struct {
	ReturnTotals  []model.OutcomeCount
	ReturnHistory []model.GestureWithTimestamp
	ReturnError   error
	CallCount     int
}

func (m *SimpleStorageMock) Totals() ([]model.OutcomeCount, error) {
	m.CallCount++

	return m.ReturnTotals, m.ReturnError
}

func (m *SimpleStorageMock) AllIterator() (iter.Seq[model.GestureWithTimestamp], error) {
	m.CallCount++

	if m.ReturnError != nil {
		return nil, m.ReturnError
	}

	return func(yield func(model.GestureWithTimestamp) bool) {
		for _, g := range m.ReturnHistory {
			if !yield(g) {
				return
			}
		}
	}, nil
}

func (m *SimpleStorageMock) Store(_ *model.Gesture) error { return nil }

func (m *SimpleStorageMock) StoreAt(_ *model.Gesture, _ time.Time) error { return nil }

func (m *SimpleStorageMock) Close() {}
