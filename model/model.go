package model

import (
	"fmt"
	"time"
)

// Outcome classifies one press/release pair of the gesture button.
type Outcome int

const (
	OutcomeTap Outcome = iota
	OutcomeSwipe
	OutcomeLongPress
)

func (o Outcome) String() string {
	switch o {
	case OutcomeTap:
		return "tap"
	case OutcomeSwipe:
		return "swipe"
	case OutcomeLongPress:
		return "long-press"
	}

	return fmt.Sprintf("outcome(%d)", int(o))
}

func ParseOutcome(s string) (Outcome, error) {
	switch s {
	case "tap":
		return OutcomeTap, nil
	case "swipe":
		return OutcomeSwipe, nil
	case "long-press":
		return OutcomeLongPress, nil
	}

	return 0, fmt.Errorf("unknown outcome: '%s'", s)
}

// Direction of a swipe. DirectionNone for outcomes that have no axis.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
	DirectionUp
	DirectionDown
)

func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "none"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	}

	return fmt.Sprintf("direction(%d)", int(d))
}

func ParseDirection(s string) (Direction, error) {
	switch s {
	case "none":
		return DirectionNone, nil
	case "left":
		return DirectionLeft, nil
	case "right":
		return DirectionRight, nil
	case "up":
		return DirectionUp, nil
	case "down":
		return DirectionDown, nil
	}

	return 0, fmt.Errorf("unknown direction: '%s'", s)
}

// Gesture is the result of one completed press/release pair: the
// classification plus the raw numbers it was derived from.
type Gesture struct {
	Outcome   Outcome
	Direction Direction
	DX        int32
	DY        int32
	Duration  time.Duration
}

type GestureWithTimestamp struct {
	Gesture
	Timestamp time.Time
}

// OutcomeCount is one row of aggregated history.
type OutcomeCount struct {
	Outcome   Outcome
	Direction Direction
	Count     int
}
