package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/fruitbox/vmath"
)

// EndReason is why a round reached its terminal state
type EndReason int

const (
	ReasonNone EndReason = iota
	ReasonTimeout
	ReasonCleared
)

func (r EndReason) String() string {
	switch r {
	case ReasonTimeout:
		return "Timeout"
	case ReasonCleared:
		return "Cleared"
	default:
		return "None"
	}
}

// RoundStartedPayload describes a freshly generated round
type RoundStartedPayload struct {
	RoundID uuid.UUID
	Tiles   int
	Time    time.Duration
}

// SelectionPayload describes the live or finished selection
type SelectionPayload struct {
	Rect  vmath.Rect
	Tiles []int
	Sum   int
	Valid bool
}

// ClearPayload describes a valid clear
type ClearPayload struct {
	RoundID uuid.UUID
	Tiles   []int
	Gained  int
	Score   int
}

// GaugePayload carries the countdown after a tick
type GaugePayload struct {
	Remaining float64 // Seconds
	Fraction  float64 // [0,1]
}

// RoundEndedPayload describes the terminal transition of a round
type RoundEndedPayload struct {
	RoundID uuid.UUID
	Reason  EndReason
	Score   int
	Elapsed float64 // Seconds, RoundDuration minus remaining
	Title   string
	Message string
}
