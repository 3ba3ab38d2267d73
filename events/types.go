package events

import (
	"time"

	"github.com/lixenwraith/fruitbox/vmath"
)

// EventType represents the type of an input event fed to the game
type EventType int

const (
	// EventStart requests a new round from the start screen
	// Trigger: start button, 's' / Enter | Payload: none
	EventStart EventType = iota

	// EventRestart requests a new round from the end screen
	// Trigger: restart button, 'r' | Payload: none
	EventRestart

	// EventGestureStart begins a drag (pointer-down / touch-start)
	// Trigger: input translator | Point: board-local press position
	EventGestureStart

	// EventGestureMove updates a drag (pointer-move / touch-move)
	// Trigger: input translator | Point: board-local current position, unclamped
	EventGestureMove

	// EventGestureEnd finishes a drag (pointer-up / touch-end)
	// Trigger: input translator | Point: ignored, the last move decides the rectangle
	EventGestureEnd

	// EventTick advances the countdown by one step
	// Trigger: round ticker channel | Payload: none
	EventTick
)

var eventTypeNames = map[EventType]string{
	EventStart:        "Start",
	EventRestart:      "Restart",
	EventGestureStart: "GestureStart",
	EventGestureMove:  "GestureMove",
	EventGestureEnd:   "GestureEnd",
	EventTick:         "Tick",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Event is a single input to the game dispatcher
type Event struct {
	Type  EventType
	Point vmath.Point
	Time  time.Time
}

// EffectType represents a side effect produced by dispatching an event
type EffectType int

const (
	// EffectRoundStarted signals a fresh board and a running countdown
	// Payload: *RoundStartedPayload
	EffectRoundStarted EffectType = iota

	// EffectSelectionChanged signals a new live rectangle or validity
	// Payload: *SelectionPayload
	EffectSelectionChanged

	// EffectSelectionHidden signals the rectangle disappeared (gesture end or cancel)
	// Payload: nil
	EffectSelectionHidden

	// EffectTilesCleared signals a valid clear
	// Payload: *ClearPayload
	EffectTilesCleared

	// EffectSelectionRejected signals a finished gesture that cleared nothing
	// Payload: *SelectionPayload
	EffectSelectionRejected

	// EffectGaugeChanged signals a countdown step
	// Payload: *GaugePayload
	EffectGaugeChanged

	// EffectTimerStopped signals the round ticker was stopped
	// Payload: nil
	EffectTimerStopped

	// EffectRoundEnded signals the terminal transition of a round, emitted once per round
	// Payload: *RoundEndedPayload
	EffectRoundEnded
)

var effectTypeNames = map[EffectType]string{
	EffectRoundStarted:      "RoundStarted",
	EffectSelectionChanged:  "SelectionChanged",
	EffectSelectionHidden:   "SelectionHidden",
	EffectTilesCleared:      "TilesCleared",
	EffectSelectionRejected: "SelectionRejected",
	EffectGaugeChanged:      "GaugeChanged",
	EffectTimerStopped:      "TimerStopped",
	EffectRoundEnded:        "RoundEnded",
}

func (t EffectType) String() string {
	if name, ok := effectTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Effect is a side effect description returned by the dispatcher
type Effect struct {
	Type    EffectType
	Payload any
}
