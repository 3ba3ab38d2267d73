package input

import "github.com/lixenwraith/fruitbox/events"

// IntentType discriminates what the main loop should do with a terminal event
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit     // q, Esc, Ctrl+C
	IntentResize   // Terminal resize event
	IntentDispatch // Feed Event to the game
)

// Intent is the result of translating one terminal event
type Intent struct {
	Type  IntentType
	Event events.Event
}
