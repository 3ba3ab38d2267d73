package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fruitbox/engine"
	"github.com/lixenwraith/fruitbox/events"
	"github.com/lixenwraith/fruitbox/render"
)

// Machine turns tcell events into game intents
// It tracks the primary button so press, drag and release become one gesture
type Machine struct {
	pressed bool
}

// NewMachine creates an input machine with no button held
func NewMachine() *Machine {
	return &Machine{}
}

// Process translates a terminal event using the current layout and round phase
// Returns nil for events the game does not care about
func (m *Machine) Process(ev tcell.Event, l render.Layout, phase engine.Phase) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev, phase)
	case *tcell.EventMouse:
		return m.processMouse(ev, l, phase)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey, phase engine.Phase) *Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return &Intent{Type: IntentQuit}
	case tcell.KeyEnter:
		return overlayAction(phase, ev)
	case tcell.KeyRune:
	default:
		return nil
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return &Intent{Type: IntentQuit}
	case 's', 'S':
		return dispatch(events.EventStart, ev)
	case 'r', 'R':
		return dispatch(events.EventRestart, ev)
	case ' ':
		return overlayAction(phase, ev)
	}
	return nil
}

// processMouse maps the primary button to gestures on the board and clicks on the overlay button
// Touch terminals deliver touches as primary-button events, so they take the same path
func (m *Machine) processMouse(ev *tcell.EventMouse, l render.Layout, phase engine.Phase) *Intent {
	x, y := ev.Position()
	held := ev.Buttons()&tcell.Button1 != 0

	switch {
	case held && !m.pressed:
		m.pressed = true
		if phase != engine.PhasePlaying {
			if l.Button.Contains(x, y) {
				return overlayAction(phase, ev)
			}
			return nil
		}
		return &Intent{Type: IntentDispatch, Event: events.Event{
			Type:  events.EventGestureStart,
			Point: l.ToBoard(x, y),
			Time:  ev.When(),
		}}

	case held && m.pressed:
		return &Intent{Type: IntentDispatch, Event: events.Event{
			Type:  events.EventGestureMove,
			Point: l.ToBoard(x, y),
			Time:  ev.When(),
		}}

	case !held && m.pressed:
		m.pressed = false
		return &Intent{Type: IntentDispatch, Event: events.Event{
			Type:  events.EventGestureEnd,
			Point: l.ToBoard(x, y),
			Time:  ev.When(),
		}}
	}
	return nil
}

// overlayAction is the start or restart command, whichever overlay is showing
func overlayAction(phase engine.Phase, ev tcell.Event) *Intent {
	switch phase {
	case engine.PhaseNotStarted:
		return dispatch(events.EventStart, ev)
	case engine.PhaseEnded:
		return dispatch(events.EventRestart, ev)
	}
	return nil
}

func dispatch(t events.EventType, ev tcell.Event) *Intent {
	return &Intent{Type: IntentDispatch, Event: events.Event{Type: t, Time: ev.When()}}
}
