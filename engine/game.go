package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/lixenwraith/fruitbox/board"
	"github.com/lixenwraith/fruitbox/constants"
	"github.com/lixenwraith/fruitbox/events"
	"github.com/lixenwraith/fruitbox/selection"
	"github.com/lixenwraith/fruitbox/vmath"
)

// Config is the board layout of a game
// Grid dimensions belong to the presentation layout, not to the round rules
type Config struct {
	Columns int
	Rows    int
	Cell    vmath.Size
}

// Game is the round controller: board, selection and countdown in one context
// All methods must be called from a single goroutine (the main loop)
type Game struct {
	clock clockwork.Clock
	rng   board.Source

	board *board.Board
	sel   *selection.Controller

	phase     Phase
	reason    events.EndReason
	score     int
	remaining int // Countdown steps left
	roundID   uuid.UUID
	result    *events.RoundEndedPayload

	// Active round ticker, nil outside Playing
	ticker clockwork.Ticker
}

// NewGame creates a game in PhaseNotStarted with an empty board
func NewGame(cfg Config, clock clockwork.Clock, rng board.Source) *Game {
	return &Game{
		clock:     clock,
		rng:       rng,
		board:     board.New(cfg.Columns, cfg.Rows, cfg.Cell),
		sel:       selection.New(),
		phase:     PhaseNotStarted,
		remaining: constants.RoundTicks,
	}
}

// Dispatch applies one event and returns the side effects it produced
// Events that do not apply to the current state yield no effects
func (g *Game) Dispatch(ev events.Event) []events.Effect {
	switch ev.Type {
	case events.EventStart:
		if g.phase != PhaseNotStarted {
			return nil
		}
		return g.startRound()
	case events.EventRestart:
		if g.phase != PhaseEnded {
			return nil
		}
		return g.startRound()
	case events.EventGestureStart:
		return g.gestureStart(ev.Point)
	case events.EventGestureMove:
		return g.gestureMove(ev.Point)
	case events.EventGestureEnd:
		return g.gestureEnd()
	case events.EventTick:
		return g.tick()
	default:
		return nil
	}
}

// Ticks returns the channel of the running round ticker
// Returns nil outside Playing, which blocks forever in a select
func (g *Game) Ticks() <-chan time.Time {
	if g.ticker == nil {
		return nil
	}
	return g.ticker.Chan()
}

// Stop releases the round ticker; used on shutdown
func (g *Game) Stop() {
	g.stopTicker()
}

func (g *Game) startRound() []events.Effect {
	var effects []events.Effect
	effects = append(effects, g.stopTicker()...)
	effects = append(effects, g.cancelGesture()...)

	g.board.Reset(g.rng)
	g.score = 0
	g.remaining = constants.RoundTicks
	g.reason = events.ReasonNone
	g.result = nil
	g.roundID = uuid.New()
	g.phase = PhasePlaying
	g.ticker = g.clock.NewTicker(constants.TickInterval)

	return append(effects, events.Effect{
		Type: events.EffectRoundStarted,
		Payload: &events.RoundStartedPayload{
			RoundID: g.roundID,
			Tiles:   g.board.Total(),
			Time:    constants.RoundDuration,
		},
	})
}

func (g *Game) gestureStart(p vmath.Point) []events.Effect {
	if g.phase != PhasePlaying {
		return nil
	}
	if !g.sel.Begin(p, g.board) {
		return nil
	}
	return []events.Effect{g.selectionEffect(events.EffectSelectionChanged, g.sel.Enclosed())}
}

func (g *Game) gestureMove(p vmath.Point) []events.Effect {
	if g.phase != PhasePlaying || !g.sel.Dragging() {
		return nil
	}
	g.sel.Move(p, g.board)
	return []events.Effect{g.selectionEffect(events.EffectSelectionChanged, g.sel.Enclosed())}
}

func (g *Game) gestureEnd() []events.Effect {
	if g.phase != PhasePlaying || !g.sel.Dragging() {
		return nil
	}

	rect := g.sel.Rect()
	ids, _ := g.sel.End(g.board)
	sum := g.board.Sum(ids)
	effects := []events.Effect{{Type: events.EffectSelectionHidden}}

	if !selection.IsValid(len(ids), sum) {
		return append(effects, events.Effect{
			Type:    events.EffectSelectionRejected,
			Payload: &events.SelectionPayload{Rect: rect, Tiles: ids, Sum: sum},
		})
	}

	gained := g.board.Remove(ids)
	g.score += gained
	effects = append(effects, events.Effect{
		Type: events.EffectTilesCleared,
		Payload: &events.ClearPayload{
			RoundID: g.roundID,
			Tiles:   ids,
			Gained:  gained,
			Score:   g.score,
		},
	})

	if g.score >= g.board.Total() {
		effects = append(effects, g.endRound(events.ReasonCleared)...)
	}
	return effects
}

func (g *Game) tick() []events.Effect {
	if g.phase != PhasePlaying {
		return nil
	}

	if g.remaining > 0 {
		g.remaining--
	}
	effects := []events.Effect{{
		Type: events.EffectGaugeChanged,
		Payload: &events.GaugePayload{
			Remaining: g.RemainingSeconds(),
			Fraction:  g.GaugeFraction(),
		},
	}}

	if g.remaining <= 0 {
		effects = append(effects, g.endRound(events.ReasonTimeout)...)
	}
	return effects
}

// endRound performs the single terminal transition of a round
func (g *Game) endRound(reason events.EndReason) []events.Effect {
	if !CanTransition(g.phase, PhaseEnded) {
		return nil
	}

	g.phase = PhaseEnded
	g.reason = reason

	var effects []events.Effect
	effects = append(effects, g.stopTicker()...)
	effects = append(effects, g.cancelGesture()...)

	result := &events.RoundEndedPayload{
		RoundID: g.roundID,
		Reason:  reason,
		Score:   g.score,
		Elapsed: g.ElapsedSeconds(),
	}
	switch reason {
	case events.ReasonCleared:
		result.Title = constants.TitleCleared
		result.Message = fmt.Sprintf(constants.MessageCleared, result.Elapsed)
	default:
		result.Title = constants.TitleTimeout
		result.Message = fmt.Sprintf(constants.MessageScore, g.score)
	}
	g.result = result

	return append(effects, events.Effect{Type: events.EffectRoundEnded, Payload: result})
}

func (g *Game) stopTicker() []events.Effect {
	if g.ticker == nil {
		return nil
	}
	g.ticker.Stop()
	g.ticker = nil
	return []events.Effect{{Type: events.EffectTimerStopped}}
}

func (g *Game) cancelGesture() []events.Effect {
	if !g.sel.Dragging() {
		return nil
	}
	g.sel.Cancel()
	return []events.Effect{{Type: events.EffectSelectionHidden}}
}

func (g *Game) selectionEffect(t events.EffectType, ids []int) events.Effect {
	return events.Effect{
		Type: t,
		Payload: &events.SelectionPayload{
			Rect:  g.sel.Rect(),
			Tiles: ids,
			Sum:   g.sel.Sum(),
			Valid: g.sel.Valid(),
		},
	}
}

func (g *Game) Phase() Phase             { return g.phase }
func (g *Game) Reason() events.EndReason { return g.reason }
func (g *Game) Score() int               { return g.score }
func (g *Game) RoundID() uuid.UUID       { return g.roundID }
func (g *Game) Board() *board.Board      { return g.board }
func (g *Game) Active() bool             { return g.phase == PhasePlaying }

// Result returns the outcome of the last finished round, nil while none
func (g *Game) Result() *events.RoundEndedPayload { return g.result }

// RemainingSeconds returns the countdown in seconds, never negative
func (g *Game) RemainingSeconds() float64 {
	return float64(max(g.remaining, 0)) / float64(constants.TicksPerSecond)
}

// ElapsedSeconds returns the round duration minus the remaining time
func (g *Game) ElapsedSeconds() float64 {
	return float64(constants.RoundTicks-max(g.remaining, 0)) / float64(constants.TicksPerSecond)
}

// GaugeFraction returns remaining/total clamped to [0,1]
func (g *Game) GaugeFraction() float64 {
	return vmath.Clamp(float64(g.remaining)/float64(constants.RoundTicks), 0, 1)
}
