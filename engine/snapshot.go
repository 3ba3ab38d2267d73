package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/fruitbox/board"
	"github.com/lixenwraith/fruitbox/events"
	"github.com/lixenwraith/fruitbox/vmath"
)

// SelectionState is the visible part of the selection controller
type SelectionState struct {
	Active bool
	Rect   vmath.Rect
	Tiles  []int
	Sum    int
	Valid  bool
}

// Snapshot is a read-only copy of everything the presentation layer reflects
type Snapshot struct {
	Phase     Phase
	Reason    events.EndReason
	RoundID   uuid.UUID
	Score     int
	Total     int
	Remaining float64 // Seconds
	Fraction  float64 // Gauge, [0,1]

	Bounds vmath.Rect
	Tiles  []board.Tile

	Selection SelectionState
	Result    *events.RoundEndedPayload
}

// Snapshot copies the current game state
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:     g.phase,
		Reason:    g.reason,
		RoundID:   g.roundID,
		Score:     g.score,
		Total:     g.board.Total(),
		Remaining: g.RemainingSeconds(),
		Fraction:  g.GaugeFraction(),
		Bounds:    g.board.Bounds(),
		Tiles:     g.board.Tiles(),
	}

	if g.sel.Dragging() {
		snap.Selection = SelectionState{
			Active: true,
			Rect:   g.sel.Rect(),
			Tiles:  g.sel.Enclosed(),
			Sum:    g.sel.Sum(),
			Valid:  g.sel.Valid(),
		}
	}

	if g.result != nil {
		result := *g.result
		snap.Result = &result
	}
	return snap
}
