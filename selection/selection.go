// Package selection tracks the drag gesture that draws the selection rectangle
package selection

import (
	"github.com/lixenwraith/fruitbox/board"
	"github.com/lixenwraith/fruitbox/constants"
	"github.com/lixenwraith/fruitbox/vmath"
)

// State is the gesture state of the controller
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Dragging:
		return "Dragging"
	default:
		return "Unknown"
	}
}

// Controller is the Idle/Dragging machine for one board
// The enclosed set is recomputed on every move so the live highlight and the
// final hand-off always agree
type Controller struct {
	state   State
	origin  vmath.Point
	current vmath.Point
	rect    vmath.Rect

	enclosed []int
	sum      int
}

// New returns an idle controller
func New() *Controller {
	return &Controller{}
}

// Begin starts a drag at p
// Returns false when already dragging or when p lies outside the board
func (c *Controller) Begin(p vmath.Point, b *board.Board) bool {
	if c.state == Dragging || !b.Bounds().Contains(p) {
		return false
	}

	c.state = Dragging
	c.origin = p
	c.current = p
	c.rect = vmath.RectFromPoints(p, p)
	c.enclosed = nil
	c.sum = 0
	return true
}

// Move updates the rectangle to span the origin and p clamped to the board
func (c *Controller) Move(p vmath.Point, b *board.Board) bool {
	if c.state != Dragging {
		return false
	}

	c.current = b.Bounds().Clamp(p)
	c.rect = vmath.RectFromPoints(c.origin, c.current)
	c.enclosed = Enclosed(c.rect, b.Active())
	c.sum = b.Sum(c.enclosed)
	return true
}

// End finishes the drag and returns the tiles enclosed by the last rectangle
// The second result is false when no drag was in progress
func (c *Controller) End(b *board.Board) ([]int, bool) {
	if c.state != Dragging {
		return nil, false
	}

	ids := Enclosed(c.rect, b.Active())
	c.Cancel()
	return ids, true
}

// Cancel drops any drag in progress without producing a selection
func (c *Controller) Cancel() {
	c.state = Idle
	c.rect = vmath.Rect{}
	c.enclosed = nil
	c.sum = 0
}

func (c *Controller) Dragging() bool   { return c.state == Dragging }
func (c *Controller) Rect() vmath.Rect { return c.rect }

// Enclosed returns the IDs of the tiles currently under the rectangle
func (c *Controller) Enclosed() []int {
	out := make([]int, len(c.enclosed))
	copy(out, c.enclosed)
	return out
}

// Sum returns the value total of the enclosed tiles
func (c *Controller) Sum() int { return c.sum }

// Valid reports whether ending the drag now would clear tiles
func (c *Controller) Valid() bool {
	return IsValid(len(c.enclosed), c.sum)
}

// IsValid is the clear rule: a non-empty set whose values hit the target
func IsValid(count, sum int) bool {
	return count > 0 && sum == constants.TargetSum
}

// Enclosed returns the IDs of tiles whose centers lie strictly inside r
func Enclosed(r vmath.Rect, tiles []board.Tile) []int {
	if r.Empty() {
		return nil
	}

	var ids []int
	for _, t := range tiles {
		if r.ContainsStrict(t.Center()) {
			ids = append(ids, t.ID)
		}
	}
	return ids
}
