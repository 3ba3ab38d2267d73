package render

import (
	"math"

	"github.com/lixenwraith/fruitbox/constants"
	"github.com/lixenwraith/fruitbox/vmath"
)

// Area is a rectangle of screen cells
type Area struct {
	X, Y          int
	Width, Height int
}

// Contains checks if the screen cell (x, y) lies inside the area
func (a Area) Contains(x, y int) bool {
	return x >= a.X && x < a.X+a.Width && y >= a.Y && y < a.Y+a.Height
}

// Layout places the board on the screen and maps between screen cells and board-local points
type Layout struct {
	ScreenWidth, ScreenHeight int

	// Board is the play area in screen cells, excluding its frame
	Board Area

	// Button is the clickable start/restart button on the overlay
	Button Area
}

// NewLayout centres a board of the given size below the HUD
func NewLayout(screenW, screenH int, board vmath.Rect, buttonWidth int) Layout {
	bw := int(board.Width())
	bh := int(board.Height())

	l := Layout{ScreenWidth: screenW, ScreenHeight: screenH}
	l.Board = Area{
		X:      max((screenW-bw)/2, 1),
		Y:      constants.HUDHeight + 1 + max((screenH-MinHeight(board))/2, 0),
		Width:  bw,
		Height: bh,
	}
	l.Button = Area{
		X:      l.Board.X + (bw-buttonWidth)/2,
		Y:      l.Board.Y + bh/2 + 2,
		Width:  buttonWidth,
		Height: 1,
	}
	return l
}

// MinWidth is the narrowest screen that fits the board and its frame
func MinWidth(board vmath.Rect) int {
	return int(board.Width()) + 2
}

// MinHeight is the shortest screen that fits HUD, framed board and footer
func MinHeight(board vmath.Rect) int {
	return constants.HUDHeight + int(board.Height()) + 2 + constants.FooterHeight
}

// Fits reports whether the whole board is visible
func (l Layout) Fits() bool {
	return l.ScreenWidth >= l.Board.Width+2 &&
		l.ScreenHeight >= l.Board.Y+l.Board.Height+1+constants.FooterHeight
}

// ToBoard maps a screen cell to the board-local point at the cell's center
// The result may lie outside the board; callers clamp or reject
func (l Layout) ToBoard(x, y int) vmath.Point {
	return vmath.Point{
		X: float64(x-l.Board.X) + 0.5,
		Y: float64(y-l.Board.Y) + 0.5,
	}
}

// ToScreen maps a board-local point to the screen cell containing it
func (l Layout) ToScreen(p vmath.Point) (int, int) {
	return l.Board.X + int(math.Floor(p.X)), l.Board.Y + int(math.Floor(p.Y))
}

