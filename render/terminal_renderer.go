package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fruitbox/constants"
)

// TerminalRenderer draws a View onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	base   tcell.Style
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		base:   tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText),
	}
}

// Draw renders one full frame and shows it
func (r *TerminalRenderer) Draw(v View, l Layout) {
	r.fill(0, 0, l.ScreenWidth, l.ScreenHeight, r.base)

	if !l.Fits() {
		msg := fmt.Sprintf(constants.TooSmallText, MinWidth(v.Bounds), MinHeight(v.Bounds))
		r.text((l.ScreenWidth-len(msg))/2, l.ScreenHeight/2, msg, r.base)
		r.screen.Show()
		return
	}

	r.drawHUD(v, l)
	r.drawFrame(l)
	r.drawBoard(v, l)
	if v.ShowSelection {
		r.drawSelection(v, l)
	}
	r.drawFooter(l)
	if v.ShowOverlay {
		r.drawOverlay(v, l)
	}

	r.screen.Show()
}

// drawHUD draws the score line and the timer gauge above the board frame
func (r *TerminalRenderer) drawHUD(v View, l Layout) {
	x := l.Board.X - 1
	width := l.Board.Width + 2
	y := l.Board.Y - constants.HUDHeight - 1

	left := "Score " + v.ScoreText
	right := "Best " + v.BestText + "  " + v.TimeText + "s"
	r.text(x, y, left, r.base.Bold(true))
	r.text(max(x+len(left)+2, x+width-len(right)), y, right, r.base)

	gaugeWidth := max(width, constants.GaugeMinWidth)
	filled := int(math.Round(v.GaugePercent / 100 * float64(gaugeWidth)))
	fillStyle := tcell.StyleDefault.Background(GaugeColor(v.Gauge))
	trackStyle := tcell.StyleDefault.Background(RgbGaugeTrack)
	for i := 0; i < gaugeWidth; i++ {
		style := trackStyle
		if i < filled {
			style = fillStyle
		}
		r.screen.SetContent(x+i, y+1, ' ', nil, style)
	}
}

func (r *TerminalRenderer) drawFrame(l Layout) {
	style := r.base.Foreground(RgbFrame)
	x0, y0 := l.Board.X-1, l.Board.Y-1
	x1, y1 := l.Board.X+l.Board.Width, l.Board.Y+l.Board.Height

	for x := x0 + 1; x < x1; x++ {
		r.screen.SetContent(x, y0, '─', nil, style)
		r.screen.SetContent(x, y1, '─', nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		r.screen.SetContent(x0, y, '│', nil, style)
		r.screen.SetContent(x1, y, '│', nil, style)
	}
	r.screen.SetContent(x0, y0, '┌', nil, style)
	r.screen.SetContent(x1, y0, '┐', nil, style)
	r.screen.SetContent(x0, y1, '└', nil, style)
	r.screen.SetContent(x1, y1, '┘', nil, style)
}

// drawBoard paints each tile over its own bounds with the number on its central cell
func (r *TerminalRenderer) drawBoard(v View, l Layout) {
	for _, tile := range v.Tiles {
		x0, y0 := l.ToScreen(tile.Bounds.Min)
		w, h := int(tile.Bounds.Width()), int(tile.Bounds.Height())
		if w <= 0 || h <= 0 {
			continue
		}

		style := tcell.StyleDefault.Foreground(RgbTileFg)
		switch {
		case tile.Cleared:
			style = style.Background(RgbTileCleared)
		case tile.Selected:
			style = style.Background(RgbTileHover).Bold(true)
		case (tile.Col+tile.Row)%2 == 0:
			style = style.Background(RgbTileBg)
		default:
			style = style.Background(RgbTileAltBg)
		}

		r.fill(x0, y0, w, h, style)
		if !tile.Cleared {
			r.screen.SetContent(x0+(w-1)/2, y0+(h-1)/2, rune('0'+tile.Value), nil, style)
		}
	}
}

// drawSelection recolors the rectangle outline over the tiles and puts the live sum on the top frame
func (r *TerminalRenderer) drawSelection(v View, l Layout) {
	color := RgbSelectionInvalid
	if v.SelectionValid {
		color = RgbSelectionValid
	}

	sx0, sy0, sx1, sy1 := selectionCells(v)
	for by := sy0; by <= sy1; by++ {
		for bx := sx0; bx <= sx1; bx++ {
			if bx != sx0 && bx != sx1 && by != sy0 && by != sy1 {
				continue
			}
			x, y := l.Board.X+bx, l.Board.Y+by
			ch, _, style, _ := r.screen.GetContent(x, y)
			r.screen.SetContent(x, y, ch, nil, style.Background(color).Foreground(RgbButtonFg))
		}
	}

	label := fmt.Sprintf(constants.SumLabel, v.SelectionSum)
	if len(label) > l.Board.Width {
		return
	}
	// Follow the rectangle along the frame but stay inside the board span
	x := l.Board.X + min(max(sx0, 0), l.Board.Width-len(label))
	r.text(x, l.Board.Y-1, label, r.base.Foreground(color).Bold(true))
}

// selectionCells returns the inclusive board cell range covered by the selection rectangle
func selectionCells(v View) (x0, y0, x1, y1 int) {
	rect := v.SelectionRect
	x0 = int(math.Floor(rect.Min.X))
	y0 = int(math.Floor(rect.Min.Y))
	x1 = max(int(math.Ceil(rect.Max.X))-1, x0)
	y1 = max(int(math.Ceil(rect.Max.Y))-1, y0)
	return x0, y0, x1, y1
}

// drawOverlay draws the start or end panel centred on the board, with its button on l.Button
func (r *TerminalRenderer) drawOverlay(v View, l Layout) {
	width := max(len(v.Title), len(v.Message), len(v.SessionText), len(v.ButtonText)) + 6
	height := 7
	x := l.Board.X + (l.Board.Width-width)/2
	y := l.Button.Y - 5

	bg := tcell.StyleDefault.Background(RgbOverlayBg).Foreground(RgbText)
	r.fill(x, y, width, height, bg)

	border := bg.Foreground(RgbOverlayBorder)
	for i := 1; i < width-1; i++ {
		r.screen.SetContent(x+i, y, '═', nil, border)
		r.screen.SetContent(x+i, y+height-1, '═', nil, border)
	}
	for j := 1; j < height-1; j++ {
		r.screen.SetContent(x, y+j, '║', nil, border)
		r.screen.SetContent(x+width-1, y+j, '║', nil, border)
	}
	r.screen.SetContent(x, y, '╔', nil, border)
	r.screen.SetContent(x+width-1, y, '╗', nil, border)
	r.screen.SetContent(x, y+height-1, '╚', nil, border)
	r.screen.SetContent(x+width-1, y+height-1, '╝', nil, border)

	r.centered(x, width, y+1, v.Title, bg.Foreground(RgbOverlayTitle).Bold(true))
	r.centered(x, width, y+2, v.Message, bg)
	if v.SessionText != "" {
		r.centered(x, width, y+3, v.SessionText, bg.Foreground(RgbDimText))
	}

	button := tcell.StyleDefault.Background(RgbButtonBg).Foreground(RgbButtonFg).Bold(true)
	r.text(l.Button.X, l.Button.Y, v.ButtonText, button)
}

func (r *TerminalRenderer) drawFooter(l Layout) {
	y := l.Board.Y + l.Board.Height + 1
	if y >= l.ScreenHeight {
		return
	}
	r.text((l.ScreenWidth-len(constants.FooterHint))/2, y, constants.FooterHint, r.base.Foreground(RgbDimText))
}

func (r *TerminalRenderer) centered(x, width, y int, s string, style tcell.Style) {
	r.text(x+(width-len(s))/2, y, s, style)
}

func (r *TerminalRenderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *TerminalRenderer) fill(x, y, w, h int, style tcell.Style) {
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			r.screen.SetContent(x+i, y+j, ' ', nil, style)
		}
	}
}

