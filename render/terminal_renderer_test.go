package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fruitbox/engine"
	"github.com/lixenwraith/fruitbox/events"
	"github.com/lixenwraith/fruitbox/vmath"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func rowText(screen tcell.Screen, y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(ch)
	}
	return sb.String()
}

func bgAt(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestDrawPlayingFrame(t *testing.T) {
	screen := newSimScreen(t, 60, 20)
	r := NewTerminalRenderer(screen)

	v := NewView(testSnapshot(engine.PhasePlaying), Session{Best: 9})
	l := NewLayout(60, 20, v.Bounds, len(v.ButtonText))
	r.Draw(v, l)

	// Tile labels sit on the upper-left-of-center cell of each 4x2 tile
	if ch, _, _, _ := screen.GetContent(l.Board.X+1, l.Board.Y); ch != '6' {
		t.Errorf("tile 0 label = %q, want '6'", ch)
	}
	if ch, _, _, _ := screen.GetContent(l.Board.X+5, l.Board.Y); ch != '4' {
		t.Errorf("tile 1 label = %q, want '4'", ch)
	}

	// Cleared tile is blank
	if ch, _, _, _ := screen.GetContent(l.Board.X+1, l.Board.Y+2); ch != ' ' {
		t.Errorf("cleared tile shows %q", ch)
	}
	if bg := bgAt(screen, l.Board.X+1, l.Board.Y+2); bg != RgbTileCleared {
		t.Errorf("cleared tile background = %v", bg)
	}

	hud := rowText(screen, l.Board.Y-3, 60)
	if !strings.Contains(hud, "Score 2/4") || !strings.Contains(hud, "Best 9") || !strings.Contains(hud, "60.0s") {
		t.Errorf("HUD row = %q", hud)
	}

	// Half the gauge is filled
	gaugeY := l.Board.Y - 2
	if bg := bgAt(screen, l.Board.X-1, gaugeY); bg != GaugeColor(0.5) {
		t.Errorf("gauge start = %v, want fill color", bg)
	}
	if bg := bgAt(screen, l.Board.X+l.Board.Width, gaugeY); bg != RgbGaugeTrack {
		t.Errorf("gauge end = %v, want track color", bg)
	}

	if ch, _, _, _ := screen.GetContent(l.Board.X-1, l.Board.Y-1); ch != '┌' {
		t.Errorf("frame corner = %q", ch)
	}
}

func TestDrawSelectionOutline(t *testing.T) {
	screen := newSimScreen(t, 60, 20)
	r := NewTerminalRenderer(screen)

	snap := testSnapshot(engine.PhasePlaying)
	snap.Selection = engine.SelectionState{
		Active: true,
		Rect:   vmath.Rect{Min: vmath.Point{X: 0.5, Y: 0.5}, Max: vmath.Point{X: 7.5, Y: 1.5}},
		Tiles:  []int{0, 1},
		Sum:    10,
		Valid:  true,
	}
	v := NewView(snap, Session{})
	l := NewLayout(60, 20, v.Bounds, len(v.ButtonText))
	r.Draw(v, l)

	if bg := bgAt(screen, l.Board.X, l.Board.Y); bg != RgbSelectionValid {
		t.Errorf("outline background = %v, want valid color", bg)
	}
	// Row 1 of the board lies outside the rectangle
	if bg := bgAt(screen, l.Board.X, l.Board.Y+3); bg == RgbSelectionValid {
		t.Error("cell outside the rectangle painted as selection")
	}

	snap.Selection.Valid = false
	r.Draw(NewView(snap, Session{}), l)
	if bg := bgAt(screen, l.Board.X+7, l.Board.Y+1); bg != RgbSelectionInvalid {
		t.Errorf("invalid outline background = %v", bg)
	}
}

func TestDrawSelectionSum(t *testing.T) {
	screen := newSimScreen(t, 60, 20)
	r := NewTerminalRenderer(screen)

	snap := testSnapshot(engine.PhasePlaying)
	v := NewView(snap, Session{})
	l := NewLayout(60, 20, v.Bounds, len(v.ButtonText))
	r.Draw(v, l)
	if frame := rowText(screen, l.Board.Y-1, 60); strings.Contains(frame, "Sum") {
		t.Errorf("sum label drawn without a selection: %q", frame)
	}

	snap.Selection = engine.SelectionState{
		Active: true,
		Rect:   vmath.Rect{Min: vmath.Point{X: 0.5, Y: 0.5}, Max: vmath.Point{X: 3.5, Y: 1.5}},
		Tiles:  []int{0},
		Sum:    6,
	}
	r.Draw(NewView(snap, Session{}), l)

	frame := rowText(screen, l.Board.Y-1, 60)
	if !strings.Contains(frame, " Sum 6 ") {
		t.Fatalf("frame row = %q, want live sum", frame)
	}
	// Label starts at the rectangle's left edge: space, then "Sum"
	ch, _, style, _ := screen.GetContent(l.Board.X+1, l.Board.Y-1)
	if ch != 'S' {
		t.Errorf("label starts with %q at the rectangle edge, want 'S'", ch)
	}
	if fg, _, _ := style.Decompose(); fg != RgbSelectionInvalid {
		t.Errorf("sum label color = %v, want invalid color", fg)
	}
}

func TestDrawGaugeFollowsPercent(t *testing.T) {
	screen := newSimScreen(t, 60, 20)
	r := NewTerminalRenderer(screen)

	snap := testSnapshot(engine.PhasePlaying)
	snap.Remaining = 12 // 10% of the round
	snap.Fraction = 0.1
	v := NewView(snap, Session{})
	l := NewLayout(60, 20, v.Bounds, len(v.ButtonText))
	r.Draw(v, l)

	// Board is 8 wide, so the gauge is 10 cells and one of them is filled
	gaugeY := l.Board.Y - 2
	if bg := bgAt(screen, l.Board.X-1, gaugeY); bg != RgbGaugeEmpty {
		t.Errorf("first gauge cell = %v, want low-time fill", bg)
	}
	if bg := bgAt(screen, l.Board.X, gaugeY); bg != RgbGaugeTrack {
		t.Errorf("second gauge cell = %v, want track", bg)
	}
}

func TestDrawEndOverlaySession(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	r := NewTerminalRenderer(screen)

	snap := testSnapshot(engine.PhaseEnded)
	snap.Result = &events.RoundEndedPayload{Reason: events.ReasonTimeout, Title: "TIME UP!", Message: "Final score: 2"}
	v := NewView(snap, Session{Rounds: 2, Clears: 5})
	l := NewLayout(80, 24, v.Bounds, len(v.ButtonText))
	r.Draw(v, l)

	if row := rowText(screen, l.Button.Y-3, 80); !strings.Contains(row, "Final score: 2") {
		t.Errorf("message row = %q", row)
	}
	if row := rowText(screen, l.Button.Y-2, 80); !strings.Contains(row, "Rounds 2  Clears 5  Fastest -") {
		t.Errorf("session row = %q", row)
	}
	if row := rowText(screen, l.Button.Y, 80); !strings.Contains(row, "[ Restart ]") {
		t.Errorf("button row = %q", row)
	}
}

func TestDrawStartOverlay(t *testing.T) {
	screen := newSimScreen(t, 60, 20)
	r := NewTerminalRenderer(screen)

	v := NewView(testSnapshot(engine.PhaseNotStarted), Session{})
	l := NewLayout(60, 20, v.Bounds, len(v.ButtonText))
	r.Draw(v, l)

	button := rowText(screen, l.Button.Y, 60)
	if !strings.Contains(button, "[ Start ]") {
		t.Errorf("button row = %q", button)
	}
	if ch, _, _, _ := screen.GetContent(l.Button.X, l.Button.Y); ch != '[' {
		t.Errorf("button does not start at layout position, got %q", ch)
	}
	if !strings.Contains(rowText(screen, l.Button.Y-4, 60), "FRUIT BOX") {
		t.Errorf("title row = %q", rowText(screen, l.Button.Y-4, 60))
	}
}

func TestDrawTooSmall(t *testing.T) {
	screen := newSimScreen(t, 40, 6)
	r := NewTerminalRenderer(screen)

	v := NewView(testSnapshot(engine.PhasePlaying), Session{})
	l := NewLayout(40, 6, v.Bounds, len(v.ButtonText))
	r.Draw(v, l)

	if !strings.Contains(rowText(screen, 3, 40), "too small") {
		t.Errorf("expected size notice, got %q", rowText(screen, 3, 40))
	}
}
