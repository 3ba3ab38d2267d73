package render

import (
	"fmt"
	"strconv"

	"github.com/lixenwraith/fruitbox/constants"
	"github.com/lixenwraith/fruitbox/engine"
	"github.com/lixenwraith/fruitbox/status"
	"github.com/lixenwraith/fruitbox/vmath"
)

// Session is the slice of session counters the HUD and end overlay show
type Session struct {
	Best          int64
	Rounds        int64
	Clears        int64
	FastestTenths int64 // 0 until the first full clear
}

// SessionFrom reads the displayed counters out of the registry
func SessionFrom(reg *status.Registry) Session {
	return Session{
		Best:          reg.Get(status.MetricBestScore),
		Rounds:        reg.Get(status.MetricRounds),
		Clears:        reg.Get(status.MetricClears),
		FastestTenths: reg.Get(status.MetricFastestTenth),
	}
}

// TileView is the visual state of one tile
type TileView struct {
	ID       int
	Col, Row int
	Value    int
	Cleared  bool
	Selected bool
	Bounds   vmath.Rect
}

// View is the presentation model derived from a game snapshot
// It holds no state of its own and is rebuilt after every change
type View struct {
	ScoreText string
	TimeText  string
	BestText  string

	// Gauge is remaining/total in [0,1] and picks the color; GaugePercent sets the fill width
	Gauge        float64
	GaugePercent float64

	ShowOverlay bool
	ShowStart   bool
	ShowEnd     bool
	Title       string
	Message     string
	SessionText string
	ButtonText  string

	ShowSelection  bool
	SelectionRect  vmath.Rect
	SelectionValid bool
	SelectionSum   int

	Tiles  []TileView
	Bounds vmath.Rect
}

// NewView reflects a snapshot and the session counters into visible output
func NewView(snap engine.Snapshot, sess Session) View {
	v := View{
		ScoreText:    fmt.Sprintf("%d/%d", snap.Score, snap.Total),
		TimeText:     fmt.Sprintf("%.1f", snap.Remaining),
		BestText:     strconv.FormatInt(sess.Best, 10),
		Gauge:        vmath.Clamp(snap.Fraction, 0, 1),
		GaugePercent: max(0, snap.Remaining/constants.RoundDuration.Seconds()) * 100,
		Bounds:       snap.Bounds,
	}

	switch snap.Phase {
	case engine.PhaseNotStarted:
		v.ShowOverlay = true
		v.ShowStart = true
		v.Title = constants.TitleStart
		v.Message = constants.MessageStart
		v.ButtonText = constants.ButtonStart
	case engine.PhaseEnded:
		v.ShowOverlay = true
		v.ShowEnd = true
		v.ButtonText = constants.ButtonRestart
		v.SessionText = sessionText(sess)
		if snap.Result != nil {
			v.Title = snap.Result.Title
			v.Message = snap.Result.Message
		}
	}

	selected := make(map[int]bool, len(snap.Selection.Tiles))
	if snap.Selection.Active {
		v.ShowSelection = true
		v.SelectionRect = snap.Selection.Rect
		v.SelectionValid = snap.Selection.Valid
		v.SelectionSum = snap.Selection.Sum
		for _, id := range snap.Selection.Tiles {
			selected[id] = true
		}
	}

	// Tiles are hidden behind the overlay until the first round starts
	if snap.Phase != engine.PhaseNotStarted {
		v.Tiles = make([]TileView, 0, len(snap.Tiles))
		for _, t := range snap.Tiles {
			v.Tiles = append(v.Tiles, TileView{
				ID:       t.ID,
				Col:      t.Col,
				Row:      t.Row,
				Value:    t.Value,
				Cleared:  t.Cleared,
				Selected: selected[t.ID],
				Bounds:   t.Bounds,
			})
		}
	}
	return v
}

func sessionText(sess Session) string {
	fastest := constants.NoFastest
	if sess.FastestTenths > 0 {
		fastest = fmt.Sprintf("%.1fs", float64(sess.FastestTenths)/10)
	}
	return fmt.Sprintf(constants.SessionFormat, sess.Rounds, sess.Clears, fastest)
}
