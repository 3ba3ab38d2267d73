package engine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/fruitbox/constants"
	"github.com/lixenwraith/fruitbox/events"
	"github.com/lixenwraith/fruitbox/status"
)

func TestMetricsHandlerCountsSession(t *testing.T) {
	reg := status.NewRegistry()
	router := events.NewRouter[*Game]()
	router.Register(NewMetricsHandler(reg))

	g, _ := newTestGame(t, 6, 4, 5, 5)
	dispatch := func(ev events.Event) {
		router.DispatchAll(g, g.Dispatch(ev))
	}

	// Round 1: one clear, one rejected selection, timeout
	dispatch(events.Event{Type: events.EventStart})
	router.DispatchAll(g, dragRow(g, 0, 0, 1))
	router.DispatchAll(g, dragRow(g, 0, 2, 2)) // single 5
	for i := 0; i < constants.RoundTicks; i++ {
		dispatch(events.Event{Type: events.EventTick})
	}

	// Round 2: full clear after 30s
	dispatch(events.Event{Type: events.EventRestart})
	for i := 0; i < 300; i++ {
		dispatch(events.Event{Type: events.EventTick})
	}
	for row := 0; row < 4; row++ {
		router.DispatchAll(g, dragRow(g, row, 0, 1))
		router.DispatchAll(g, dragRow(g, row, 2, 3))
	}

	want := map[string]int64{
		status.MetricRounds:       2,
		status.MetricClears:       9,
		status.MetricBestScore:    16,
		status.MetricFastestTenth: 300,
	}
	for key, v := range want {
		if got := reg.Get(key); got != v {
			t.Errorf("%s = %d, want %d", key, got, v)
		}
	}
}

func TestJournalLogsRoundTimeline(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	router := events.NewRouter[*Game]()
	router.Register(NewJournal(logger))

	g, _ := newTestGame(t, 6, 4, 5, 5)
	router.DispatchAll(g, g.Dispatch(events.Event{Type: events.EventStart}))
	router.DispatchAll(g, dragRow(g, 0, 0, 1))
	router.DispatchAll(g, dragRow(g, 1, 1, 2)) // 4 + 5
	for i := 0; i < constants.RoundTicks; i++ {
		router.DispatchAll(g, g.Dispatch(events.Event{Type: events.EventTick}))
	}

	out := buf.String()
	for _, msg := range []string{
		`"message":"round started"`,
		`"message":"tiles cleared"`,
		`"message":"selection rejected"`,
		`"message":"round ticker stopped"`,
		`"message":"TIME UP!"`,
		`"reason":"Timeout"`,
		`"round_id":"` + g.RoundID().String() + `"`,
	} {
		if !strings.Contains(out, msg) {
			t.Errorf("journal missing %s\n%s", msg, out)
		}
	}
}
