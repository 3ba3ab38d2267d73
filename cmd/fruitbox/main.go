package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/fruitbox/config"
	"github.com/lixenwraith/fruitbox/engine"
	"github.com/lixenwraith/fruitbox/events"
	"github.com/lixenwraith/fruitbox/input"
	"github.com/lixenwraith/fruitbox/render"
	"github.com/lixenwraith/fruitbox/status"
)

// screenFactory opens the terminal; tests pass a substitute
type screenFactory func() (tcell.Screen, error)

func main() {
	os.Exit(runMain(os.Args[1:], os.Stderr, tcell.NewScreen))
}

// runMain is the whole program and returns the exit code
// Deferred cleanup, including the log file, runs before main calls os.Exit
func runMain(args []string, stderr io.Writer, newScreen screenFactory) int {
	fs := flag.NewFlagSet("fruitbox", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to YAML layout file")
	seedFlag := fs.Uint64("seed", 0, "Board RNG seed, 0 for random")
	debugFlag := fs.Bool("debug", false, "Write debug log to logs/fruitbox.log")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(stderr, "Failed to load environment: %v\n", err)
		return 1
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return 1
	}

	// Flags win over file and environment
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seedFlag
		case "debug":
			cfg.Debug = *debugFlag
		}
	})

	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg, newScreen); err != nil {
		log.Error().Err(err).Msg("exit")
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	return 0
}

func run(cfg *config.Config, newScreen screenFactory) (err error) {
	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the crash, then fail through runMain
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mFRUITBOX CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("crashed: %v", r)
		}
	}()

	screen.EnableMouse(tcell.MouseDragEvents)
	screen.HideCursor()

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.Info().
		Uint64("seed", seed).
		Int("columns", cfg.Grid.Columns).
		Int("rows", cfg.Grid.Rows).
		Msg("fruitbox starting")

	game := engine.NewGame(cfg.Engine(), clockwork.NewRealClock(), rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
	defer game.Stop()

	registry := status.NewRegistry()
	router := events.NewRouter[*engine.Game]()
	router.Register(engine.NewMetricsHandler(registry))
	router.Register(engine.NewJournal(log.Logger))

	renderer := render.NewTerminalRenderer(screen)
	machine := input.NewMachine()

	var layout render.Layout
	draw := func() {
		v := render.NewView(game.Snapshot(), render.SessionFrom(registry))
		w, h := screen.Size()
		layout = render.NewLayout(w, h, game.Board().Bounds(), len(v.ButtonText))
		renderer.Draw(v, layout)
	}
	draw()

	eventChan := make(chan tcell.Event, 256)
	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			intent := machine.Process(ev, layout, game.Phase())
			if intent == nil {
				continue
			}
			switch intent.Type {
			case input.IntentQuit:
				log.Info().Msg("quit")
				return nil
			case input.IntentResize:
				screen.Sync()
			case input.IntentDispatch:
				router.DispatchAll(game, game.Dispatch(intent.Event))
			}
			draw()

		// Nil channel between rounds blocks this case
		case t := <-game.Ticks():
			router.DispatchAll(game, game.Dispatch(events.Event{Type: events.EventTick, Time: t}))
			draw()
		}
	}
}
