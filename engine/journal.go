package engine

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/fruitbox/events"
)

// Journal logs the round timeline: starts, clears, rejections and endings
type Journal struct {
	logger zerolog.Logger
}

// NewJournal creates a journal writing to logger
func NewJournal(logger zerolog.Logger) *Journal {
	return &Journal{logger: logger.With().Str("component", "journal").Logger()}
}

// EffectTypes implements events.Handler
func (j *Journal) EffectTypes() []events.EffectType {
	return []events.EffectType{
		events.EffectRoundStarted,
		events.EffectTilesCleared,
		events.EffectSelectionRejected,
		events.EffectTimerStopped,
		events.EffectRoundEnded,
	}
}

// HandleEffect implements events.Handler
func (j *Journal) HandleEffect(g *Game, effect events.Effect) {
	switch p := effect.Payload.(type) {
	case *events.RoundStartedPayload:
		j.logger.Info().
			Str("round_id", p.RoundID.String()).
			Int("tiles", p.Tiles).
			Dur("duration", p.Time).
			Msg("round started")

	case *events.ClearPayload:
		j.logger.Info().
			Str("round_id", p.RoundID.String()).
			Ints("tiles", p.Tiles).
			Int("gained", p.Gained).
			Int("score", p.Score).
			Float64("remaining", g.RemainingSeconds()).
			Msg("tiles cleared")

	case *events.SelectionPayload:
		if len(p.Tiles) == 0 {
			return
		}
		j.logger.Debug().
			Str("round_id", g.RoundID().String()).
			Ints("tiles", p.Tiles).
			Int("sum", p.Sum).
			Msg("selection rejected")

	case *events.RoundEndedPayload:
		j.logger.Info().
			Str("round_id", p.RoundID.String()).
			Stringer("reason", p.Reason).
			Int("score", p.Score).
			Float64("elapsed", p.Elapsed).
			Msg(p.Title)

	default:
		if effect.Type == events.EffectTimerStopped {
			j.logger.Debug().Str("round_id", g.RoundID().String()).Msg("round ticker stopped")
		}
	}
}
