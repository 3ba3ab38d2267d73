package engine

import (
	"math"

	"github.com/lixenwraith/fruitbox/events"
	"github.com/lixenwraith/fruitbox/status"
)

// MetricsHandler folds round effects into the session counters shown on the end overlay
type MetricsHandler struct {
	reg *status.Registry
}

// NewMetricsHandler creates a handler writing to reg
func NewMetricsHandler(reg *status.Registry) *MetricsHandler {
	return &MetricsHandler{reg: reg}
}

// EffectTypes implements events.Handler
func (h *MetricsHandler) EffectTypes() []events.EffectType {
	return []events.EffectType{
		events.EffectRoundStarted,
		events.EffectTilesCleared,
		events.EffectRoundEnded,
	}
}

// HandleEffect implements events.Handler
func (h *MetricsHandler) HandleEffect(_ *Game, effect events.Effect) {
	switch effect.Type {
	case events.EffectRoundStarted:
		h.reg.Int(status.MetricRounds).Add(1)

	case events.EffectTilesCleared:
		h.reg.Int(status.MetricClears).Add(1)

	case events.EffectRoundEnded:
		p, ok := effect.Payload.(*events.RoundEndedPayload)
		if !ok {
			return
		}
		h.reg.StoreMax(status.MetricBestScore, int64(p.Score))
		if p.Reason == events.ReasonCleared {
			h.reg.StoreMin(status.MetricFastestTenth, int64(math.Round(p.Elapsed*10)))
		}
	}
}
