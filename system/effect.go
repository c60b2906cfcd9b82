package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/trinket/engine"
	"github.com/lixenwraith/trinket/parameter"
)

// EffectSystem drains the effect queue into the presenter at the end of every tick
type EffectSystem struct {
	engine.SystemBase
}

// NewEffectSystem creates the effect drain
func NewEffectSystem(world *engine.World) *EffectSystem {
	return &EffectSystem{SystemBase: engine.NewSystemBase(world, "effect")}
}

func (s *EffectSystem) Name() string {
	return "effect"
}

func (s *EffectSystem) Priority() int {
	return parameter.PriorityEffect
}

func (s *EffectSystem) Update(f *engine.Frame) {
	effects := f.Effects.Drain()
	if len(effects) == 0 {
		return
	}
	if s.Resource.Presenter != nil {
		s.Resource.Presenter.Present(f.Tick, effects)
	}
	if ce := s.Log.Check(zap.DebugLevel, "effects"); ce != nil {
		ce.Write(zap.Uint64("tick", f.Tick), zap.Int("count", len(effects)))
	}
}
