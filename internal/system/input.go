package system

import (
	"time"

	"github.com/starshot/shooter/internal/component"
	coresys "github.com/starshot/shooter/internal/core/system"
	"github.com/starshot/shooter/internal/input"
	"github.com/starshot/shooter/internal/world"
	"go.uber.org/zap"
)

// Pilot produces the next tick's input from the current world.
type Pilot interface {
	Decide(ws *world.State) (axis float32, fire bool, err error)
}

// InputSystem polls the pilot and publishes its decision as input signals.
// Phase 0 (Input). A failing pilot leaves the tick without input.
type InputSystem struct {
	world *world.State
	pilot Pilot
	state *input.State
	log   *zap.Logger
}

func NewInputSystem(ws *world.State, pilot Pilot, state *input.State, log *zap.Logger) *InputSystem {
	return &InputSystem{world: ws, pilot: pilot, state: state, log: log}
}

func (s *InputSystem) Name() string         { return NameInput }
func (s *InputSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *InputSystem) Access() coresys.Access {
	return coresys.Access{
		Reads:  []string{component.AccessShip, component.AccessShipPosition, component.AccessAsteroid, component.AccessAsteroidPosition},
		Writes: []string{component.AccessInput},
	}
}

func (s *InputSystem) Update(_ time.Duration) {
	s.state.Clear()
	axis, fire, err := s.pilot.Decide(s.world)
	if err != nil {
		s.log.Warn("pilot failed, no input this tick", zap.Uint64("tick", s.world.Tick()), zap.Error(err))
		return
	}
	s.state.SetAxis(input.AxisShip, axis)
	s.state.SetAction(input.ActionFire, fire)
}
