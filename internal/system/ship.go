package system

import (
	"time"

	"github.com/starshot/shooter/internal/component"
	"github.com/starshot/shooter/internal/config"
	"github.com/starshot/shooter/internal/core/ecs"
	coresys "github.com/starshot/shooter/internal/core/system"
	"github.com/starshot/shooter/internal/input"
	"github.com/starshot/shooter/internal/world"
)

// ShipSystem applies thrust from the "ship" axis, bounces the ship off the
// arena walls and fires lasers on the "fire" action. Phase 2 (Update).
type ShipSystem struct {
	world   *world.State
	input   input.Source
	thrust  float32
	timeout float32
}

func NewShipSystem(ws *world.State, src input.Source, tuning config.TuningConfig) *ShipSystem {
	return &ShipSystem{
		world:   ws,
		input:   src,
		thrust:  tuning.ShipThrust,
		timeout: tuning.TriggerResetTimeout,
	}
}

func (s *ShipSystem) Name() string         { return NameShip }
func (s *ShipSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *ShipSystem) Access() coresys.Access {
	return coresys.Access{
		Reads:  []string{component.AccessInput},
		Writes: []string{component.AccessShip, component.AccessShipPosition, component.AccessCommands},
	}
}

func (s *ShipSystem) Update(dt time.Duration) {
	secs := float32(dt.Seconds())
	ship, pos := s.world.Ship()
	if ship == nil || pos == nil {
		return
	}

	// The timer is only compared against zero, so it may go negative.
	if ship.TriggerResetTimer > 0 {
		ship.TriggerResetTimer -= secs
	}
	if fire, ok := s.input.Action(input.ActionFire); ok && fire && ship.TriggerResetTimer <= 0 {
		s.fire(ship, pos)
		ship.TriggerResetTimer = s.timeout
	}

	if axis, ok := s.input.Axis(input.AxisShip); ok {
		ship.Velocity += axis * s.thrust * secs
	}
	pos.X += ship.Velocity * secs

	minX := -ship.Width / 2
	maxX := s.world.Screen.Width - ship.Width/2
	switch {
	case pos.X < minX:
		pos.X = minX
		ship.Velocity = -ship.Velocity
	case pos.X > maxX:
		pos.X = maxX
		ship.Velocity = -ship.Velocity
	}
}

// fire queues a laser at the ship's horizontal center, on its top edge.
func (s *ShipSystem) fire(ship *component.Ship, pos *component.Position) {
	at := component.Position{X: pos.X + ship.Width/2, Y: pos.Y + ship.Height}
	positions := s.world.Positions
	s.world.Lasers.Spawn(s.world.LaserTemplate.Laser, func(id ecs.EntityID) {
		positions.Set(id, at)
	})
}
