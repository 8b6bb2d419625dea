package system

import (
	"math/rand"
	"time"

	"github.com/starshot/shooter/internal/component"
	"github.com/starshot/shooter/internal/config"
	"github.com/starshot/shooter/internal/core/event"
	coresys "github.com/starshot/shooter/internal/core/system"
	"github.com/starshot/shooter/internal/input"
	"github.com/starshot/shooter/internal/world"
	"go.uber.org/zap"
)

// Deps bundles what the systems need. Nil fields get safe defaults.
type Deps struct {
	World  *world.State
	Bus    *event.Bus
	Tuning config.TuningConfig
	Rand   world.Rand
	Log    *zap.Logger

	// Input is read by ShipSystem. When Pilot is set, Input must be the
	// *input.State the InputSystem writes into.
	Input input.Source
	Pilot Pilot
}

// RegisterAll wires the simulation systems into r in their tick order:
// ship, ship collision, asteroid, laser, laser collision, lives; the
// command buffer is applied afterwards by the cleanup phase.
func RegisterAll(r *coresys.Runner, d Deps) {
	if d.Bus == nil {
		d.Bus = event.NewBus()
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if d.Pilot != nil {
		state, ok := d.Input.(*input.State)
		if !ok {
			state = input.NewState()
			d.Input = state
		}
		r.Register(NewInputSystem(d.World, d.Pilot, state, d.Log))
	}
	if d.Input == nil {
		d.Input = input.None{}
	}

	r.Register(NewEventDispatchSystem(d.Bus))
	r.Register(NewShipSystem(d.World, d.Input, d.Tuning))
	r.Register(NewShipCollisionSystem(d.World, d.Bus), NameShip)
	r.Register(NewAsteroidSystem(d.World, d.Rand), NameShipCollision)
	r.Register(NewLaserSystem(d.World), NameAsteroid)
	r.Register(NewLaserCollisionSystem(d.World, d.Bus), NameLaser)
	r.Register(NewLivesSystem(d.World), NameShipCollision, NameLaserCollision)
	r.Register(NewCleanupSystem(d.World, d.Bus, d.Log))

	trackStats(d.Bus, d.World)
}

func trackStats(bus *event.Bus, ws *world.State) {
	event.Subscribe(bus, func(ev event.EntityCreated) {
		if ev.Kind == component.KindLaser {
			ws.Stats.LasersFired++
		}
	})
	event.Subscribe(bus, func(ev event.AsteroidDestroyed) {
		switch ev.Cause {
		case event.CauseLaser:
			ws.Stats.AsteroidsShot++
		case event.CauseShip:
			ws.Stats.AsteroidsRammed++
		}
	})
	event.Subscribe(bus, func(event.LifeLost) {
		ws.Stats.LivesLost++
	})
	event.Subscribe(bus, func(event.DeleteRejected) {
		ws.Stats.DeletesRejected++
	})
}
