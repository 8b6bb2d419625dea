package system

import (
	"time"

	"github.com/starshot/shooter/internal/component"
	"github.com/starshot/shooter/internal/core/ecs"
	"github.com/starshot/shooter/internal/core/event"
	coresys "github.com/starshot/shooter/internal/core/system"
	"github.com/starshot/shooter/internal/world"
)

// ShipCollisionSystem costs a life for every asteroid the ship runs into and
// marks that asteroid for relocation. An asteroid still marked by a laser hit
// last tick sits at its old position and still counts. Phase 2 (Update),
// after ShipSystem.
type ShipCollisionSystem struct {
	world *world.State
	bus   *event.Bus
}

func NewShipCollisionSystem(ws *world.State, bus *event.Bus) *ShipCollisionSystem {
	return &ShipCollisionSystem{world: ws, bus: bus}
}

func (s *ShipCollisionSystem) Name() string         { return NameShipCollision }
func (s *ShipCollisionSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *ShipCollisionSystem) Access() coresys.Access {
	return coresys.Access{
		Reads:  []string{component.AccessShip, component.AccessShipPosition, component.AccessAsteroidPosition},
		Writes: []string{component.AccessAsteroid, component.AccessPlayState, component.AccessEvents},
	}
}

func (s *ShipCollisionSystem) Update(_ time.Duration) {
	ship, pos := s.world.Ship()
	if ship == nil || pos == nil {
		return
	}
	shipBox := boxAt(pos, ship.Width, ship.Height)

	ecs.Each2(s.world.Asteroids.Store(), s.world.Positions, func(id ecs.EntityID, a *component.Asteroid, p *component.Position) {
		if !collides(shipBox, boxAt(p, a.Width, a.Height)) {
			return
		}
		if !a.IsDestroyed {
			a.IsDestroyed = true
			event.Emit(s.bus, event.AsteroidDestroyed{EntityID: id, Cause: event.CauseShip})
		}
		if s.world.Play.LoseLife() {
			event.Emit(s.bus, event.LifeLost{Remaining: s.world.Play.Lives()})
		}
	})
}
