package system

import (
	"time"

	"github.com/starshot/shooter/internal/component"
	"github.com/starshot/shooter/internal/core/ecs"
	"github.com/starshot/shooter/internal/core/event"
	coresys "github.com/starshot/shooter/internal/core/system"
	"github.com/starshot/shooter/internal/world"
)

// LaserCollisionSystem despawns lasers that hit an asteroid and marks the
// asteroid for relocation. Several lasers may hit the same asteroid in one
// tick: all of them are consumed, the asteroid is destroyed once.
type LaserCollisionSystem struct {
	world *world.State
	bus   *event.Bus
}

func NewLaserCollisionSystem(ws *world.State, bus *event.Bus) *LaserCollisionSystem {
	return &LaserCollisionSystem{world: ws, bus: bus}
}

func (s *LaserCollisionSystem) Name() string         { return NameLaserCollision }
func (s *LaserCollisionSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *LaserCollisionSystem) Access() coresys.Access {
	return coresys.Access{
		Reads:  []string{component.AccessLaser, component.AccessLaserPosition, component.AccessAsteroidPosition},
		Writes: []string{component.AccessAsteroid, component.AccessCommands, component.AccessEvents},
	}
}

func (s *LaserCollisionSystem) Update(_ time.Duration) {
	lasers := s.world.Lasers
	positions := s.world.Positions
	ecs.Each2(lasers.Store(), positions, func(laserID ecs.EntityID, l *component.Laser, lp *component.Position) {
		laserBox := boxAt(lp, l.Width, l.Height)
		s.world.Asteroids.Each(func(id ecs.EntityID, a *component.Asteroid) {
			ap, ok := positions.Get(id)
			if !ok || !collides(laserBox, boxAt(ap, a.Width, a.Height)) {
				return
			}
			lasers.Despawn(laserID)
			if !a.IsDestroyed {
				a.IsDestroyed = true
				event.Emit(s.bus, event.AsteroidDestroyed{EntityID: id, Cause: event.CauseLaser})
			}
		})
	})
}
