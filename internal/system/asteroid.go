package system

import (
	"time"

	"github.com/starshot/shooter/internal/component"
	"github.com/starshot/shooter/internal/core/ecs"
	coresys "github.com/starshot/shooter/internal/core/system"
	"github.com/starshot/shooter/internal/world"
)

// AsteroidSystem moves the asteroid pool down the screen. An asteroid that
// falls below the bottom edge, or was destroyed by a collision, is moved to
// a fresh spot above the screen instead of being deleted.
type AsteroidSystem struct {
	world *world.State
	rng   world.Rand
}

func NewAsteroidSystem(ws *world.State, rng world.Rand) *AsteroidSystem {
	return &AsteroidSystem{world: ws, rng: rng}
}

func (s *AsteroidSystem) Name() string         { return NameAsteroid }
func (s *AsteroidSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *AsteroidSystem) Access() coresys.Access {
	return coresys.Access{
		Writes: []string{component.AccessAsteroid, component.AccessAsteroidPosition},
	}
}

func (s *AsteroidSystem) Update(dt time.Duration) {
	secs := float32(dt.Seconds())
	positions := s.world.Positions
	s.world.Asteroids.Each(func(id ecs.EntityID, a *component.Asteroid) {
		p, ok := positions.Get(id)
		if !ok {
			return
		}
		p.Y -= a.Velocity * secs
		if a.IsDestroyed || p.Y < -a.Height {
			*p = world.PlaceAsteroid(s.world.Screen, a.Width, s.world.Spawning, s.rng)
			a.IsDestroyed = false
		}
	})
}
