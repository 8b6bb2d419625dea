package system

import (
	"time"

	"github.com/starshot/shooter/internal/component"
	"github.com/starshot/shooter/internal/core/ecs"
	coresys "github.com/starshot/shooter/internal/core/system"
	"github.com/starshot/shooter/internal/world"
)

// LaserSystem moves lasers up and despawns the ones past the top edge.
type LaserSystem struct {
	world *world.State
}

func NewLaserSystem(ws *world.State) *LaserSystem {
	return &LaserSystem{world: ws}
}

func (s *LaserSystem) Name() string         { return NameLaser }
func (s *LaserSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *LaserSystem) Access() coresys.Access {
	return coresys.Access{
		Reads:  []string{component.AccessLaser},
		Writes: []string{component.AccessLaserPosition, component.AccessCommands},
	}
}

func (s *LaserSystem) Update(dt time.Duration) {
	secs := float32(dt.Seconds())
	lasers := s.world.Lasers
	top := s.world.Screen.Height
	ecs.Each2(lasers.Store(), s.world.Positions, func(id ecs.EntityID, l *component.Laser, p *component.Position) {
		p.Y += l.Velocity * secs
		if p.Y > top {
			lasers.Despawn(id)
		}
	})
}
