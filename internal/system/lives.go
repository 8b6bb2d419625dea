package system

import (
	"time"

	"github.com/starshot/shooter/internal/component"
	"github.com/starshot/shooter/internal/core/ecs"
	coresys "github.com/starshot/shooter/internal/core/system"
	"github.com/starshot/shooter/internal/world"
)

// LivesSystem keeps the life icons in step with PlayState: every icon whose
// rank is at or above the remaining lives is despawned. Icons never return.
type LivesSystem struct {
	world *world.State
}

func NewLivesSystem(ws *world.State) *LivesSystem {
	return &LivesSystem{world: ws}
}

func (s *LivesSystem) Name() string         { return NameLives }
func (s *LivesSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *LivesSystem) Access() coresys.Access {
	return coresys.Access{
		Reads:  []string{component.AccessLife, component.AccessPlayState},
		Writes: []string{component.AccessCommands},
	}
}

func (s *LivesSystem) Update(_ time.Duration) {
	lives := s.world.Play.Lives()
	icons := s.world.LifeIcons
	icons.Store().Each(func(id ecs.EntityID, l *component.Life) {
		if l.LifeNumber >= lives {
			icons.Despawn(id)
		}
	})
}
