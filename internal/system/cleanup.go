package system

import (
	"time"

	"github.com/starshot/shooter/internal/component"
	"github.com/starshot/shooter/internal/core/event"
	coresys "github.com/starshot/shooter/internal/core/system"
	"github.com/starshot/shooter/internal/world"
	"go.uber.org/zap"
)

// CleanupSystem applies the command buffer at tick end and announces every
// structural change on the bus. Phase 3 (Cleanup).
type CleanupSystem struct {
	world *world.State
	bus   *event.Bus
	log   *zap.Logger
}

func NewCleanupSystem(ws *world.State, bus *event.Bus, log *zap.Logger) *CleanupSystem {
	return &CleanupSystem{world: ws, bus: bus, log: log}
}

func (s *CleanupSystem) Name() string         { return NameCleanup }
func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Access() coresys.Access {
	return coresys.Access{
		Writes: []string{component.AccessEntities, component.AccessCommands, component.AccessEvents},
	}
}

func (s *CleanupSystem) Update(_ time.Duration) {
	res := s.world.ECS.Flush()
	for _, c := range res.Deleted {
		event.Emit(s.bus, event.EntityDeleted{EntityID: c.ID, Kind: c.Kind})
	}
	for _, c := range res.Created {
		event.Emit(s.bus, event.EntityCreated{EntityID: c.ID, Kind: c.Kind})
	}
	for _, c := range res.Rejected {
		s.log.Warn("refused to delete pooled entity",
			zap.Uint64("entity", uint64(c.ID)),
			zap.String("kind", c.Kind),
			zap.Uint64("tick", s.world.Tick()),
		)
		event.Emit(s.bus, event.DeleteRejected{EntityID: c.ID, Kind: c.Kind})
	}
	s.world.AdvanceTick()
}
