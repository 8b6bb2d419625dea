package system

import (
	"time"

	"github.com/starshot/shooter/internal/component"
	"github.com/starshot/shooter/internal/core/event"
	coresys "github.com/starshot/shooter/internal/core/system"
)

// EventDispatchSystem makes last tick's events readable and delivers them.
// Phase 1 (PreUpdate).
type EventDispatchSystem struct {
	bus *event.Bus
}

func NewEventDispatchSystem(bus *event.Bus) *EventDispatchSystem {
	return &EventDispatchSystem{bus: bus}
}

func (s *EventDispatchSystem) Name() string         { return NameEventDispatch }
func (s *EventDispatchSystem) Phase() coresys.Phase { return coresys.PhasePreUpdate }

func (s *EventDispatchSystem) Access() coresys.Access {
	return coresys.Access{Writes: []string{component.AccessEvents}}
}

func (s *EventDispatchSystem) Update(_ time.Duration) {
	s.bus.SwapBuffers()
	s.bus.DispatchAll()
}
