package event

import "github.com/starshot/shooter/internal/core/ecs"

// EntityCreated is emitted when the command buffer materializes a spawn.
// Presentation layers attach visuals on it.
type EntityCreated struct {
	EntityID ecs.EntityID
	Kind     string
}

// EntityDeleted is emitted when the command buffer applies a delete.
type EntityDeleted struct {
	EntityID ecs.EntityID
	Kind     string
}

// DeleteRejected reports a delete aimed at a pinned pool member.
type DeleteRejected struct {
	EntityID ecs.EntityID
	Kind     string
}

// Destruction causes.
const (
	CauseShip  = "ship"
	CauseLaser = "laser"
)

type AsteroidDestroyed struct {
	EntityID ecs.EntityID
	Cause    string
}

type LifeLost struct {
	Remaining uint8
}
