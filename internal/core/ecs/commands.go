package ecs

// SpawnFunc attaches components to a freshly allocated entity.
type SpawnFunc func(id EntityID)

type spawnCommand struct {
	kind  string
	build SpawnFunc
}

type deleteCommand struct {
	kind string
	id   EntityID
}

// Commands buffers structural changes requested while systems iterate the
// stores. Nothing is applied until World.Flush.
type Commands struct {
	spawns  []spawnCommand
	deletes []deleteCommand
}

func newCommands() *Commands {
	return &Commands{
		spawns:  make([]spawnCommand, 0, 16),
		deletes: make([]deleteCommand, 0, 16),
	}
}

// Spawn queues the creation of one entity of the given kind.
func (c *Commands) Spawn(kind string, build SpawnFunc) {
	c.spawns = append(c.spawns, spawnCommand{kind: kind, build: build})
}

// Delete queues the destruction of id. Deleting the same entity twice, or an
// entity that is already gone, is a no-op at flush time.
func (c *Commands) Delete(kind string, id EntityID) {
	c.deletes = append(c.deletes, deleteCommand{kind: kind, id: id})
}

// Pending returns the number of queued spawns and deletes.
func (c *Commands) Pending() int {
	return len(c.spawns) + len(c.deletes)
}

// Change records one applied (or rejected) structural change.
type Change struct {
	ID   EntityID
	Kind string
}

// FlushResult lists what a flush did, in application order.
type FlushResult struct {
	Created  []Change
	Deleted  []Change
	Rejected []Change // deletes aimed at pinned entities
}

func (c *Commands) reset() {
	for i := range c.spawns {
		c.spawns[i].build = nil
	}
	c.spawns = c.spawns[:0]
	c.deletes = c.deletes[:0]
}
