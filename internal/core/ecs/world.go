package ecs

// World is the top-level ECS container. It owns the entity pool, the component
// registry, and the command buffer flushed by CleanupSystem each tick.
type World struct {
	pool     *EntityPool
	registry *Registry
	commands *Commands
	pinned   map[EntityID]struct{}
}

func NewWorld() *World {
	return &World{
		pool:     NewEntityPool(),
		registry: NewRegistry(),
		commands: newCommands(),
		pinned:   make(map[EntityID]struct{}),
	}
}

func (w *World) Pool() *EntityPool      { return w.pool }
func (w *World) Registry() *Registry    { return w.registry }
func (w *World) Commands() *Commands    { return w.commands }
func (w *World) Alive(id EntityID) bool { return w.pool.Alive(id) }

// CreateEntity allocates an entity immediately. Only world setup may call it;
// systems go through Commands.
func (w *World) CreateEntity() EntityID {
	return w.pool.Create()
}

// Pin protects id from deletion through the command buffer.
func (w *World) Pin(id EntityID) {
	w.pinned[id] = struct{}{}
}

func (w *World) Pinned(id EntityID) bool {
	_, ok := w.pinned[id]
	return ok
}

// Flush applies all queued commands: deletes first, then spawns. Entities
// created here become visible to systems on the next tick.
func (w *World) Flush() FlushResult {
	var res FlushResult
	c := w.commands
	for _, cmd := range c.deletes {
		if w.Pinned(cmd.id) {
			res.Rejected = append(res.Rejected, Change{ID: cmd.id, Kind: cmd.kind})
			continue
		}
		if !w.pool.Alive(cmd.id) {
			continue // already destroyed (duplicate request)
		}
		w.registry.RemoveAll(cmd.id)
		w.pool.Destroy(cmd.id)
		res.Deleted = append(res.Deleted, Change{ID: cmd.id, Kind: cmd.kind})
	}
	for _, cmd := range c.spawns {
		id := w.pool.Create()
		cmd.build(id)
		res.Created = append(res.Created, Change{ID: id, Kind: cmd.kind})
	}
	c.reset()
	return res
}
