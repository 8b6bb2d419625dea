package ecs

// RecycledPool is a fixed set of entities created once at setup and reused
// for the whole run. Members are pinned, so the pool size never changes:
// "destroying" a member means resetting its components in place.
type RecycledPool[T any] struct {
	store *Store[T]
	ids   []EntityID
}

// NewRecycledPool creates size pinned entities and stores build(i, id) on each.
// build may attach further components to id.
func NewRecycledPool[T any](w *World, store *Store[T], size int, build func(i int, id EntityID) T) *RecycledPool[T] {
	p := &RecycledPool[T]{
		store: store,
		ids:   make([]EntityID, 0, size),
	}
	for i := 0; i < size; i++ {
		id := w.CreateEntity()
		w.Pin(id)
		store.Set(id, build(i, id))
		p.ids = append(p.ids, id)
	}
	return p
}

func (p *RecycledPool[T]) Len() int         { return len(p.ids) }
func (p *RecycledPool[T]) Store() *Store[T] { return p.store }

func (p *RecycledPool[T]) Contains(id EntityID) bool {
	for _, member := range p.ids {
		if member == id {
			return true
		}
	}
	return false
}

// Each visits the members in creation order.
func (p *RecycledPool[T]) Each(fn func(EntityID, *T)) {
	for _, id := range p.ids {
		if c, ok := p.store.Get(id); ok {
			fn(id, c)
		}
	}
}

// SpawnDespawn manages entities with an unbounded, changing population.
// During a tick both directions go through the command buffer.
type SpawnDespawn[T any] struct {
	kind  string
	world *World
	store *Store[T]
}

func NewSpawnDespawn[T any](w *World, kind string, store *Store[T]) *SpawnDespawn[T] {
	return &SpawnDespawn[T]{kind: kind, world: w, store: store}
}

func (p *SpawnDespawn[T]) Kind() string     { return p.kind }
func (p *SpawnDespawn[T]) Len() int         { return p.store.Len() }
func (p *SpawnDespawn[T]) Store() *Store[T] { return p.store }

// Create allocates an entity immediately. Setup only.
func (p *SpawnDespawn[T]) Create(value T, extra SpawnFunc) EntityID {
	id := p.world.CreateEntity()
	p.store.Set(id, value)
	if extra != nil {
		extra(id)
	}
	return id
}

// Spawn queues the creation of an entity carrying value.
func (p *SpawnDespawn[T]) Spawn(value T, extra SpawnFunc) {
	p.world.commands.Spawn(p.kind, func(id EntityID) {
		p.store.Set(id, value)
		if extra != nil {
			extra(id)
		}
	})
}

// Despawn queues the deletion of id.
func (p *SpawnDespawn[T]) Despawn(id EntityID) {
	p.world.commands.Delete(p.kind, id)
}
