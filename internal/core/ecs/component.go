package ecs

// Removable is implemented by all component stores so the Registry can
// bulk-remove an entity's data from every store on destroy.
type Removable interface {
	Remove(id EntityID)
}

const noSlot = -1

// Store is a structure-of-arrays component store. Values live in a dense
// slice next to their owning ids; sparse maps an entity index to its slot.
// Pointers handed out by Get and Each stay valid until the next Set or
// Remove, which only happen while the command buffer is flushed.
type Store[T any] struct {
	sparse []int32
	ids    []EntityID
	data   []T
}

func NewStore[T any](capacity int) *Store[T] {
	return &Store[T]{
		sparse: make([]int32, 0, capacity),
		ids:    make([]EntityID, 0, capacity),
		data:   make([]T, 0, capacity),
	}
}

func (s *Store[T]) slot(id EntityID) (int, bool) {
	idx := int(id.Index())
	if idx >= len(s.sparse) {
		return 0, false
	}
	slot := s.sparse[idx]
	if slot == noSlot || s.ids[slot] != id {
		return 0, false
	}
	return int(slot), true
}

// Set attaches c to id, replacing any previous value.
func (s *Store[T]) Set(id EntityID, c T) {
	idx := int(id.Index())
	for len(s.sparse) <= idx {
		s.sparse = append(s.sparse, noSlot)
	}
	if slot := s.sparse[idx]; slot != noSlot {
		// Same index, possibly a stale generation: the slot is reused.
		s.ids[slot] = id
		s.data[slot] = c
		return
	}
	s.sparse[idx] = int32(len(s.data))
	s.ids = append(s.ids, id)
	s.data = append(s.data, c)
}

func (s *Store[T]) Get(id EntityID) (*T, bool) {
	slot, ok := s.slot(id)
	if !ok {
		return nil, false
	}
	return &s.data[slot], true
}

// Remove swaps the last element into the removed slot.
func (s *Store[T]) Remove(id EntityID) {
	slot, ok := s.slot(id)
	if !ok {
		return
	}
	last := len(s.data) - 1
	if slot != last {
		s.data[slot] = s.data[last]
		s.ids[slot] = s.ids[last]
		s.sparse[s.ids[slot].Index()] = int32(slot)
	}
	var zero T
	s.data[last] = zero
	s.data = s.data[:last]
	s.ids = s.ids[:last]
	s.sparse[id.Index()] = noSlot
}

func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.slot(id)
	return ok
}

func (s *Store[T]) Len() int {
	return len(s.data)
}

// Each visits every value in slot order.
func (s *Store[T]) Each(fn func(EntityID, *T)) {
	for i := range s.data {
		fn(s.ids[i], &s.data[i])
	}
}
