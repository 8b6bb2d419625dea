package ecs

// Each2 iterates over entities that have both component A and B.
// It walks the smaller store and probes the larger one.
func Each2[A, B any](sa *Store[A], sb *Store[B], fn func(EntityID, *A, *B)) {
	if sa.Len() <= sb.Len() {
		for i := range sa.data {
			id := sa.ids[i]
			if slot, ok := sb.slot(id); ok {
				fn(id, &sa.data[i], &sb.data[slot])
			}
		}
		return
	}
	for i := range sb.data {
		id := sb.ids[i]
		if slot, ok := sa.slot(id); ok {
			fn(id, &sa.data[slot], &sb.data[i])
		}
	}
}

// Each3 iterates over entities that have components A, B, and C.
func Each3[A, B, C any](sa *Store[A], sb *Store[B], sc *Store[C], fn func(EntityID, *A, *B, *C)) {
	// Iterate the smallest store
	smallest := sa.Len()
	which := 0
	if sb.Len() < smallest {
		smallest = sb.Len()
		which = 1
	}
	if sc.Len() < smallest {
		which = 2
	}

	switch which {
	case 0:
		for i := range sa.data {
			id := sa.ids[i]
			if b, ok := sb.slot(id); ok {
				if c, ok := sc.slot(id); ok {
					fn(id, &sa.data[i], &sb.data[b], &sc.data[c])
				}
			}
		}
	case 1:
		for i := range sb.data {
			id := sb.ids[i]
			if a, ok := sa.slot(id); ok {
				if c, ok := sc.slot(id); ok {
					fn(id, &sa.data[a], &sb.data[i], &sc.data[c])
				}
			}
		}
	case 2:
		for i := range sc.data {
			id := sc.ids[i]
			if a, ok := sa.slot(id); ok {
				if b, ok := sb.slot(id); ok {
					fn(id, &sa.data[a], &sb.data[b], &sc.data[i])
				}
			}
		}
	}
}
