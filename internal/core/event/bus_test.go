package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusDeliversNextTick(t *testing.T) {
	b := NewBus()
	var got []LifeLost
	Subscribe(b, func(ev LifeLost) { got = append(got, ev) })

	Emit(b, LifeLost{Remaining: 2})
	Emit(b, LifeLost{Remaining: 1})
	assert.Equal(t, 2, b.Pending())

	b.DispatchAll()
	assert.Empty(t, got, "nothing is readable before the swap")

	b.SwapBuffers()
	assert.Equal(t, 0, b.Pending())
	b.DispatchAll()
	assert.Equal(t, []LifeLost{{Remaining: 2}, {Remaining: 1}}, got)

	b.SwapBuffers()
	b.DispatchAll()
	assert.Len(t, got, 2, "front buffer is cleared after the next swap")
}

func TestBusRoutesByType(t *testing.T) {
	b := NewBus()
	var created, deleted int
	Subscribe(b, func(EntityCreated) { created++ })
	Subscribe(b, func(EntityDeleted) { deleted++ })

	Emit(b, EntityCreated{Kind: "laser"})
	Emit(b, EntityCreated{Kind: "laser"})
	Emit(b, EntityDeleted{Kind: "life"})
	b.SwapBuffers()
	b.DispatchAll()

	assert.Equal(t, 2, created)
	assert.Equal(t, 1, deleted)
}
