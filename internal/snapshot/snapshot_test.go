package snapshot

import (
	"bytes"
	"testing"

	"github.com/starshot/shooter/internal/component"
	"github.com/starshot/shooter/internal/core/ecs"
	"github.com/starshot/shooter/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRand float32

func (r fixedRand) Float32() float32 { return float32(r) }

func newWorld() *world.State {
	ws := world.NewState(world.Options{
		Screen:           world.Screen{Width: 130, Height: 102.4},
		Spawning:         world.Spawning{AsteroidVelocity: 5, WaitForFirstAsteroid: 2, AsteroidDensity: 0.3},
		AsteroidPoolSize: 2,
		InitialLives:     3,
		Ship:             component.Ship{Width: 10.5, Height: 8.3},
		Asteroid:         component.Asteroid{Velocity: 5, Width: 4.3, Height: 4.3},
		Laser:            component.Laser{Velocity: 60, Width: 0.9, Height: 5.4},
		Rand:             fixedRand(0),
	})
	ws.Lasers.Create(ws.LaserTemplate.Laser, func(id ecs.EntityID) {
		ws.Positions.Set(id, component.Position{X: 70, Y: 20})
	})
	return ws
}

func countKinds(f Frame) map[string]int {
	n := make(map[string]int)
	for _, s := range f.Entities {
		n[s.Kind]++
	}
	return n
}

func TestCaptureListsEveryEntity(t *testing.T) {
	ws := newWorld()
	f := Capture(ws)

	assert.Equal(t, uint64(0), f.Tick)
	assert.Equal(t, uint8(3), f.Lives)
	assert.Equal(t, map[string]int{
		component.KindShip:     1,
		component.KindAsteroid: 2,
		component.KindLaser:    1,
		component.KindLife:     3,
	}, countKinds(f))

	ship := f.Entities[0]
	assert.Equal(t, component.KindShip, ship.Kind)
	assert.Equal(t, uint64(ws.ShipID()), ship.ID)
	assert.Equal(t, float32(65), ship.X)
	assert.Equal(t, float32(10.5), ship.Width)
}

func TestRecorderRoundTrip(t *testing.T) {
	ws := newWorld()
	var buf bytes.Buffer
	rec := NewRecorder(&buf)

	first := Capture(ws)
	require.NoError(t, rec.Record(first))
	ws.Play.LoseLife()
	ws.AdvanceTick()
	second := Capture(ws)
	require.NoError(t, rec.Record(second))
	assert.Equal(t, 2, rec.Frames())

	var got []Frame
	require.NoError(t, Replay(&buf, func(f Frame) error {
		got = append(got, f)
		return nil
	}))
	require.Len(t, got, 2)
	assert.Equal(t, first, got[0])
	assert.Equal(t, uint64(1), got[1].Tick)
	assert.Equal(t, uint8(2), got[1].Lives)
}

func TestReplayEmptyStream(t *testing.T) {
	calls := 0
	require.NoError(t, Replay(&bytes.Buffer{}, func(Frame) error {
		calls++
		return nil
	}))
	assert.Zero(t, calls)
}
