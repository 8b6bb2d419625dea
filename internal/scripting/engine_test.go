package scripting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/starshot/shooter/internal/component"
	"github.com/starshot/shooter/internal/core/ecs"
	"github.com/starshot/shooter/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fixedRand float32

func (r fixedRand) Float32() float32 { return float32(r) }

func newWorld(poolSize int) *world.State {
	return world.NewState(world.Options{
		Screen:           world.Screen{Width: 130, Height: 102.4},
		Spawning:         world.Spawning{AsteroidVelocity: 5, WaitForFirstAsteroid: 2, AsteroidDensity: 0.3},
		AsteroidPoolSize: poolSize,
		InitialLives:     3,
		Ship:             component.Ship{Width: 10, Height: 8},
		Asteroid:         component.Asteroid{Velocity: 5, Width: 4, Height: 4},
		Laser:            component.Laser{Velocity: 60, Width: 1, Height: 5},
		Rand:             fixedRand(0.5),
	})
}

func newEngine(t *testing.T, dir string) *Engine {
	t.Helper()
	e, err := NewEngine(dir, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(e.Close)
	return e
}

func TestNewEngineLoadsPilotScripts(t *testing.T) {
	e := newEngine(t, filepath.Join("..", "..", "scripts"))
	assert.True(t, e.HasAutopilot())
}

func TestNewEngineMissingDir(t *testing.T) {
	e := newEngine(t, t.TempDir())
	assert.False(t, e.HasAutopilot())

	_, _, err := e.Decide(newWorld(0))
	assert.ErrorIs(t, err, ErrNoAutopilot)
}

func TestNewEngineBadScript(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "pilot"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pilot", "broken.lua"), []byte("function autopilot(ctx"), 0o644))

	_, err := NewEngine(dir, zaptest.NewLogger(t))
	assert.Error(t, err)
}

func TestPilotContextPicksLowestVisibleAsteroid(t *testing.T) {
	ws := newWorld(3)
	var ids []ecs.EntityID
	ws.Asteroids.Each(func(id ecs.EntityID, _ *component.Asteroid) { ids = append(ids, id) })
	heights := []float32{80, 30, 500}
	for i, id := range ids {
		p, _ := ws.Positions.Get(id)
		*p = component.Position{X: float32(10 * (i + 1)), Y: heights[i]}
	}

	ctx := NewPilotContext(ws)
	require.NotNil(t, ctx.Threat)
	assert.Equal(t, float32(20), ctx.Threat.X)
	assert.Equal(t, float32(30), ctx.Threat.Y)
	assert.Equal(t, float32(65), ctx.ShipX)
	assert.True(t, ctx.TriggerReady)
	assert.Equal(t, uint8(3), ctx.Lives)

	a, _ := ws.Asteroids.Store().Get(ids[1])
	a.IsDestroyed = true
	ctx = NewPilotContext(ws)
	require.NotNil(t, ctx.Threat)
	assert.Equal(t, float32(80), ctx.Threat.Y)
}

func TestDecideUsesScriptResult(t *testing.T) {
	e := newEngine(t, t.TempDir())
	require.NoError(t, e.DoString(`
function autopilot(ctx)
  return { axis = ctx.ship.x / ctx.arena.width, fire = ctx.ship.trigger_ready }
end`))

	axis, fire, err := e.Decide(newWorld(0))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, axis, 1e-6)
	assert.True(t, fire)
}

func TestDecideRejectsNonTable(t *testing.T) {
	e := newEngine(t, t.TempDir())
	require.NoError(t, e.DoString(`function autopilot(ctx) return 1 end`))

	_, _, err := e.Decide(newWorld(0))
	assert.Error(t, err)
}

func TestDecideReportsRuntimeError(t *testing.T) {
	e := newEngine(t, t.TempDir())
	require.NoError(t, e.DoString(`function autopilot(ctx) return ctx.missing.field end`))

	_, _, err := e.Decide(newWorld(0))
	assert.Error(t, err)
}

func TestAutopilotSteersTowardThreat(t *testing.T) {
	e := newEngine(t, filepath.Join("..", "..", "scripts"))
	ws := newWorld(1)
	ws.Asteroids.Each(func(id ecs.EntityID, _ *component.Asteroid) {
		p, _ := ws.Positions.Get(id)
		*p = component.Position{X: 10, Y: 50}
	})

	axis, fire, err := e.Decide(ws)
	require.NoError(t, err)
	assert.Less(t, axis, float32(0), "threat is left of the ship")
	assert.False(t, fire)

	_, pos := ws.Ship()
	pos.X = 7
	axis, fire, err = e.Decide(ws)
	require.NoError(t, err)
	assert.InDelta(t, 0, axis, 1e-6)
	assert.True(t, fire)
}
