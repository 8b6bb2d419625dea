package scripting

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/starshot/shooter/internal/component"
	"github.com/starshot/shooter/internal/core/ecs"
	"github.com/starshot/shooter/internal/world"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// ErrNoAutopilot is returned by Decide when no script defines autopilot(ctx).
var ErrNoAutopilot = errors.New("lua function autopilot not found")

// Engine wraps a single gopher-lua VM driving the ship.
// Single-goroutine access only (game loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads all scripts under scriptsDir/pilot.
// A missing directory leaves the engine empty; scripts can still be added
// with DoString.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState()
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}
	if err := e.loadDir(filepath.Join(scriptsDir, "pilot")); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load pilot scripts: %w", err)
	}
	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// DoString runs a chunk of Lua source in the engine's VM.
func (e *Engine) DoString(src string) error {
	return e.vm.DoString(src)
}

// HasAutopilot reports whether a script defined autopilot(ctx).
func (e *Engine) HasAutopilot() bool {
	return e.vm.GetGlobal("autopilot") != lua.LNil
}

// Threat is the asteroid closest to the ground that is still on screen.
type Threat struct {
	X, Y          float32
	Width, Height float32
}

// PilotContext is what the autopilot script sees each tick.
type PilotContext struct {
	ShipX        float32
	ShipWidth    float32
	ShipVelocity float32
	ArenaWidth   float32
	ArenaHeight  float32
	TriggerReady bool
	Lives        uint8
	Threat       *Threat
}

// NewPilotContext reads the pilot's view of ws.
func NewPilotContext(ws *world.State) PilotContext {
	ctx := PilotContext{
		ArenaWidth:  ws.Screen.Width,
		ArenaHeight: ws.Screen.Height,
		Lives:       ws.Play.Lives(),
	}
	if ship, pos := ws.Ship(); ship != nil && pos != nil {
		ctx.ShipX = pos.X
		ctx.ShipWidth = ship.Width
		ctx.ShipVelocity = ship.Velocity
		ctx.TriggerReady = ship.TriggerResetTimer <= 0
	}

	ws.Asteroids.Each(func(id ecs.EntityID, a *component.Asteroid) {
		if a.IsDestroyed {
			return
		}
		p, ok := ws.Positions.Get(id)
		if !ok || p.Y > ws.Screen.Height || p.Y < -a.Height {
			return
		}
		if ctx.Threat == nil || p.Y < ctx.Threat.Y {
			ctx.Threat = &Threat{X: p.X, Y: p.Y, Width: a.Width, Height: a.Height}
		}
	})
	return ctx
}

// Decide calls the Lua autopilot function with the current pilot context.
// The script returns a table {axis = number, fire = boolean}.
func (e *Engine) Decide(ws *world.State) (float32, bool, error) {
	fn := e.vm.GetGlobal("autopilot")
	if fn == lua.LNil {
		return 0, false, ErrNoAutopilot
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, e.contextTable(NewPilotContext(ws))); err != nil {
		return 0, false, fmt.Errorf("lua autopilot: %w", err)
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		return 0, false, fmt.Errorf("lua autopilot returned %s, want table", result.Type())
	}
	axis := float32(lua.LVAsNumber(rt.RawGetString("axis")))
	fire := lua.LVAsBool(rt.RawGetString("fire"))
	return axis, fire, nil
}

func (e *Engine) contextTable(ctx PilotContext) *lua.LTable {
	t := e.vm.NewTable()

	ship := e.vm.NewTable()
	ship.RawSetString("x", lua.LNumber(ctx.ShipX))
	ship.RawSetString("width", lua.LNumber(ctx.ShipWidth))
	ship.RawSetString("velocity", lua.LNumber(ctx.ShipVelocity))
	ship.RawSetString("trigger_ready", lua.LBool(ctx.TriggerReady))
	t.RawSetString("ship", ship)

	arena := e.vm.NewTable()
	arena.RawSetString("width", lua.LNumber(ctx.ArenaWidth))
	arena.RawSetString("height", lua.LNumber(ctx.ArenaHeight))
	t.RawSetString("arena", arena)

	t.RawSetString("lives", lua.LNumber(ctx.Lives))

	if ctx.Threat != nil {
		th := e.vm.NewTable()
		th.RawSetString("x", lua.LNumber(ctx.Threat.X))
		th.RawSetString("y", lua.LNumber(ctx.Threat.Y))
		th.RawSetString("width", lua.LNumber(ctx.Threat.Width))
		th.RawSetString("height", lua.LNumber(ctx.Threat.Height))
		t.RawSetString("threat", th)
	}
	return t
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
