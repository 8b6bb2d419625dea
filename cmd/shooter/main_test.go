package main

import (
	"bytes"
	"math/rand"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/starshot/shooter/internal/config"
	"github.com/starshot/shooter/internal/core/event"
	coresys "github.com/starshot/shooter/internal/core/system"
	"github.com/starshot/shooter/internal/persist"
	"github.com/starshot/shooter/internal/snapshot"
	"github.com/starshot/shooter/internal/system"
	"github.com/starshot/shooter/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newSim(t *testing.T, cfg *config.Config) (*coresys.Runner, *world.State) {
	t.Helper()
	rng := rand.New(rand.NewSource(7))
	ws := world.NewState(world.OptionsFromConfig(cfg, rng))
	r := coresys.NewRunner()
	system.RegisterAll(r, system.Deps{World: ws, Bus: event.NewBus(), Tuning: cfg.Tuning, Rand: rng, Log: zaptest.NewLogger(t)})
	require.NoError(t, r.Build())
	return r, ws
}

// ticks returns a channel holding n ready ticks.
func ticks(n int) <-chan time.Time {
	ch := make(chan time.Time, n)
	for i := 0; i < n; i++ {
		ch <- time.Time{}
	}
	return ch
}

func TestLoopStopsAtTickLimit(t *testing.T) {
	cfg := config.Defaults()
	cfg.Sim.MaxTicks = 5
	r, ws := newSim(t, cfg)

	var buf bytes.Buffer
	rec := snapshot.NewRecorder(&buf)
	reason := loop(r, ws, rec, cfg, ticks(10), make(chan os.Signal), zaptest.NewLogger(t))

	assert.Equal(t, "tick limit", reason)
	assert.Equal(t, uint64(5), ws.Tick())
	assert.Equal(t, 5, rec.Frames())
}

func TestLoopStopsOnGameOver(t *testing.T) {
	cfg := config.Defaults()
	r, ws := newSim(t, cfg)
	for ws.Play.LoseLife() {
	}

	reason := loop(r, ws, nil, cfg, ticks(3), make(chan os.Signal), zaptest.NewLogger(t))
	assert.Equal(t, "game over", reason)
	assert.Equal(t, uint64(1), ws.Tick())
}

func TestLoopStopsOnSignal(t *testing.T) {
	cfg := config.Defaults()
	r, ws := newSim(t, cfg)
	sig := make(chan os.Signal, 1)
	sig <- syscall.SIGTERM

	reason := loop(r, ws, nil, cfg, make(chan time.Time), sig, zaptest.NewLogger(t))
	assert.Equal(t, "signal", reason)
	assert.Zero(t, ws.Tick())
}

func TestFormatRun(t *testing.T) {
	rec := persist.RunRecord{
		StartedAt:       time.Date(2024, 3, 1, 12, 30, 0, 0, time.Local),
		Ticks:           12345,
		AsteroidsShot:   40,
		AsteroidsRammed: 3,
		FinalLives:      0,
	}
	assert.Equal(t, "2024-03-01 12:30  -  12,345 ticks  shot 40  rammed 3  lives 0", formatRun(rec))

	rec.Profile = "hard"
	assert.Contains(t, formatRun(rec), "  hard  ")
}

func TestSampleConfigLoads(t *testing.T) {
	cfg, err := config.Load("../../config/shooter.toml")
	require.NoError(t, err)
	assert.Equal(t, config.Defaults().Sim, cfg.Sim)
	assert.Equal(t, config.Defaults().Tuning, cfg.Tuning)
}
