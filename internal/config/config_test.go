package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shooter.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[sim]
tick_rate = "20ms"
asteroid_pool_size = 40
initial_lives = 5

[tuning]
laser_velocity = 90.5
profile = "hard"

[logging]
format = "json"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 20*time.Millisecond, cfg.Sim.TickRate)
	assert.Equal(t, 40, cfg.Sim.AsteroidPoolSize)
	assert.Equal(t, 5, cfg.Sim.InitialLives)
	assert.Equal(t, float32(90.5), cfg.Tuning.LaserVelocity)
	assert.Equal(t, "hard", cfg.Tuning.Profile)
	assert.Equal(t, "json", cfg.Logging.Format)

	// untouched keys keep their defaults
	assert.Equal(t, float32(130), cfg.Sim.ScreenWidth)
	assert.Equal(t, float32(0.5), cfg.Tuning.TriggerResetTimeout)
	assert.NotZero(t, cfg.Server.StartTime)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, `
[tuning]
asteroid_density = 0.0
`)
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Defaults().Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero tick", func(c *Config) { c.Sim.TickRate = 0 }},
		{"no asteroids", func(c *Config) { c.Sim.AsteroidPoolSize = 0 }},
		{"too many lives", func(c *Config) { c.Sim.InitialLives = 256 }},
		{"no lives", func(c *Config) { c.Sim.InitialLives = 0 }},
		{"flat screen", func(c *Config) { c.Sim.ScreenHeight = 0 }},
		{"zero laser size", func(c *Config) { c.Entities.LaserHeight = 0 }},
		{"laser not rising", func(c *Config) { c.Tuning.LaserVelocity = 0 }},
		{"negative thrust", func(c *Config) { c.Tuning.ShipThrust = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Defaults()
			tt.mutate(c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}
}
