package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Sim      SimConfig      `toml:"sim"`
	Entities EntitiesConfig `toml:"entities"`
	Tuning   TuningConfig   `toml:"tuning"`
	Input    InputConfig    `toml:"input"`
	Database DatabaseConfig `toml:"database"`
	Logging  LoggingConfig  `toml:"logging"`
	Debug    DebugConfig    `toml:"debug"`
}

type ServerConfig struct {
	Name      string `toml:"name"`
	StartTime int64  // set at boot, not from config
}

type SimConfig struct {
	TickRate         time.Duration `toml:"tick_rate"`
	ScreenWidth      float32       `toml:"screen_width"`
	ScreenHeight     float32       `toml:"screen_height"`
	AsteroidPoolSize int           `toml:"asteroid_pool_size"`
	InitialLives     int           `toml:"initial_lives"`
	MaxTicks         uint64        `toml:"max_ticks"` // 0 = run until game over
	Seed             int64         `toml:"seed"`      // 0 = seed from the clock
}

// EntitiesConfig holds sprite bounding box sizes in world units.
type EntitiesConfig struct {
	ShipWidth      float32 `toml:"ship_width"`
	ShipHeight     float32 `toml:"ship_height"`
	AsteroidWidth  float32 `toml:"asteroid_width"`
	AsteroidHeight float32 `toml:"asteroid_height"`
	LaserWidth     float32 `toml:"laser_width"`
	LaserHeight    float32 `toml:"laser_height"`
}

// TuningConfig holds the designer-facing gameplay constants.
type TuningConfig struct {
	ShipThrust           float32 `toml:"ship_thrust"`
	AsteroidVelocity     float32 `toml:"asteroid_velocity"`
	WaitForFirstAsteroid float32 `toml:"wait_for_first_asteroid"`
	AsteroidDensity      float32 `toml:"asteroid_density"`
	LaserVelocity        float32 `toml:"laser_velocity"`
	TriggerResetTimeout  float32 `toml:"trigger_reset_timeout"`

	Profile     string `toml:"profile"`      // named preset from ProfileFile, "" = use the values above
	ProfileFile string `toml:"profile_file"` // YAML preset table
}

type InputConfig struct {
	ScriptsDir string `toml:"scripts_dir"`
	Autopilot  bool   `toml:"autopilot"`
}

type DatabaseConfig struct {
	DSN             string        `toml:"dsn"` // empty disables run history
	MaxOpenConns    int           `toml:"max_open_conns"`
	MaxIdleConns    int           `toml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `toml:"conn_max_lifetime"`
	PingTimeout     time.Duration `toml:"ping_timeout"`
	RecentRuns      int           `toml:"recent_runs"` // runs listed after the summary
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type DebugConfig struct {
	Profile     string `toml:"profile"` // "", "cpu" or "mem"
	ProfilePath string `toml:"profile_path"`
	RecordPath  string `toml:"record_path"` // msgpack frame stream, "" = off
}

var ErrInvalid = errors.New("invalid config")

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.Server.StartTime = time.Now().Unix()
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Sim.TickRate <= 0:
		return fmt.Errorf("%w: sim.tick_rate must be positive", ErrInvalid)
	case c.Sim.ScreenWidth <= 0 || c.Sim.ScreenHeight <= 0:
		return fmt.Errorf("%w: sim screen size must be positive", ErrInvalid)
	case c.Sim.AsteroidPoolSize <= 0:
		return fmt.Errorf("%w: sim.asteroid_pool_size must be positive", ErrInvalid)
	case c.Sim.InitialLives < 1 || c.Sim.InitialLives > 255:
		return fmt.Errorf("%w: sim.initial_lives must be in 1..255", ErrInvalid)
	case c.Entities.ShipWidth <= 0 || c.Entities.ShipHeight <= 0,
		c.Entities.AsteroidWidth <= 0 || c.Entities.AsteroidHeight <= 0,
		c.Entities.LaserWidth <= 0 || c.Entities.LaserHeight <= 0:
		return fmt.Errorf("%w: entity sizes must be positive", ErrInvalid)
	}
	return c.Tuning.Validate()
}

func (t TuningConfig) Validate() error {
	switch {
	case t.AsteroidDensity <= 0:
		return fmt.Errorf("%w: tuning.asteroid_density must be positive", ErrInvalid)
	case t.AsteroidVelocity <= 0:
		return fmt.Errorf("%w: tuning.asteroid_velocity must be positive", ErrInvalid)
	case t.LaserVelocity <= 0:
		return fmt.Errorf("%w: tuning.laser_velocity must be positive", ErrInvalid)
	case t.ShipThrust < 0 || t.WaitForFirstAsteroid < 0 || t.TriggerResetTimeout < 0:
		return fmt.Errorf("%w: tuning values must not be negative", ErrInvalid)
	}
	return nil
}

// Defaults returns the stock configuration.
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "starshot",
		},
		Sim: SimConfig{
			TickRate:         16 * time.Millisecond,
			ScreenWidth:      130,
			ScreenHeight:     102.4,
			AsteroidPoolSize: 100,
			InitialLives:     3,
		},
		Entities: EntitiesConfig{
			ShipWidth:      10.5,
			ShipHeight:     8.3,
			AsteroidWidth:  4.3,
			AsteroidHeight: 4.3,
			LaserWidth:     0.9,
			LaserHeight:    5.4,
		},
		Tuning: TuningConfig{
			ShipThrust:           75,
			AsteroidVelocity:     5,
			WaitForFirstAsteroid: 2,
			AsteroidDensity:      0.3,
			LaserVelocity:        60,
			TriggerResetTimeout:  0.5,
			ProfileFile:          "data/yaml/tuning.yaml",
		},
		Input: InputConfig{
			ScriptsDir: "scripts",
			Autopilot:  true,
		},
		Database: DatabaseConfig{
			MaxOpenConns:    4,
			MaxIdleConns:    1,
			ConnMaxLifetime: 30 * time.Minute,
			PingTimeout:     5 * time.Second,
			RecentRuns:      5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Debug: DebugConfig{
			ProfilePath: ".",
		},
	}
}
