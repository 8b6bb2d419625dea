package world

import (
	"github.com/starshot/shooter/internal/component"
	"github.com/starshot/shooter/internal/config"
	"github.com/starshot/shooter/internal/core/ecs"
)

// State holds the simulation data shared by all systems.
// Accessed only from the game loop goroutine; no locks needed.
type State struct {
	ECS *ecs.World

	Ships     *ecs.Store[component.Ship]
	Positions *ecs.Store[component.Position]
	Asteroids *ecs.RecycledPool[component.Asteroid]
	Lasers    *ecs.SpawnDespawn[component.Laser]
	LifeIcons *ecs.SpawnDespawn[component.Life]

	Play          *PlayState
	LaserTemplate LaserTemplate
	Screen        Screen
	Spawning      Spawning
	Stats         Stats

	tick uint64
	ship ecs.EntityID
}

// Options describe the world built by NewState.
type Options struct {
	Screen           Screen
	Spawning         Spawning
	AsteroidPoolSize int
	InitialLives     uint8

	Ship     component.Ship
	Asteroid component.Asteroid
	Laser    component.Laser

	LaserSprite string
	Rand        Rand
}

// OptionsFromConfig resolves world options from the loaded configuration.
func OptionsFromConfig(cfg *config.Config, rng Rand) Options {
	t := cfg.Tuning
	e := cfg.Entities
	return Options{
		Screen: Screen{Width: cfg.Sim.ScreenWidth, Height: cfg.Sim.ScreenHeight},
		Spawning: Spawning{
			AsteroidVelocity:     t.AsteroidVelocity,
			WaitForFirstAsteroid: t.WaitForFirstAsteroid,
			AsteroidDensity:      t.AsteroidDensity,
		},
		AsteroidPoolSize: cfg.Sim.AsteroidPoolSize,
		InitialLives:     uint8(cfg.Sim.InitialLives),
		Ship:             component.Ship{Width: e.ShipWidth, Height: e.ShipHeight},
		Asteroid:         component.Asteroid{Velocity: t.AsteroidVelocity, Width: e.AsteroidWidth, Height: e.AsteroidHeight},
		Laser:            component.Laser{Velocity: t.LaserVelocity, Width: e.LaserWidth, Height: e.LaserHeight},
		LaserSprite:      "laser_red01",
		Rand:             rng,
	}
}

// NewState registers the stores and creates the setup-time entities: the
// ship, the asteroid pool and one life icon per initial life.
func NewState(opts Options) *State {
	w := ecs.NewWorld()
	s := &State{
		ECS:       w,
		Ships:     ecs.NewStore[component.Ship](1),
		Positions: ecs.NewStore[component.Position](opts.AsteroidPoolSize + 64),
		Play:      NewPlayState(opts.InitialLives),
		LaserTemplate: LaserTemplate{
			Laser:  opts.Laser,
			Sprite: opts.LaserSprite,
		},
		Screen:   opts.Screen,
		Spawning: opts.Spawning,
	}
	asteroids := ecs.NewStore[component.Asteroid](opts.AsteroidPoolSize)
	lasers := ecs.NewStore[component.Laser](32)
	lives := ecs.NewStore[component.Life](int(opts.InitialLives))
	for _, st := range []ecs.Removable{s.Ships, s.Positions, asteroids, lasers, lives} {
		w.Registry().Register(st)
	}

	s.ship = w.CreateEntity()
	w.Pin(s.ship)
	ship := opts.Ship
	ship.Velocity = 0
	ship.TriggerResetTimer = 0
	s.Ships.Set(s.ship, ship)
	s.Positions.Set(s.ship, component.Position{X: opts.Screen.Width / 2, Y: 0})

	s.Asteroids = ecs.NewRecycledPool(w, asteroids, opts.AsteroidPoolSize, func(_ int, id ecs.EntityID) component.Asteroid {
		s.Positions.Set(id, PlaceAsteroid(opts.Screen, opts.Asteroid.Width, opts.Spawning, opts.Rand))
		a := opts.Asteroid
		a.IsDestroyed = false
		return a
	})

	s.Lasers = ecs.NewSpawnDespawn(w, component.KindLaser, lasers)
	s.LifeIcons = ecs.NewSpawnDespawn(w, component.KindLife, lives)
	for i := uint8(0); i < opts.InitialLives; i++ {
		s.LifeIcons.Create(component.Life{LifeNumber: i}, nil)
	}
	return s
}

func (s *State) ShipID() ecs.EntityID { return s.ship }

// Ship returns the singleton ship and its position.
func (s *State) Ship() (*component.Ship, *component.Position) {
	ship, _ := s.Ships.Get(s.ship)
	pos, _ := s.Positions.Get(s.ship)
	return ship, pos
}

// Tick returns the number of completed ticks.
func (s *State) Tick() uint64 { return s.tick }

// AdvanceTick is called once per tick after the command buffer is applied.
func (s *State) AdvanceTick() { s.tick++ }
